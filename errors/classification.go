package errors

// ErrorClassification indicates whether an error aborts the whole command or
// only the item it occurred on.
type ErrorClassification string

const (
	// ClassificationRecoverable indicates a per-item failure. Batch operations
	// record it and continue with the remaining items.
	ClassificationRecoverable ErrorClassification = "RECOVERABLE"

	// ClassificationFatal indicates the command cannot continue at all.
	// Examples: the trash root cannot be created, invalid configuration.
	ClassificationFatal ErrorClassification = "FATAL"
)

// IsFatal returns true if the classification aborts the command.
func (c ErrorClassification) IsFatal() bool {
	return c == ClassificationFatal
}

// defaultClassifications maps error codes to their default classification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	// Per-item failures
	CodePermissionDenied: ClassificationRecoverable,
	CodeInvalidTarget:    ClassificationRecoverable,
	CodeNotFound:         ClassificationRecoverable,
	CodeAlreadyExists:    ClassificationRecoverable,
	CodeCrossDevice:      ClassificationRecoverable, // Triggers the copy fallback
	CodeCorruption:       ClassificationRecoverable,
	CodeNameTooLong:      ClassificationRecoverable,
	CodeIO:               ClassificationRecoverable,
	CodeInvalidInput:     ClassificationRecoverable,
	CodePartialFailure:   ClassificationRecoverable,

	// Command-level failures
	CodeTrashUnavailable: ClassificationFatal,
	CodeInvalidConfig:    ClassificationFatal,
	CodeInternal:         ClassificationFatal,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes are recoverable so a stray error never aborts a batch.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationRecoverable
}
