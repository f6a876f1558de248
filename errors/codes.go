// Package errors provides structured errors for the file manager core.
// It extends Go's standard error handling with error codes, a fatal vs
// recoverable classification, and attached context.
package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and stable log output.
type ErrorCode string

const (
	// Access errors.

	// CodePermissionDenied indicates the target or its parent lacks the required
	// access, or an immutable attribute is set.
	CodePermissionDenied ErrorCode = "PERMISSION_DENIED"

	// CodeInvalidTarget indicates an operation was refused for the given target,
	// such as trashing the trash directory itself or a device file.
	CodeInvalidTarget ErrorCode = "INVALID_TARGET"

	// Resource errors.

	// CodeNotFound indicates a file, sidecar, or parent directory does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeAlreadyExists indicates the destination of a move is already occupied.
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Filesystem errors.

	// CodeCrossDevice indicates an atomic rename crossed a filesystem boundary.
	CodeCrossDevice ErrorCode = "CROSS_DEVICE"

	// CodeCorruption indicates trash metadata is unreadable or incomplete.
	CodeCorruption ErrorCode = "CORRUPTION"

	// CodeNameTooLong indicates a file name exceeds the filesystem limit.
	CodeNameTooLong ErrorCode = "NAME_TOO_LONG"

	// CodeIO indicates an underlying read, write, or remove failed.
	CodeIO ErrorCode = "IO_ERROR"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Batch errors.

	// CodePartialFailure indicates at least one item of a batch failed.
	CodePartialFailure ErrorCode = "PARTIAL_FAILURE"

	// System errors.

	// CodeTrashUnavailable indicates the trash directory cannot be opened or created.
	CodeTrashUnavailable ErrorCode = "TRASH_UNAVAILABLE"

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// Generic errors.

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
