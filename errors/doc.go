// Error handling for the file manager core.
//
// Every failure surfaced by the sorting and trash packages is a PlatformError
// carrying an ErrorCode, a classification, and optional context such as the
// path or trash entry involved. Errors wrap their OS cause, so callers can
// still test for fs.ErrPermission or syscall.EXDEV with errors.Is.
//
// # Quick Start
//
//	err := errors.New(errors.CodeInvalidTarget, "cannot trash the trash can")
//	err = errors.WithContext(err, "path", target)
//
//	if err := fsys.Rename(src, dst); err != nil {
//	    return errors.Wrapf(err, errors.CodeIO, "moving %s", src)
//	}
//
// # Classification
//
// Errors are either recoverable or fatal:
//
//   - Recoverable: per-item failures (permission denied, not found, corrupt
//     sidecar). Batch operations record them and continue.
//   - Fatal: the command cannot proceed (trash root unavailable, bad config).
//
// Use errors.IsFatal(err) to decide whether to abort. The classification is
// preserved when wrapping and can be overridden with WithClassification.
//
// # Error Codes
//
//   - Access: CodePermissionDenied, CodeInvalidTarget
//   - Resource: CodeNotFound, CodeAlreadyExists
//   - Filesystem: CodeCrossDevice, CodeCorruption, CodeNameTooLong, CodeIO
//   - Validation: CodeInvalidInput, CodeInvalidConfig
//   - Batch: CodePartialFailure
//   - System: CodeTrashUnavailable, CodeInternal
//   - Generic: CodeUnknown
package errors
