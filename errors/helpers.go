package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, fs.ErrPermission) {
//	    // Render a permission hint
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var platformErr PlatformError
//	if errors.As(err, &platformErr) {
//	    code := platformErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a PlatformError.
//
// This function handles the error chain and will extract the code from
// the outermost PlatformError in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeAlreadyExists {
//	    // Destination occupied
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether any PlatformError in err's chain carries code.
// Unlike GetCode it looks past the outermost error, which matters for batch
// results wrapped in CodePartialFailure.
func HasCode(err error, code ErrorCode) bool {
	return stderrors.Is(err, code)
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationRecoverable if the error is nil or not a PlatformError.
//
// Example:
//
//	if errors.GetClassification(err) == errors.ClassificationFatal {
//	    return err
//	}
func GetClassification(err error) ErrorClassification {
	if err == nil {
		return ClassificationRecoverable
	}

	var platformErr PlatformError
	if stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}

	return ClassificationRecoverable
}

// IsFatal returns true if the error is classified as fatal.
// Returns false if the error is nil or not a PlatformError.
//
// Example:
//
//	for _, path := range paths {
//	    if err := trashOne(path); err != nil {
//	        if errors.IsFatal(err) {
//	            return err
//	        }
//	        failed = append(failed, err)
//	    }
//	}
func IsFatal(err error) bool {
	return GetClassification(err).IsFatal()
}
