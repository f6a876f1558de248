package errors

import (
	"fmt"
	"maps"
)

// platformError is the only PlatformError implementation. Values are never
// mutated after construction; enrichers build a new one.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error renders "[CODE] message", followed by ": cause" when the error
// wraps an OS or library error.
func (e *platformError) Error() string {
	if e.cause == nil {
		return fmt.Sprintf("[%s] %s", e.code, e.message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
}

func (e *platformError) Code() ErrorCode                     { return e.code }
func (e *platformError) Classification() ErrorClassification { return e.classification }
func (e *platformError) Message() string                     { return e.message }
func (e *platformError) Unwrap() error                       { return e.cause }

// Context returns a copy of the attached fields, or nil when there are none.
func (e *platformError) Context() map[string]interface{} {
	return maps.Clone(e.context)
}

// Is matches an ErrorCode target, so errors.Is(err, errors.CodeNotFound)
// finds a coded error anywhere in a chain, including joined batch errors.
func (e *platformError) Is(target error) bool {
	code, ok := target.(ErrorCode)
	return ok && code == e.code
}

// Error returns the code itself. It lets an ErrorCode serve as an errors.Is
// target.
func (c ErrorCode) Error() string {
	return string(c)
}
