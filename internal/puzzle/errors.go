package puzzle

import "fmt"

// InternalError reports a decoded cover that failed the solution validity
// postcheck.  It indicates an invariant violation in the engine itself, not
// a bad puzzle description.
type InternalError struct {
	Message string
}

func (e *InternalError) Error() string {
	return e.Message
}

func internalErrorf(format string, args ...any) *InternalError {
	return &InternalError{Message: fmt.Sprintf(format, args...)}
}
