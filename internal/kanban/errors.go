package kanban

import "errors"

// ValidationError reports rejected user input (empty required field, malformed
// URL). The operation that produced it leaves the board unchanged.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
