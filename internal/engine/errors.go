package engine

import "errors"

// GateClosedError indicates an action's daily gate is closed (all prayer
// slots used, a once-per-day deed already logged). It is a normal outcome to
// show the user, not a failure.
type GateClosedError struct {
	Reason string
}

func (e GateClosedError) Error() string { return e.Reason }

// IsGateClosed reports whether err is a closed gate.
func IsGateClosed(err error) bool {
	var g GateClosedError
	return errors.As(err, &g)
}

// ValidationError indicates user input rejected before any mutation.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string { return e.Msg }

// IsValidation reports whether err is an input validation rejection.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}
