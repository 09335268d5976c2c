package model

// unavailableError signals that no model artifact is loaded, for 503 mapping.
type unavailableError struct{ msg string }

func (e unavailableError) Error() string { return e.msg }

// ErrUnavailable constructs an unavailableError.
func ErrUnavailable(msg string) error { return unavailableError{msg: msg} }

// IsUnavailable reports whether err indicates a missing model (return 503).
func IsUnavailable(err error) bool {
	_, ok := err.(unavailableError)
	return ok
}

// inferenceError signals that the loaded model rejected the assembled vector.
// Operator-attributable, mapped to 500 without leaking diagnostics.
type inferenceError struct{ msg string }

func (e inferenceError) Error() string { return e.msg }

// ErrInference constructs an inferenceError.
func ErrInference(msg string) error { return inferenceError{msg: msg} }

// IsInference reports whether err indicates a model-side inference fault.
func IsInference(err error) bool {
	_, ok := err.(inferenceError)
	return ok
}
