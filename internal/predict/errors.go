package predict

// validationError carries the offending field and a caller-fixable reason,
// for 400 mapping.
type validationError struct{ field, reason string }

func (e validationError) Error() string { return "invalid field " + e.field + ": " + e.reason }

// ErrValidation constructs a validationError for the given field.
func ErrValidation(field, reason string) error { return validationError{field: field, reason: reason} }

// IsValidation reports whether err is caller-attributable input rejection.
func IsValidation(err error) bool {
	_, ok := err.(validationError)
	return ok
}

// ValidationField returns the field named by a validation error, or "".
func ValidationField(err error) string {
	if ve, ok := err.(validationError); ok {
		return ve.field
	}
	return ""
}
