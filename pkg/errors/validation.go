package errors

import "fmt"

// ValidationError reports a rejected configuration or input value.
type ValidationError struct {
	*baseError
	field    string
	provided any
	expected any
}

func NewValidationError(err error, code ErrorCode, msg string) *ValidationError {
	return &ValidationError{baseError: newBaseError(err, code, msg)}
}

// NewRequiredFieldError reports a field that must be set but was not.
func NewRequiredFieldError(field string) *ValidationError {
	ve := &ValidationError{
		baseError: newBaseError(nil, ErrValidationRequired, fmt.Sprintf("%s is required", field)),
	}
	ve.field = field
	return ve
}

func (ve *ValidationError) WithMessage(msg string) *ValidationError {
	ve.setMessage(msg)
	return ve
}

func (ve *ValidationError) WithDetail(key string, value any) *ValidationError {
	ve.setDetail(key, value)
	return ve
}

// WithField records which field failed validation.
func (ve *ValidationError) WithField(field string) *ValidationError {
	ve.field = field
	return ve
}

// WithProvided records the rejected value.
func (ve *ValidationError) WithProvided(value any) *ValidationError {
	ve.provided = value
	return ve
}

// WithExpected records what a valid value would have been.
func (ve *ValidationError) WithExpected(value any) *ValidationError {
	ve.expected = value
	return ve
}

func (ve *ValidationError) Field() string {
	return ve.field
}

func (ve *ValidationError) Provided() any {
	return ve.provided
}

func (ve *ValidationError) Expected() any {
	return ve.expected
}
