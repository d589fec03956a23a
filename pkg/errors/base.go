// Package errors defines the coded error types shared across the generator.
package errors

// baseError carries the context every generator error shares: a category
// code, a display message, the causing error and free-form details.
type baseError struct {
	cause   error
	message string
	code    ErrorCode
	details map[string]any
}

func newBaseError(err error, code ErrorCode, msg string) *baseError {
	return &baseError{cause: err, code: code, message: msg}
}

func (b *baseError) setMessage(msg string) {
	b.message = msg
}

func (b *baseError) setDetail(key string, value any) {
	if b.details == nil {
		b.details = make(map[string]any)
	}
	b.details[key] = value
}

// Error returns the display message.
func (b *baseError) Error() string {
	return b.message
}

// Unwrap returns the underlying cause, if any.
func (b *baseError) Unwrap() error {
	return b.cause
}

// Code returns the category code for programmatic handling.
func (b *baseError) Code() ErrorCode {
	return b.code
}

// Details returns the free-form context recorded on this error.
func (b *baseError) Details() map[string]any {
	return b.details
}
