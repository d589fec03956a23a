package errors

type ErrorCode string

const (
	ErrIOGeneral      ErrorCode = "IO_GENERAL"
	ErrIOCreateFailed ErrorCode = "IO_CREATE_FAILED"
	ErrIOWriteFailed  ErrorCode = "IO_WRITE_FAILED"
	ErrIORenameFailed ErrorCode = "IO_RENAME_FAILED"
	ErrIOCloseFailed  ErrorCode = "IO_CLOSE_FAILED"

	ErrSystemInternal     ErrorCode = "SYSTEM_INTERNAL"
	ErrSystemInvalidInput ErrorCode = "SYSTEM_INVALID_INPUT"

	ErrValidationInvalidData ErrorCode = "VALIDATION_INVALID_DATA"
	ErrValidationRequired    ErrorCode = "VALIDATION_REQUIRED_FIELD"

	ErrReportRenderFailed ErrorCode = "REPORT_RENDER_FAILED"
	ErrReportWriteFailed  ErrorCode = "REPORT_WRITE_FAILED"
)
