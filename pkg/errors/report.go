package errors

// ReportError describes a failure while rendering or writing a vector file.
type ReportError struct {
	*baseError
	stage string
	path  string
}

// NewReportError creates a report-specific error with the provided context.
func NewReportError(err error, code ErrorCode, msg string) *ReportError {
	return &ReportError{baseError: newBaseError(err, code, msg)}
}

// WithMessage updates the error message.
func (re *ReportError) WithMessage(msg string) *ReportError {
	re.setMessage(msg)
	return re
}

// WithDetail adds contextual information.
func (re *ReportError) WithDetail(key string, value any) *ReportError {
	re.setDetail(key, value)
	return re
}

// WithStage records which emission stage failed (render, mkdir, write).
func (re *ReportError) WithStage(stage string) *ReportError {
	re.stage = stage
	return re
}

// WithPath captures the filesystem path involved in the failure.
func (re *ReportError) WithPath(path string) *ReportError {
	re.path = path
	return re
}

// Stage returns the emission stage that failed.
func (re *ReportError) Stage() string {
	return re.stage
}

// Path returns the filesystem path involved in the failure.
func (re *ReportError) Path() string {
	return re.path
}
