package errors

import (
	stdErrors "errors"
)

func AsReportError(err error) (*ReportError, bool) {
	var re *ReportError
	if stdErrors.As(err, &re) {
		return re, true
	}
	return nil, false
}

func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if stdErrors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}
