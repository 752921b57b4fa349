package model

import "errors"

// Common errors used across the application
var (
	// Form session errors
	ErrFormNotFound = errors.New("form not found")
	ErrUnknownField = errors.New("unknown form field")

	// Submission errors
	ErrIncompleteSubmission = errors.New("all fields are required")
	ErrValidationFailed     = errors.New("one or more fields are invalid")
	ErrInvalidProgram       = errors.New("program is not offered")
	ErrInvalidYearLevel     = errors.New("year level is not available for the chosen program")
	ErrAlreadySubmitted     = errors.New("form has already been submitted")
	ErrNotSubmitted         = errors.New("form has not been submitted")

	// Persistence errors
	ErrPersistenceFailed = errors.New("failed to persist registration record")
	ErrRecordNotFound    = errors.New("registration record not found")

	// Encoding errors
	ErrEncodingFailed = errors.New("failed to encode registration record")
	ErrImageNotReady  = errors.New("image is not ready")
)
