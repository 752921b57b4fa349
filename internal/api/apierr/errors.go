package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jpmiranda/regform/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeFormNotFound         = "FORM_NOT_FOUND"
	CodeUnknownField         = "UNKNOWN_FIELD"
	CodeValidationFailed     = "VALIDATION_FAILED"
	CodeIncompleteSubmission = "INCOMPLETE_SUBMISSION"
	CodeInvalidProgram       = "INVALID_PROGRAM"
	CodeInvalidYearLevel     = "INVALID_YEAR_LEVEL"
	CodeAlreadySubmitted     = "ALREADY_SUBMITTED"
	CodeNotSubmitted         = "NOT_SUBMITTED"
	CodeRecordNotFound       = "RECORD_NOT_FOUND"
	CodeImageNotReady        = "IMAGE_NOT_READY"
	CodePersistenceFailed    = "PERSISTENCE_FAILED"
	CodeEncodingFailed       = "ENCODING_FAILED"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrFormNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeFormNotFound, "Form not found"}}
	case errors.Is(err, model.ErrUnknownField):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownField, "Unknown form field"}}
	case errors.Is(err, model.ErrIncompleteSubmission):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeIncompleteSubmission, "All fields are required"}}
	case errors.Is(err, model.ErrValidationFailed):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeValidationFailed, "One or more fields are invalid"}}
	case errors.Is(err, model.ErrInvalidProgram):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidProgram, "Unrecognized program"}}
	case errors.Is(err, model.ErrInvalidYearLevel):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeInvalidYearLevel, "Year level is not offered for the selected program"}}
	case errors.Is(err, model.ErrAlreadySubmitted):
		return &httpError{http.StatusConflict, APIError{CodeAlreadySubmitted, "Form has already been submitted"}}
	case errors.Is(err, model.ErrNotSubmitted):
		return &httpError{http.StatusConflict, APIError{CodeNotSubmitted, "Form has not been submitted yet"}}
	case errors.Is(err, model.ErrRecordNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeRecordNotFound, "No registration record for that student number"}}
	case errors.Is(err, model.ErrImageNotReady):
		return &httpError{http.StatusConflict, APIError{CodeImageNotReady, "QR image has not been generated"}}
	case errors.Is(err, model.ErrPersistenceFailed):
		return &httpError{http.StatusServiceUnavailable, APIError{CodePersistenceFailed, "Could not save the registration record"}}
	case errors.Is(err, model.ErrEncodingFailed):
		return &httpError{http.StatusInternalServerError, APIError{CodeEncodingFailed, "Could not encode the registration record"}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
