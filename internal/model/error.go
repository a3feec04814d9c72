package model

import "errors"

// Application level errors. Handlers map these to HTTP status codes.
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("resource conflict")
	ErrInternalServer = errors.New("internal server error")
)

// ErrorDetail is the error payload returned to clients.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// APIErrorResponse wraps ErrorDetail as the error response body.
type APIErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// AppError carries a client-facing detail plus the wrapped cause used for
// status code mapping.
type AppError struct {
	Detail ErrorDetail
	Err    error
}

func NewAppError(code, message, field string, err error) *AppError {
	return &AppError{
		Detail: ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
		Err: err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Detail.Message + ": " + e.Err.Error()
	}
	return e.Detail.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}
