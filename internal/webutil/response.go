package webutil

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"study_assist/internal/model"
)

// HandleError interprets err and writes the matching JSON error response.
// This is the single funnel for handler-level error output.
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	statusCode := MapErrorToStatusCode(err)

	var errResp model.APIErrorResponse
	var appErr *model.AppError

	if errors.As(err, &appErr) {
		errResp = model.APIErrorResponse{Error: appErr.Detail}
	} else {
		if statusCode >= 500 {
			logger.Error("Unhandled error", "error", err)
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{
					Code:    "INTERNAL_SERVER_ERROR",
					Message: "An internal server error occurred.",
				},
			}
		} else {
			errResp = model.APIErrorResponse{
				Error: model.ErrorDetail{
					Code:    http.StatusText(statusCode),
					Message: err.Error(),
				},
			}
		}
	}

	RespondWithJSON(w, statusCode, errResp, logger)
}

// MapErrorToStatusCode maps application errors to HTTP status codes.
func MapErrorToStatusCode(err error) int {
	var appErr *model.AppError
	if errors.As(err, &appErr) {
		err = appErr.Unwrap()
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, model.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, model.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// RespondWithJSON writes payload as a JSON response with the given status.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Error marshaling JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"code":"INTERNAL_SERVER_ERROR","message":"Failed to encode response."}}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}
