package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/service"
	"study_assist/internal/webutil"
)

type StudyLogHandler struct {
	service service.StudyLogService
}

func NewStudyLogHandler(s service.StudyLogService) *StudyLogHandler {
	return &StudyLogHandler{service: s}
}

func (h *StudyLogHandler) LogStudy(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LogStudyRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for log-study", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationAppError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for log-study", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	if err := h.service.LogStudy(r.Context(), &req); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.LogStudyResponse{
		Message: "Study session logged",
	}, logger)
}
