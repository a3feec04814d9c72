package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/service"
	"study_assist/internal/webutil"
)

type ScheduleHandler struct {
	service service.ScheduleService
}

func NewScheduleHandler(s service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: s}
}

func (h *ScheduleHandler) ScheduleBreak(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.ScheduleBreakRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for schedule-break", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationAppError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for schedule-break", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	blocks, err := h.service.GenerateBreakSchedule(r.Context(), req.UserID, req.StudyDuration)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.ScheduleBreakResponse{
		UserID:   req.UserID,
		Schedule: blocks,
	}, logger)
}

func (h *ScheduleHandler) ListSchedules(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		logger.Warn("Invalid user_id in path", "error", err)
		appErr := model.NewAppError("VALIDATION_ERROR", "user_id must be a valid UUID.", "user_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	items, err := h.service.ListSchedules(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, model.ScheduleListResponse{
		UserID:    userID,
		Schedules: items,
	}, logger)
}
