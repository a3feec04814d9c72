package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/service"
	"study_assist/internal/webutil"
)

type WellnessHandler struct {
	service service.WellnessService
}

func NewWellnessHandler(s service.WellnessService) *WellnessHandler {
	return &WellnessHandler{service: s}
}

func (h *WellnessHandler) ListTips(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	resp, err := h.service.ListTips(r.Context())
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

func (h *WellnessHandler) Score(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	userID, err := uuid.Parse(chi.URLParam(r, "user_id"))
	if err != nil {
		logger.Warn("Invalid user_id in path", "error", err)
		appErr := model.NewAppError("VALIDATION_ERROR", "user_id must be a valid UUID.", "user_id", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	resp, err := h.service.Score(r.Context(), userID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
