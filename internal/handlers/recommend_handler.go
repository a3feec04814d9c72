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

type RecommendHandler struct {
	recommendService service.RecommendService
	resourceService  service.ResourceService
}

func NewRecommendHandler(recommendService service.RecommendService, resourceService service.ResourceService) *RecommendHandler {
	return &RecommendHandler{
		recommendService: recommendService,
		resourceService:  resourceService,
	}
}

// Recommend builds a personalized learning path plus a mood-matched wellness
// tip.
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RecommendRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for recommend", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationAppError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for recommend", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.recommendService.Recommend(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// Recommendations is the lightweight query-string lookup. The topic parameter
// is required; user_id is echoed back unchecked.
func (h *RecommendHandler) Recommendations(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	topic := r.URL.Query().Get("topic")
	if topic == "" {
		logger.Warn("Recommendations requested without topic")
		appErr := model.NewAppError("VALIDATION_ERROR", "topic query parameter is required.", "topic", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}
	userID := r.URL.Query().Get("user_id")

	resp, err := h.resourceService.Recommendations(r.Context(), userID, topic)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
