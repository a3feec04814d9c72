package handlers

import (
	"net/http"

	"study_assist/internal/middleware"
	"study_assist/internal/service"
	"study_assist/internal/webutil"
)

type ResourceHandler struct {
	service service.ResourceService
}

func NewResourceHandler(s service.ResourceService) *ResourceHandler {
	return &ResourceHandler{service: s}
}

// List returns the catalog, optionally filtered by the topic query parameter.
func (h *ResourceHandler) List(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	topic := r.URL.Query().Get("topic")

	resp, err := h.service.List(r.Context(), topic)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
