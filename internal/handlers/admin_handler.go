package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/repository"
	"study_assist/internal/webutil"
)

// AdminHandler exposes the database reset endpoint. It drops and recreates
// every table, so it is meant for development setups only.
type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

func (h *AdminHandler) InitDB(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	if err := repository.Reset(h.db); err != nil {
		logger.Error("Failed to reset schema", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to reset database.", "", err))
		return
	}
	if err := repository.SeedCatalog(h.db, logger); err != nil {
		logger.Error("Failed to seed catalog", "error", err)
		webutil.HandleError(w, logger, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to seed database.", "", err))
		return
	}

	logger.Info("Database reinitialized")
	webutil.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"message": "DB created and seeded.",
	}, logger)
}
