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

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(s service.AuthService) *AuthHandler {
	return &AuthHandler{service: s}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.RegisterRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for registration", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationAppError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for registration", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User registered", "user_id", user.UserID)
	webutil.RespondWithJSON(w, http.StatusOK, model.RegisterResponse{
		Message: "User registered",
		UserID:  user.UserID,
	}, logger)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	logger := middleware.GetLogger(r.Context())

	var req model.LoginRequest
	if err := webutil.DecodeJSONBody(r, &req); err != nil {
		logger.Warn("Failed to decode request body", "error", err)
		appErr := model.NewAppError("INVALID_REQUEST_BODY", "Request body is malformed.", "", model.ErrInvalidInput)
		webutil.HandleError(w, logger, appErr)
		return
	}

	if err := webutil.Validator.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			logger.Warn("Validation failed for login", "errors", validationErrors.Error())
			webutil.HandleError(w, logger, webutil.NewValidationAppError(validationErrors))
		} else {
			logger.Error("Unexpected error during validation for login", "error", err)
			webutil.HandleError(w, logger, err)
		}
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("User logged in", "user_id", resp.UserID)
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}
