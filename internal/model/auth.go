package model

import "github.com/google/uuid"

// LoginRequest is the login API request body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	AccessToken string    `json:"access_token"`
	Message     string    `json:"message"`
}
