package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"study_assist/internal/config"
	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/repository"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error)
}

type authService struct {
	db       *gorm.DB
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewAuthService(db *gorm.DB, userRepo repository.UserRepository, cfg *config.Config) AuthService {
	return &authService{
		db:       db,
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// hashPassword computes the stored credential digest. The catalog keeps a
// plain sha256 hex digest; login compares digests for equality.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register creates a new account. Duplicate emails are rejected with a
// conflict; the insert itself re-checks via the unique constraint to cover
// racing registrations.
func (s *authService) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	logger := middleware.GetLogger(ctx)
	var newUser *model.User

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := s.userRepo.FindByEmail(ctx, tx, req.Email)
		if err == nil {
			logger.Warn("Email already exists", "email", req.Email)
			return model.NewAppError("DUPLICATE_EMAIL", "Email already exists.", "email", model.ErrConflict)
		}
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to check email existence", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}

		difficulty := req.Difficulty
		if difficulty == "" {
			difficulty = "beginner"
		}

		user := &model.User{
			UserID:        uuid.New(),
			Name:          req.Name,
			Email:         req.Email,
			PasswordHash:  hashPassword(req.Password),
			Topics:        model.StringList(req.Topics),
			Difficulty:    difficulty,
			WellnessGoals: model.StringList(req.WellnessGoals),
		}

		if err := s.userRepo.Create(ctx, tx, user); err != nil {
			if errors.Is(err, model.ErrConflict) {
				logger.Warn("Conflict during user creation (race condition)", "email", req.Email)
				return model.NewAppError("DUPLICATE_EMAIL", "Email already exists.", "email", model.ErrConflict)
			}
			logger.Error("Failed to create user in DB", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to create user.", "", err)
		}
		newUser = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("User registered", "user_id", newUser.UserID, "email", newUser.Email)
	return newUser, nil
}

// Login authenticates by digest comparison and issues a signed access token.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	logger := middleware.GetLogger(ctx).With("email", req.Email)

	user, err := s.userRepo.FindByEmail(ctx, s.db, req.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Login failed: user not found")
			return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid credentials.", "", model.ErrUnauthorized)
		}
		logger.Error("Login failed: db error on FindByEmail", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if user.PasswordHash != hashPassword(req.Password) {
		logger.Warn("Login failed: password mismatch", "user_id", user.UserID)
		return nil, model.NewAppError("AUTHENTICATION_FAILED", "Invalid credentials.", "", model.ErrUnauthorized)
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    s.cfg.App.Name,
		Subject:   user.UserID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.cfg.JWT.AccessTokenTTL)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		logger.Error("Failed to sign JWT", "error", err, "user_id", user.UserID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to issue access token.", "", err)
	}

	logger.Info("Login successful", "user_id", user.UserID)
	return &model.LoginResponse{
		UserID:      user.UserID,
		Name:        user.Name,
		AccessToken: signedToken,
		Message:     "Login successful",
	}, nil
}

// GetUser returns the user record for userID.
func (s *authService) GetUser(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, s.db, userID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "", model.ErrNotFound)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	return user, nil
}
