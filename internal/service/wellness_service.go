package service

import (
	"context"
	"math"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/repository"
)

type WellnessService interface {
	Score(ctx context.Context, userID uuid.UUID) (*model.WellnessScoreResponse, error)
	ListTips(ctx context.Context) (*model.WellnessTipsResponse, error)
}

type wellnessService struct {
	db      *gorm.DB
	logRepo repository.StudyLogRepository
	tipRepo repository.WellnessTipRepository
}

func NewWellnessService(db *gorm.DB, logRepo repository.StudyLogRepository, tipRepo repository.WellnessTipRepository) WellnessService {
	return &wellnessService{db: db, logRepo: logRepo, tipRepo: tipRepo}
}

// Score maps the user's average mood onto a 0-100 scale. Each mood point is
// worth 20, rounded to two decimals. No sessions means a zero score, not an
// error.
func (s *wellnessService) Score(ctx context.Context, userID uuid.UUID) (*model.WellnessScoreResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	moods, err := s.logRepo.AllMoods(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to fetch moods", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	if len(moods) == 0 {
		return &model.WellnessScoreResponse{Score: 0, Sessions: 0}, nil
	}

	var sum int
	for _, m := range moods {
		sum += m
	}
	avg := float64(sum) / float64(len(moods))
	score := math.Round(avg*20*100) / 100

	return &model.WellnessScoreResponse{Score: score, Sessions: len(moods)}, nil
}

func (s *wellnessService) ListTips(ctx context.Context) (*model.WellnessTipsResponse, error) {
	logger := middleware.GetLogger(ctx)

	tips, err := s.tipRepo.List(ctx, s.db)
	if err != nil {
		logger.Error("Failed to list wellness tips", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	return &model.WellnessTipsResponse{Count: len(tips), Tips: tips}, nil
}
