//go:generate mockery --name StudyLogRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
)

type StudyLogRepository interface {
	Create(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error
	// RecentMoods returns the moods of the most recent logs, newest first.
	RecentMoods(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]int, error)
	// AllMoods returns every recorded mood for the user.
	AllMoods(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]int, error)
	// LatestMood returns the single most recent mood, or ErrNotFound when the
	// user has no logs.
	LatestMood(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, error)
}

type gormStudyLogRepository struct{}

func NewGormStudyLogRepository() StudyLogRepository {
	return &gormStudyLogRepository{}
}

func (r *gormStudyLogRepository) Create(ctx context.Context, tx *gorm.DB, log *model.StudyLog) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(log)
	if result.Error != nil {
		logger.Error("Error creating study log in DB",
			"error", result.Error,
			"user_id", log.UserID.String(),
		)
		return fmt.Errorf("gormStudyLogRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStudyLogRepository) RecentMoods(ctx context.Context, db *gorm.DB, userID uuid.UUID, limit int) ([]int, error) {
	logger := middleware.GetLogger(ctx)
	var moods []int

	result := db.WithContext(ctx).
		Model(&model.StudyLog{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Pluck("mood", &moods)
	if result.Error != nil {
		logger.Error("Error fetching recent moods from DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormStudyLogRepository.RecentMoods: %w", result.Error)
	}
	return moods, nil
}

func (r *gormStudyLogRepository) AllMoods(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]int, error) {
	logger := middleware.GetLogger(ctx)
	var moods []int

	result := db.WithContext(ctx).
		Model(&model.StudyLog{}).
		Where("user_id = ?", userID).
		Pluck("mood", &moods)
	if result.Error != nil {
		logger.Error("Error fetching all moods from DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormStudyLogRepository.AllMoods: %w", result.Error)
	}
	return moods, nil
}

func (r *gormStudyLogRepository) LatestMood(ctx context.Context, db *gorm.DB, userID uuid.UUID) (int, error) {
	logger := middleware.GetLogger(ctx)
	var moods []int

	result := db.WithContext(ctx).
		Model(&model.StudyLog{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(1).
		Pluck("mood", &moods)
	if result.Error != nil {
		logger.Error("Error fetching latest mood from DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return 0, fmt.Errorf("gormStudyLogRepository.LatestMood: %w", result.Error)
	}
	if len(moods) == 0 {
		return 0, model.ErrNotFound
	}
	return moods[0], nil
}
