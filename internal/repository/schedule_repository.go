//go:generate mockery --name ScheduleRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
)

type ScheduleRepository interface {
	Create(ctx context.Context, tx *gorm.DB, schedule *model.Schedule) error
	// FindByUser returns the schedule history for a user, newest first.
	FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Schedule, error)
}

type gormScheduleRepository struct{}

func NewGormScheduleRepository() ScheduleRepository {
	return &gormScheduleRepository{}
}

func (r *gormScheduleRepository) Create(ctx context.Context, tx *gorm.DB, schedule *model.Schedule) error {
	logger := middleware.GetLogger(ctx)

	result := tx.WithContext(ctx).Create(schedule)
	if result.Error != nil {
		logger.Error("Error creating schedule in DB",
			"error", result.Error,
			"user_id", schedule.UserID.String(),
		)
		return fmt.Errorf("gormScheduleRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormScheduleRepository) FindByUser(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]*model.Schedule, error) {
	logger := middleware.GetLogger(ctx)
	var schedules []*model.Schedule

	result := db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&schedules)
	if result.Error != nil {
		logger.Error("Error finding schedules by user in DB",
			"error", result.Error,
			"user_id", userID.String(),
		)
		return nil, fmt.Errorf("gormScheduleRepository.FindByUser: %w", result.Error)
	}
	return schedules, nil
}
