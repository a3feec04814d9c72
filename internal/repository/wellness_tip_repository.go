//go:generate mockery --name WellnessTipRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
)

type WellnessTipRepository interface {
	FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]*model.WellnessTip, error)
	List(ctx context.Context, db *gorm.DB) ([]*model.WellnessTip, error)
}

type gormWellnessTipRepository struct{}

func NewGormWellnessTipRepository() WellnessTipRepository {
	return &gormWellnessTipRepository{}
}

func (r *gormWellnessTipRepository) FindByCategory(ctx context.Context, db *gorm.DB, category string) ([]*model.WellnessTip, error) {
	logger := middleware.GetLogger(ctx)
	var tips []*model.WellnessTip

	result := db.WithContext(ctx).Where("category = ?", category).Find(&tips)
	if result.Error != nil {
		logger.Error("Error finding wellness tips by category in DB",
			"error", result.Error,
			"category", category,
		)
		return nil, fmt.Errorf("gormWellnessTipRepository.FindByCategory: %w", result.Error)
	}
	return tips, nil
}

func (r *gormWellnessTipRepository) List(ctx context.Context, db *gorm.DB) ([]*model.WellnessTip, error) {
	logger := middleware.GetLogger(ctx)
	var tips []*model.WellnessTip

	result := db.WithContext(ctx).Find(&tips)
	if result.Error != nil {
		logger.Error("Error listing wellness tips in DB", "error", result.Error)
		return nil, fmt.Errorf("gormWellnessTipRepository.List: %w", result.Error)
	}
	return tips, nil
}
