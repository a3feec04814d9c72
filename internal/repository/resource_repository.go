//go:generate mockery --name ResourceRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
)

type ResourceRepository interface {
	// FindByTopicRanked returns up to limit resources for topic, ordered by
	// rating descending then difficulty_level ascending. This is the
	// candidate pre-sort the ranker depends on.
	FindByTopicRanked(ctx context.Context, db *gorm.DB, topic string, limit int) ([]*model.Resource, error)
	// List returns resources ordered by rating descending, optionally
	// filtered by topic (empty topic means all).
	List(ctx context.Context, db *gorm.DB, topic string) ([]*model.Resource, error)
}

type gormResourceRepository struct{}

func NewGormResourceRepository() ResourceRepository {
	return &gormResourceRepository{}
}

func (r *gormResourceRepository) FindByTopicRanked(ctx context.Context, db *gorm.DB, topic string, limit int) ([]*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	var resources []*model.Resource

	result := db.WithContext(ctx).
		Where("topic = ?", topic).
		Order("rating DESC").
		Order("difficulty_level ASC").
		Limit(limit).
		Find(&resources)
	if result.Error != nil {
		logger.Error("Error finding resources by topic in DB",
			"error", result.Error,
			"topic", topic,
		)
		return nil, fmt.Errorf("gormResourceRepository.FindByTopicRanked: %w", result.Error)
	}
	return resources, nil
}

func (r *gormResourceRepository) List(ctx context.Context, db *gorm.DB, topic string) ([]*model.Resource, error) {
	logger := middleware.GetLogger(ctx)
	var resources []*model.Resource

	query := db.WithContext(ctx).Order("rating DESC")
	if topic != "" {
		query = query.Where("topic = ?", topic)
	}
	result := query.Find(&resources)
	if result.Error != nil {
		logger.Error("Error listing resources in DB",
			"error", result.Error,
			"topic", topic,
		)
		return nil, fmt.Errorf("gormResourceRepository.List: %w", result.Error)
	}
	return resources, nil
}
