package service

import (
	"context"

	"gorm.io/gorm"

	"study_assist/internal/config"
	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/repository"
)

type ResourceService interface {
	List(ctx context.Context, topic string) (*model.ResourceListResponse, error)
	Recommendations(ctx context.Context, userID, topic string) (*model.RecommendationsResponse, error)
}

type resourceService struct {
	db           *gorm.DB
	resourceRepo repository.ResourceRepository
	cfg          *config.Config
}

func NewResourceService(db *gorm.DB, resourceRepo repository.ResourceRepository, cfg *config.Config) ResourceService {
	return &resourceService{db: db, resourceRepo: resourceRepo, cfg: cfg}
}

// List returns the catalog ordered by rating. An empty topic lists everything.
func (s *resourceService) List(ctx context.Context, topic string) (*model.ResourceListResponse, error) {
	logger := middleware.GetLogger(ctx)

	resources, err := s.resourceRepo.List(ctx, s.db, topic)
	if err != nil {
		logger.Error("Failed to list resources", "error", err, "topic", topic)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	return &model.ResourceListResponse{Count: len(resources), Resources: resources}, nil
}

// Recommendations is the quick topic lookup: top-rated matches for a topic,
// without the difficulty partitioning the personalized path does. The user id
// is echoed back untouched.
func (s *resourceService) Recommendations(ctx context.Context, userID, topic string) (*model.RecommendationsResponse, error) {
	logger := middleware.GetLogger(ctx).With("topic", topic)

	resources, err := s.resourceRepo.FindByTopicRanked(ctx, s.db, topic, s.cfg.App.RecommendationLimit)
	if err != nil {
		logger.Error("Failed to fetch recommendations", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	return &model.RecommendationsResponse{
		UserID:          userID,
		Topic:           topic,
		Recommendations: resources,
	}, nil
}
