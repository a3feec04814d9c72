package service

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"gorm.io/gorm"

	"study_assist/internal/config"
	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/repository"
)

type RecommendService interface {
	Recommend(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error)
}

type recommendService struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	resourceRepo repository.ResourceRepository
	logRepo      repository.StudyLogRepository
	tipRepo      repository.WellnessTipRepository
	cfg          *config.Config

	// randInt picks the wellness tip; injectable so tests are deterministic.
	randInt func(n int) int
}

func NewRecommendService(
	db *gorm.DB,
	userRepo repository.UserRepository,
	resourceRepo repository.ResourceRepository,
	logRepo repository.StudyLogRepository,
	tipRepo repository.WellnessTipRepository,
	cfg *config.Config,
) RecommendService {
	return &recommendService{
		db:           db,
		userRepo:     userRepo,
		resourceRepo: resourceRepo,
		logRepo:      logRepo,
		tipRepo:      tipRepo,
		cfg:          cfg,
		randInt:      rand.Intn,
	}
}

// Recommend composes the ranked learning path for the topic with a wellness
// tip picked from the user's recent mood trend. StruggleArea is recorded on
// study logs elsewhere but does not influence ranking.
func (s *recommendService) Recommend(ctx context.Context, req *model.RecommendRequest) (*model.RecommendResponse, error) {
	logger := middleware.GetLogger(ctx).With("user_id", req.UserID, "topic", req.CurrentTopic)

	user, err := s.userRepo.FindByID(ctx, s.db, req.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Warn("Recommend failed: user not found")
			return nil, model.NewAppError("USER_NOT_FOUND", "User not found.", "user_id", model.ErrNotFound)
		}
		logger.Error("Recommend failed: db error on FindByID", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	candidates, err := s.resourceRepo.FindByTopicRanked(ctx, s.db, req.CurrentTopic, s.cfg.App.CandidateLimit)
	if err != nil {
		logger.Error("Recommend failed: db error on FindByTopicRanked", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	if len(candidates) == 0 {
		logger.Info("No resources found for topic")
		return nil, model.NewAppError("NO_RESOURCES", "No resources found for topic.", "current_topic", model.ErrNotFound)
	}

	learningPath := rankByDifficulty(candidates, user.Difficulty, s.cfg.App.LearningPathLimit)

	moods, err := s.logRepo.RecentMoods(ctx, s.db, req.UserID, s.cfg.App.RecentMoodCount)
	if err != nil {
		logger.Error("Recommend failed: db error on RecentMoods", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}
	category := categoryForMoods(moods)

	tip, err := s.pickTip(ctx, category)
	if err != nil {
		logger.Error("Recommend failed: db error on tip lookup", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	logger.Info("Recommendation composed",
		"path_len", len(learningPath),
		"tip_category", category,
	)
	return &model.RecommendResponse{
		LearningPath: learningPath,
		WellnessTip:  tip,
	}, nil
}

// rankByDifficulty splits candidates into a preferred group whose
// difficulty_level contains the user's stated difficulty (case-insensitive
// substring, so "beginner" also matches hybrid levels like
// "Beginner/Intermediate") and the rest, preserving relative order within
// each group, then truncates to limit. An empty difficulty leaves everything
// in the fallback group, keeping the catalog's rating order.
func rankByDifficulty(candidates []*model.Resource, userDifficulty string, limit int) []*model.Resource {
	want := strings.ToLower(userDifficulty)

	var preferred, fallback []*model.Resource
	for _, res := range candidates {
		level := strings.ToLower(res.DifficultyLevel)
		if want != "" && strings.Contains(level, want) {
			preferred = append(preferred, res)
		} else {
			fallback = append(fallback, res)
		}
	}

	ordered := append(preferred, fallback...)
	if len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

// categoryForMoods maps the mean of the recent moods to a tip category.
// No logs counts as a neutral mood of 3, so new users still get a tip.
func categoryForMoods(moods []int) string {
	avg := 3.0
	if len(moods) > 0 {
		sum := 0
		for _, m := range moods {
			sum += m
		}
		avg = float64(sum) / float64(len(moods))
	}

	switch {
	case avg < 3:
		return model.CategoryStress
	case avg < 4:
		return model.CategoryFocus
	default:
		return model.CategoryPhysical
	}
}

// pickTip selects one tip uniformly at random from the category, falling
// back to a fixed tip when the category is empty.
func (s *recommendService) pickTip(ctx context.Context, category string) (model.TipPayload, error) {
	tips, err := s.tipRepo.FindByCategory(ctx, s.db, category)
	if err != nil {
		return model.TipPayload{}, err
	}
	if len(tips) == 0 {
		return model.TipPayload{Tip: "Take a short break", Benefit: "Reset"}, nil
	}

	chosen := tips[s.randInt(len(tips))]
	return model.TipPayload{Tip: chosen.Tip, Benefit: chosen.Benefit}, nil
}
