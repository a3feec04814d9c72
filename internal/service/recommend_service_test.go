package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"study_assist/internal/config"
	"study_assist/internal/model"
	"study_assist/internal/repository/mocks"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Resource{},
		&model.StudyLog{},
		&model.WellnessTip{},
		&model.Schedule{},
	))
	return db
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.App.Name = "StudyAssist"
	cfg.App.CandidateLimit = 6
	cfg.App.LearningPathLimit = 4
	cfg.App.RecentMoodCount = 3
	cfg.App.RecommendationLimit = 6
	cfg.App.StudyBlockMinutes = 25
	cfg.App.ShortBreakMinutes = 5
	cfg.App.LongBreakMinutes = 10
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = config.DefaultAccessTokenTTL
	return cfg
}

func Test_recommendService_Recommend(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cfg := testConfig()

	userID := uuid.New()
	beginnerUser := &model.User{UserID: userID, Name: "Ann", Email: "ann@example.com", Difficulty: "beginner"}

	anatomyResources := []*model.Resource{
		{ResourceID: uuid.New(), Topic: "Anatomy", DifficultyLevel: "Beginner", Rating: 4.7},
		{ResourceID: uuid.New(), Topic: "Anatomy", DifficultyLevel: "Beginner", Rating: 4.6},
		{ResourceID: uuid.New(), Topic: "Anatomy", DifficultyLevel: "Intermediate", Rating: 4.4},
	}

	tests := []struct {
		name       string
		req        *model.RecommendRequest
		difficulty string
		setupMocks func(u *mocks.UserRepository, r *mocks.ResourceRepository, l *mocks.StudyLogRepository, w *mocks.WellnessTipRepository)
		wantErr    error
		check      func(t *testing.T, resp *model.RecommendResponse)
	}{
		{
			name:       "preferred difficulty resources come first",
			req:        &model.RecommendRequest{UserID: userID, CurrentTopic: "Anatomy"},
			difficulty: "beginner",
			setupMocks: func(u *mocks.UserRepository, r *mocks.ResourceRepository, l *mocks.StudyLogRepository, w *mocks.WellnessTipRepository) {
				u.On("FindByID", ctx, db, userID).Return(beginnerUser, nil).Once()
				r.On("FindByTopicRanked", ctx, db, "Anatomy", 6).Return(anatomyResources, nil).Once()
				l.On("RecentMoods", ctx, db, userID, 3).Return([]int{2, 2, 3}, nil).Once()
				w.On("FindByCategory", ctx, db, model.CategoryStress).
					Return([]*model.WellnessTip{{Tip: "Breathe", Benefit: "Calms"}}, nil).Once()
			},
			check: func(t *testing.T, resp *model.RecommendResponse) {
				require.Len(t, resp.LearningPath, 3)
				assert.Equal(t, "Beginner", resp.LearningPath[0].DifficultyLevel)
				assert.Equal(t, "Beginner", resp.LearningPath[1].DifficultyLevel)
				assert.Equal(t, "Intermediate", resp.LearningPath[2].DifficultyLevel)
				assert.Equal(t, 4.7, resp.LearningPath[0].Rating)
				assert.Equal(t, "Breathe", resp.WellnessTip.Tip)
			},
		},
		{
			name: "learning path is capped at the limit",
			req:  &model.RecommendRequest{UserID: userID, CurrentTopic: "Anatomy"},
			setupMocks: func(u *mocks.UserRepository, r *mocks.ResourceRepository, l *mocks.StudyLogRepository, w *mocks.WellnessTipRepository) {
				many := []*model.Resource{
					{ResourceID: uuid.New(), DifficultyLevel: "Beginner", Rating: 4.9},
					{ResourceID: uuid.New(), DifficultyLevel: "Beginner", Rating: 4.8},
					{ResourceID: uuid.New(), DifficultyLevel: "Beginner", Rating: 4.7},
					{ResourceID: uuid.New(), DifficultyLevel: "Beginner", Rating: 4.6},
					{ResourceID: uuid.New(), DifficultyLevel: "Beginner", Rating: 4.5},
					{ResourceID: uuid.New(), DifficultyLevel: "Beginner", Rating: 4.4},
				}
				u.On("FindByID", ctx, db, userID).Return(beginnerUser, nil).Once()
				r.On("FindByTopicRanked", ctx, db, "Anatomy", 6).Return(many, nil).Once()
				l.On("RecentMoods", ctx, db, userID, 3).Return([]int{5, 5, 5}, nil).Once()
				w.On("FindByCategory", ctx, db, model.CategoryPhysical).
					Return([]*model.WellnessTip{{Tip: "Walk", Benefit: "Circulation"}}, nil).Once()
			},
			check: func(t *testing.T, resp *model.RecommendResponse) {
				assert.Len(t, resp.LearningPath, 4)
			},
		},
		{
			name: "no study logs falls back to focus category",
			req:  &model.RecommendRequest{UserID: userID, CurrentTopic: "Anatomy"},
			setupMocks: func(u *mocks.UserRepository, r *mocks.ResourceRepository, l *mocks.StudyLogRepository, w *mocks.WellnessTipRepository) {
				u.On("FindByID", ctx, db, userID).Return(beginnerUser, nil).Once()
				r.On("FindByTopicRanked", ctx, db, "Anatomy", 6).Return(anatomyResources, nil).Once()
				l.On("RecentMoods", ctx, db, userID, 3).Return([]int{}, nil).Once()
				w.On("FindByCategory", ctx, db, model.CategoryFocus).
					Return([]*model.WellnessTip{{Tip: "Pomodoro", Benefit: "Focus"}}, nil).Once()
			},
			check: func(t *testing.T, resp *model.RecommendResponse) {
				assert.Equal(t, "Pomodoro", resp.WellnessTip.Tip)
			},
		},
		{
			name: "empty tip category falls back to the default tip",
			req:  &model.RecommendRequest{UserID: userID, CurrentTopic: "Anatomy"},
			setupMocks: func(u *mocks.UserRepository, r *mocks.ResourceRepository, l *mocks.StudyLogRepository, w *mocks.WellnessTipRepository) {
				u.On("FindByID", ctx, db, userID).Return(beginnerUser, nil).Once()
				r.On("FindByTopicRanked", ctx, db, "Anatomy", 6).Return(anatomyResources, nil).Once()
				l.On("RecentMoods", ctx, db, userID, 3).Return([]int{4, 4, 4}, nil).Once()
				w.On("FindByCategory", ctx, db, model.CategoryPhysical).
					Return([]*model.WellnessTip{}, nil).Once()
			},
			check: func(t *testing.T, resp *model.RecommendResponse) {
				assert.Equal(t, "Take a short break", resp.WellnessTip.Tip)
				assert.Equal(t, "Reset", resp.WellnessTip.Benefit)
			},
		},
		{
			name: "unknown user returns not found",
			req:  &model.RecommendRequest{UserID: userID, CurrentTopic: "Anatomy"},
			setupMocks: func(u *mocks.UserRepository, r *mocks.ResourceRepository, l *mocks.StudyLogRepository, w *mocks.WellnessTipRepository) {
				u.On("FindByID", ctx, db, userID).Return(nil, model.ErrNotFound).Once()
			},
			wantErr: model.ErrNotFound,
		},
		{
			name: "topic with no resources returns not found",
			req:  &model.RecommendRequest{UserID: userID, CurrentTopic: "Alchemy"},
			setupMocks: func(u *mocks.UserRepository, r *mocks.ResourceRepository, l *mocks.StudyLogRepository, w *mocks.WellnessTipRepository) {
				u.On("FindByID", ctx, db, userID).Return(beginnerUser, nil).Once()
				r.On("FindByTopicRanked", ctx, db, "Alchemy", 6).Return([]*model.Resource{}, nil).Once()
			},
			wantErr: model.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(mocks.UserRepository)
			resourceRepo := new(mocks.ResourceRepository)
			logRepo := new(mocks.StudyLogRepository)
			tipRepo := new(mocks.WellnessTipRepository)
			tt.setupMocks(userRepo, resourceRepo, logRepo, tipRepo)

			svc := NewRecommendService(db, userRepo, resourceRepo, logRepo, tipRepo, cfg)
			svc.(*recommendService).randInt = func(n int) int { return 0 }

			resp, err := svc.Recommend(ctx, tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				require.NotNil(t, resp)
				tt.check(t, resp)
			}

			userRepo.AssertExpectations(t)
			resourceRepo.AssertExpectations(t)
			logRepo.AssertExpectations(t)
			tipRepo.AssertExpectations(t)
		})
	}
}

func Test_rankByDifficulty(t *testing.T) {
	mk := func(level string, rating float64) *model.Resource {
		return &model.Resource{ResourceID: uuid.New(), DifficultyLevel: level, Rating: rating}
	}

	t.Run("matches hybrid difficulty levels by substring", func(t *testing.T) {
		candidates := []*model.Resource{
			mk("Intermediate", 4.8),
			mk("Beginner/Intermediate", 4.5),
			mk("Beginner", 4.2),
		}
		got := rankByDifficulty(candidates, "beginner", 4)
		require.Len(t, got, 3)
		assert.Equal(t, "Beginner/Intermediate", got[0].DifficultyLevel)
		assert.Equal(t, "Beginner", got[1].DifficultyLevel)
		assert.Equal(t, "Intermediate", got[2].DifficultyLevel)
	})

	t.Run("empty difficulty keeps rating order", func(t *testing.T) {
		candidates := []*model.Resource{
			mk("Advanced", 4.9),
			mk("Beginner", 4.1),
		}
		got := rankByDifficulty(candidates, "", 4)
		require.Len(t, got, 2)
		assert.Equal(t, "Advanced", got[0].DifficultyLevel)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		candidates := []*model.Resource{
			mk("Beginner", 4.9), mk("Beginner", 4.8), mk("Beginner", 4.7),
		}
		got := rankByDifficulty(candidates, "beginner", 2)
		assert.Len(t, got, 2)
	})
}

func Test_categoryForMoods(t *testing.T) {
	tests := []struct {
		name  string
		moods []int
		want  string
	}{
		{"low average maps to stress", []int{2, 2, 3}, model.CategoryStress},
		{"middling average maps to focus", []int{3, 3, 4}, model.CategoryFocus},
		{"high average maps to physical", []int{4, 5, 4}, model.CategoryPhysical},
		{"no moods defaults to neutral focus", nil, model.CategoryFocus},
		{"boundary avg exactly 3 is focus", []int{3, 3, 3}, model.CategoryFocus},
		{"boundary avg exactly 4 is physical", []int{4, 4, 4}, model.CategoryPhysical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, categoryForMoods(tt.moods))
		})
	}
}

func Test_recommendService_Recommend_RepoError(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	cfg := testConfig()
	userID := uuid.New()

	userRepo := new(mocks.UserRepository)
	resourceRepo := new(mocks.ResourceRepository)
	logRepo := new(mocks.StudyLogRepository)
	tipRepo := new(mocks.WellnessTipRepository)

	userRepo.On("FindByID", ctx, db, userID).Return(nil, errors.New("conn refused")).Once()

	svc := NewRecommendService(db, userRepo, resourceRepo, logRepo, tipRepo, cfg)
	_, err := svc.Recommend(ctx, &model.RecommendRequest{UserID: userID, CurrentTopic: "Anatomy"})

	require.Error(t, err)
	var appErr *model.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
	userRepo.AssertExpectations(t)
}
