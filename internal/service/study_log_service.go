package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/repository"
)

type StudyLogService interface {
	LogStudy(ctx context.Context, req *model.LogStudyRequest) error
}

type studyLogService struct {
	db       *gorm.DB
	logRepo  repository.StudyLogRepository
	userRepo repository.UserRepository
}

func NewStudyLogService(db *gorm.DB, logRepo repository.StudyLogRepository, userRepo repository.UserRepository) StudyLogService {
	return &studyLogService{db: db, logRepo: logRepo, userRepo: userRepo}
}

func (s *studyLogService) LogStudy(ctx context.Context, req *model.LogStudyRequest) error {
	logger := middleware.GetLogger(ctx).With("user_id", req.UserID, "topic", req.Topic)

	if req.Duration <= 0 {
		return model.NewAppError("VALIDATION_ERROR", "duration must be a positive integer.", "duration", model.ErrInvalidInput)
	}
	if req.Mood < 1 || req.Mood > 5 {
		return model.NewAppError("VALIDATION_ERROR", "mood must be between 1 and 5.", "mood", model.ErrInvalidInput)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := &model.StudyLog{
			LogID:        uuid.New(),
			UserID:       req.UserID,
			Topic:        req.Topic,
			StruggleArea: req.StruggleArea,
			Duration:     req.Duration,
			Mood:         req.Mood,
		}
		if err := s.logRepo.Create(ctx, tx, entry); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save study log.", "", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to log study session", "error", err)
		return err
	}

	logger.Info("Study session logged", "duration", req.Duration, "mood", req.Mood)
	return nil
}
