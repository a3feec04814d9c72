package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"study_assist/internal/config"
	"study_assist/internal/middleware"
	"study_assist/internal/model"
	"study_assist/internal/repository"
)

const (
	breakTip = "Stand up and stretch or take a short walk"
	finalTip = "Session complete — take a longer break"
)

type ScheduleService interface {
	GenerateBreakSchedule(ctx context.Context, userID uuid.UUID, studyDuration int) ([]model.ScheduleBlock, error)
	ListSchedules(ctx context.Context, userID uuid.UUID) ([]*model.ScheduleHistoryItem, error)
}

type scheduleService struct {
	db        *gorm.DB
	logRepo   repository.StudyLogRepository
	schedRepo repository.ScheduleRepository
	cfg       *config.Config

	// now supplies the schedule start time; injectable for tests.
	now func() time.Time
}

func NewScheduleService(db *gorm.DB, logRepo repository.StudyLogRepository, schedRepo repository.ScheduleRepository, cfg *config.Config) ScheduleService {
	return &scheduleService{
		db:        db,
		logRepo:   logRepo,
		schedRepo: schedRepo,
		cfg:       cfg,
		now:       time.Now,
	}
}

// GenerateBreakSchedule chunks studyDuration minutes into fixed-size study
// blocks separated by breaks and persists the result. The break length is
// decided once per schedule from the user's latest mood: a low mood earns
// the longer break. Break minutes are additive; the study minutes across all
// blocks sum exactly to studyDuration, and only the final block has a zero
// break.
func (s *scheduleService) GenerateBreakSchedule(ctx context.Context, userID uuid.UUID, studyDuration int) ([]model.ScheduleBlock, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	if studyDuration <= 0 {
		return nil, model.NewAppError("VALIDATION_ERROR", "study_duration must be a positive integer.", "study_duration", model.ErrInvalidInput)
	}

	mood, err := s.logRepo.LatestMood(ctx, s.db, userID)
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Failed to fetch latest mood", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
		}
		mood = 3
	}

	breakMinutes := s.cfg.App.ShortBreakMinutes
	if mood < 3 {
		breakMinutes = s.cfg.App.LongBreakMinutes
	}

	blocks := buildBlocks(s.now().UTC(), studyDuration, s.cfg.App.StudyBlockMinutes, breakMinutes)

	blob, err := json.Marshal(blocks)
	if err != nil {
		logger.Error("Failed to serialize schedule", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to serialize schedule.", "", err)
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		schedule := &model.Schedule{
			ScheduleID:   uuid.New(),
			UserID:       userID,
			ScheduleJSON: string(blob),
		}
		if err := s.schedRepo.Create(ctx, tx, schedule); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "Failed to save schedule.", "", err)
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to persist schedule", "error", err)
		return nil, err
	}

	logger.Info("Schedule generated",
		"blocks", len(blocks),
		"break_minutes", breakMinutes,
		"study_duration", studyDuration,
	)
	return blocks, nil
}

// buildBlocks performs the greedy chunking: repeatedly take up to blockSize
// minutes until the requested duration is consumed. Every block but the last
// carries the fixed break and advances the next start past it.
func buildBlocks(start time.Time, studyDuration, blockSize, breakMinutes int) []model.ScheduleBlock {
	var blocks []model.ScheduleBlock
	remaining := studyDuration

	for remaining > 0 {
		thisStudy := blockSize
		if remaining < thisStudy {
			thisStudy = remaining
		}
		end := start.Add(time.Duration(thisStudy) * time.Minute)
		remaining -= thisStudy

		if remaining > 0 {
			blocks = append(blocks, model.ScheduleBlock{
				StudyMinutes: thisStudy,
				Start:        start,
				End:          end,
				BreakMinutes: breakMinutes,
				Tip:          breakTip,
			})
			start = end.Add(time.Duration(breakMinutes) * time.Minute)
		} else {
			blocks = append(blocks, model.ScheduleBlock{
				StudyMinutes: thisStudy,
				Start:        start,
				End:          end,
				BreakMinutes: 0,
				Tip:          finalTip,
			})
		}
	}

	return blocks
}

// ListSchedules returns the stored schedule history, newest first, with the
// serialized blocks parsed back out.
func (s *scheduleService) ListSchedules(ctx context.Context, userID uuid.UUID) ([]*model.ScheduleHistoryItem, error) {
	logger := middleware.GetLogger(ctx).With("user_id", userID)

	schedules, err := s.schedRepo.FindByUser(ctx, s.db, userID)
	if err != nil {
		logger.Error("Failed to list schedules", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "An internal server error occurred.", "", err)
	}

	items := make([]*model.ScheduleHistoryItem, 0, len(schedules))
	for _, sch := range schedules {
		var blocks []model.ScheduleBlock
		if err := json.Unmarshal([]byte(sch.ScheduleJSON), &blocks); err != nil {
			logger.Warn("Skipping schedule with unparsable blob", "schedule_id", sch.ScheduleID, "error", err)
			continue
		}
		items = append(items, &model.ScheduleHistoryItem{
			ID:        sch.ScheduleID,
			CreatedAt: sch.CreatedAt,
			Schedule:  blocks,
		})
	}

	return items, nil
}
