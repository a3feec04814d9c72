package model

import (
	"time"

	"github.com/google/uuid"
)

// StudyLog is an append-only record of one study session with a 1-5 mood
// self-report. CreatedAt is assigned by the store and orders the log.
type StudyLog struct {
	LogID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Topic        string    `json:"topic"`
	StruggleArea string    `json:"struggle_area"`
	Duration     int       `gorm:"not null" json:"duration"`
	Mood         int       `gorm:"not null" json:"mood"`
	CreatedAt    time.Time `gorm:"index" json:"timestamp"`

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (StudyLog) TableName() string {
	return "study_logs"
}

// LogStudyRequest is the POST /log-study body. Mood outside 1-5 and
// non-positive durations are rejected before any write.
type LogStudyRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	Topic        string    `json:"topic" validate:"required"`
	StruggleArea string    `json:"struggle_area" validate:"required"`
	Duration     int       `json:"duration" validate:"required,gt=0"`
	Mood         int       `json:"mood" validate:"required,min=1,max=5"`
}

type LogStudyResponse struct {
	Message string `json:"message"`
}
