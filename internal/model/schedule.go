package model

import (
	"time"

	"github.com/google/uuid"
)

// Schedule is one generated study/break plan, stored as the serialized block
// sequence. History is append-only per user.
type Schedule struct {
	ScheduleID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ScheduleJSON string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`

	User *User `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Schedule) TableName() string {
	return "schedules"
}

// ScheduleBlock is one study interval plus its trailing break. The final
// block of a schedule carries a zero break.
type ScheduleBlock struct {
	StudyMinutes int       `json:"study_minutes"`
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	BreakMinutes int       `json:"break_minutes"`
	Tip          string    `json:"tip"`
}

// ScheduleBreakRequest is the POST /schedule-break body.
type ScheduleBreakRequest struct {
	UserID        uuid.UUID `json:"user_id" validate:"required"`
	StudyDuration int       `json:"study_duration" validate:"required,gt=0"`
}

type ScheduleBreakResponse struct {
	UserID   uuid.UUID       `json:"user_id"`
	Schedule []ScheduleBlock `json:"schedule"`
}

// ScheduleHistoryItem is one stored schedule with its parsed blocks.
type ScheduleHistoryItem struct {
	ID        uuid.UUID       `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Schedule  []ScheduleBlock `json:"schedule"`
}

type ScheduleListResponse struct {
	UserID    uuid.UUID              `json:"user_id"`
	Schedules []*ScheduleHistoryItem `json:"schedules"`
}
