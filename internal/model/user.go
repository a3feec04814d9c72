package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a []string stored as a JSON text column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("StringList: unsupported column type " + fmt.Sprintf("%T", value))
	}
}

// User is a registered account with stated study preferences.
type User struct {
	UserID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name          string         `gorm:"not null" json:"name"`
	Email         string         `gorm:"unique;not null" json:"email"`
	PasswordHash  string         `gorm:"not null" json:"-"`
	Topics        StringList     `gorm:"type:text" json:"topics"`
	Difficulty    string         `gorm:"not null;default:beginner" json:"difficulty"`
	WellnessGoals StringList     `gorm:"type:text" json:"wellness_goals"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"-"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string {
	return "users"
}

// RegisterRequest is the DTO for account registration.
type RegisterRequest struct {
	Name          string   `json:"name" validate:"required,min=1,max=100"`
	Email         string   `json:"email" validate:"required,email"`
	Password      string   `json:"password" validate:"required,min=8,max=72"`
	Topics        []string `json:"topics,omitempty"`
	Difficulty    string   `json:"difficulty,omitempty"`
	WellnessGoals []string `json:"wellness_goals,omitempty"`
}

type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"user_id"`
}
