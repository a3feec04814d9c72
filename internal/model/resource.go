package model

import "github.com/google/uuid"

// Resource is a curated catalog entry. The catalog is static; nothing in the
// API mutates it outside of seeding.
type Resource struct {
	ResourceID      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Topic           string    `gorm:"not null;index" json:"topic"`
	DifficultyLevel string    `gorm:"not null" json:"difficulty_level"`
	Type            string    `gorm:"not null" json:"type"`
	URL             string    `gorm:"uniqueIndex;not null" json:"url"`
	Description     string    `gorm:"not null" json:"description"`
	Rating          float64   `gorm:"not null;default:4.0" json:"rating"`
}

func (Resource) TableName() string {
	return "resources"
}

// ResourceListResponse is the GET /resources payload.
type ResourceListResponse struct {
	Count     int         `json:"count"`
	Resources []*Resource `json:"resources"`
}

// RecommendRequest is the POST /recommend body. StruggleArea is accepted but
// not consulted by the ranking.
type RecommendRequest struct {
	UserID       uuid.UUID `json:"user_id" validate:"required"`
	CurrentTopic string    `json:"current_topic" validate:"required"`
	StruggleArea string    `json:"struggle_area,omitempty"`
}

// TipPayload is the wellness tip part of a recommendation.
type TipPayload struct {
	Tip     string `json:"tip"`
	Benefit string `json:"benefit"`
}

// RecommendResponse composes the ranked learning path with a wellness tip.
type RecommendResponse struct {
	LearningPath []*Resource `json:"learning_path"`
	WellnessTip  TipPayload  `json:"wellness_tip"`
}

// RecommendationsResponse is the lightweight GET /recommendations payload.
type RecommendationsResponse struct {
	UserID          string      `json:"user_id"`
	Topic           string      `json:"topic"`
	Recommendations []*Resource `json:"recommendations"`
}
