package model

import "github.com/google/uuid"

// Wellness tip categories derived from the recent mood trend.
const (
	CategoryStress   = "stress"
	CategoryFocus    = "focus"
	CategoryPhysical = "physical"
)

// WellnessTip is a static catalog entry keyed by category.
type WellnessTip struct {
	TipID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Category string    `gorm:"not null;index" json:"category"`
	Tip      string    `gorm:"not null" json:"tip"`
	Benefit  string    `json:"benefit"`
}

func (WellnessTip) TableName() string {
	return "wellness_tips"
}

// WellnessTipsResponse is the GET /wellness payload.
type WellnessTipsResponse struct {
	Count int            `json:"count"`
	Tips  []*WellnessTip `json:"tips"`
}

// WellnessScoreResponse scales the all-time average mood to a 0-100 score.
type WellnessScoreResponse struct {
	Score    float64 `json:"score"`
	Sessions int     `json:"sessions"`
}
