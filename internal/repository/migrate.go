package repository

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"study_assist/internal/model"
)

// EnsureSchema creates or updates all tables. It is idempotent and runs once
// at process start.
func EnsureSchema(db *gorm.DB) error {
	err := db.AutoMigrate(
		&model.User{},
		&model.Resource{},
		&model.StudyLog{},
		&model.WellnessTip{},
		&model.Schedule{},
	)
	if err != nil {
		return fmt.Errorf("repository.EnsureSchema: %w", err)
	}
	return nil
}

// Reset drops all tables and recreates them. Used by the /init_db endpoint to
// restore a clean seeded state during development and testing.
func Reset(db *gorm.DB) error {
	err := db.Migrator().DropTable(
		&model.Schedule{},
		&model.StudyLog{},
		&model.WellnessTip{},
		&model.Resource{},
		&model.User{},
	)
	if err != nil {
		return fmt.Errorf("repository.Reset: %w", err)
	}
	return EnsureSchema(db)
}

// SeedCatalog inserts the demo user, resource catalog, and wellness tips if
// they are not already present. Safe to run on every start.
func SeedCatalog(db *gorm.DB, logger *slog.Logger) error {
	demoPassword := sha256.Sum256([]byte("password123"))

	demoUser := model.User{
		UserID:        uuid.New(),
		Name:          "Rohith Zacharias",
		Email:         "rohit@example.com",
		PasswordHash:  hex.EncodeToString(demoPassword[:]),
		Topics:        model.StringList{"Anatomy", "Physiology"},
		Difficulty:    "beginner",
		WellnessGoals: model.StringList{"sleep", "hydration"},
	}
	var existing model.User
	err := db.Where("email = ?", demoUser.Email).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := db.Create(&demoUser).Error; err != nil {
			return fmt.Errorf("repository.SeedCatalog: seed user: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("repository.SeedCatalog: check user: %w", err)
	}

	resources := []model.Resource{
		{Topic: "Anatomy", DifficultyLevel: "Beginner", Type: "Article", URL: "https://example.com/nervous", Description: "Nervous system overview, illustrations", Rating: 4.7},
		{Topic: "Anatomy", DifficultyLevel: "Beginner", Type: "Video", URL: "https://youtu.be/example", Description: "Nervous System — Basics (video)", Rating: 4.6},
		{Topic: "Anatomy", DifficultyLevel: "Intermediate", Type: "Flashcards", URL: "https://example.com/flashcards", Description: "Nervous system flashcards", Rating: 4.4},
		{Topic: "Physiology", DifficultyLevel: "Beginner", Type: "Video", URL: "https://youtu.be/example2", Description: "Respiratory physiology basics", Rating: 4.5},
		{Topic: "Time Management", DifficultyLevel: "Beginner", Type: "Article", URL: "https://www.mindtools.com", Description: "Time management techniques", Rating: 4.3},
		{Topic: "Stress Management", DifficultyLevel: "Intermediate", Type: "Article", URL: "https://www.helpguide.org", Description: "Stress reduction tips", Rating: 4.6},
	}
	for _, r := range resources {
		var count int64
		if err := db.Model(&model.Resource{}).Where("url = ?", r.URL).Count(&count).Error; err != nil {
			return fmt.Errorf("repository.SeedCatalog: check resource: %w", err)
		}
		if count == 0 {
			r.ResourceID = uuid.New()
			if err := db.Create(&r).Error; err != nil {
				return fmt.Errorf("repository.SeedCatalog: seed resource: %w", err)
			}
		}
	}

	tips := []model.WellnessTip{
		{Category: model.CategoryStress, Tip: "Take a short walk and breathe deeply", Benefit: "Reduces anxiety and refreshes mind"},
		{Category: model.CategoryFocus, Tip: "Use Pomodoro technique: 25 min study + 5 min break", Benefit: "Improves attention and retention"},
		{Category: model.CategoryPhysical, Tip: "Stretch your arms and neck every hour", Benefit: "Prevents fatigue and improves posture"},
		{Category: "hydration", Tip: "Drink a glass of water during short breaks", Benefit: "Maintains cognitive function"},
	}
	for _, t := range tips {
		var count int64
		if err := db.Model(&model.WellnessTip{}).Where("tip = ?", t.Tip).Count(&count).Error; err != nil {
			return fmt.Errorf("repository.SeedCatalog: check tip: %w", err)
		}
		if count == 0 {
			t.TipID = uuid.New()
			if err := db.Create(&t).Error; err != nil {
				return fmt.Errorf("repository.SeedCatalog: seed tip: %w", err)
			}
		}
	}

	logger.Info("Catalog seed complete")
	return nil
}
