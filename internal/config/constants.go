package config

import "time"

const (
	AppName    = "StudyAssist"
	AppVersion = "1.0.0"
)

// Default settings. The break/block values implement the documented
// scheduling rule: 25-minute study blocks, 5-minute breaks, stretched to 10
// minutes when the latest mood is low.
const (
	DefaultServerPort = ":8080"
	DefaultLogLevel   = "info"

	DefaultCandidateLimit      = 6
	DefaultLearningPathLimit   = 4
	DefaultRecentMoodCount     = 3
	DefaultRecommendationLimit = 6

	DefaultStudyBlockMinutes = 25
	DefaultShortBreakMinutes = 5
	DefaultLongBreakMinutes  = 10

	DefaultAccessTokenTTL = 24 * time.Hour
)
