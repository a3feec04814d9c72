package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Database struct {
		URL string `mapstructure:"url"`
	} `mapstructure:"database"`
	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`
	Log struct {
		Level string `mapstructure:"level"`
	} `mapstructure:"log"`
	App struct {
		Name string `mapstructure:"name"`
		Seed bool   `mapstructure:"seed"`
		// Recommendation tuning.
		CandidateLimit      int `mapstructure:"candidate_limit"`
		LearningPathLimit   int `mapstructure:"learning_path_limit"`
		RecentMoodCount     int `mapstructure:"recent_mood_count"`
		RecommendationLimit int `mapstructure:"recommendation_limit"`
		// Schedule tuning.
		StudyBlockMinutes int `mapstructure:"study_block_minutes"`
		ShortBreakMinutes int `mapstructure:"short_break_minutes"`
		LongBreakMinutes  int `mapstructure:"long_break_minutes"`
	} `mapstructure:"app"`
	JWT struct {
		SecretKey      string        `mapstructure:"secret_key"`
		AccessTokenTTL time.Duration `mapstructure:"access_token_ttl"`
	} `mapstructure:"jwt"`
	CORS struct {
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	} `mapstructure:"cors"`
}

var Cfg Config

func LoadConfig(path string) error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(path)
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("APP")
	viper.AutomaticEnv()
	viper.BindEnv("database.url", "DATABASE_URL")
	viper.BindEnv("jwt.secret_key", "JWT_SECRET_KEY")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Warning: Config file not found. Using defaults and environment variables.")
		} else {
			log.Printf("Error reading config file: %s\n", err)
			return err
		}
	}

	if err := viper.Unmarshal(&Cfg); err != nil {
		log.Printf("Error unmarshalling config: %s\n", err)
		return err
	}

	applyDefaults(&Cfg)

	log.Println("Config loaded successfully")
	log.Printf("Server Port: %s", Cfg.Server.Port)
	log.Printf("Seed Catalog: %t", Cfg.App.Seed)

	return nil
}

// applyDefaults fills unset values so the recommendation and schedule rules
// keep their documented behavior without a config file.
func applyDefaults(c *Config) {
	if c.Server.Port == "" {
		c.Server.Port = DefaultServerPort
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.App.Name == "" {
		c.App.Name = AppName
	}
	if c.App.CandidateLimit <= 0 {
		c.App.CandidateLimit = DefaultCandidateLimit
	}
	if c.App.LearningPathLimit <= 0 {
		c.App.LearningPathLimit = DefaultLearningPathLimit
	}
	if c.App.RecentMoodCount <= 0 {
		c.App.RecentMoodCount = DefaultRecentMoodCount
	}
	if c.App.RecommendationLimit <= 0 {
		c.App.RecommendationLimit = DefaultRecommendationLimit
	}
	if c.App.StudyBlockMinutes <= 0 {
		c.App.StudyBlockMinutes = DefaultStudyBlockMinutes
	}
	if c.App.ShortBreakMinutes <= 0 {
		c.App.ShortBreakMinutes = DefaultShortBreakMinutes
	}
	if c.App.LongBreakMinutes <= 0 {
		c.App.LongBreakMinutes = DefaultLongBreakMinutes
	}
	if c.JWT.SecretKey == "" {
		log.Println("Warning: JWT secret key is not set; using an insecure development default.")
		c.JWT.SecretKey = "dev-only-secret"
	}
	if c.JWT.AccessTokenTTL <= 0 {
		c.JWT.AccessTokenTTL = DefaultAccessTokenTTL
	}
	if c.Database.URL == "" {
		log.Println("Warning: Database URL is not set in config.")
	}
}
