package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/lmittmann/tint"
	"github.com/rs/cors"

	"study_assist/internal/config"
	"study_assist/internal/handlers"
	"study_assist/internal/middleware"
	"study_assist/internal/repository"
	"study_assist/internal/service"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func main() {
	// Temporary logger so config loading has somewhere to report.
	tempLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(tempLogger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logLevel := new(slog.LevelVar)
	switch strings.ToLower(config.Cfg.Log.Level) {
	case "debug":
		logLevel.Set(slog.LevelDebug)
	case "info":
		logLevel.Set(slog.LevelInfo)
	case "warn", "warning":
		logLevel.Set(slog.LevelWarn)
	case "error":
		logLevel.Set(slog.LevelError)
	default:
		logLevel.Set(slog.LevelInfo)
		slog.Warn("Unknown log level specified in config, defaulting to INFO", slog.String("level", config.Cfg.Log.Level))
	}

	var handler slog.Handler
	appEnv := os.Getenv("APP_ENV")
	if strings.ToLower(appEnv) == "dev" {
		handler = tint.NewHandler(os.Stderr, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.RFC3339,
		})
		tempLogger.Info("Using TINT log handler", slog.String("APP_ENV", appEnv))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
			Level:     logLevel,
			AddSource: true,
		})
		tempLogger.Info("Using JSON log handler", slog.String("APP_ENV", appEnv))
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)

	slog.Info("Application starting...")

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}
	sqlDB, err := db.DB()
	if err != nil {
		slog.Error("Error getting underlying sql.DB from GORM", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := sqlDB.Close(); err != nil {
			slog.Error("Error closing database connection", slog.Any("error", err))
		} else {
			slog.Info("Database connection closed.")
		}
	}()

	if err := repository.EnsureSchema(db); err != nil {
		slog.Error("Error migrating schema", slog.Any("error", err))
		os.Exit(1)
	}
	if config.Cfg.App.Seed {
		if err := repository.SeedCatalog(db, logger); err != nil {
			slog.Error("Error seeding catalog", slog.Any("error", err))
			os.Exit(1)
		}
	}

	// Dependency injection.
	userRepo := repository.NewGormUserRepository()
	resourceRepo := repository.NewGormResourceRepository()
	logRepo := repository.NewGormStudyLogRepository()
	tipRepo := repository.NewGormWellnessTipRepository()
	schedRepo := repository.NewGormScheduleRepository()

	authService := service.NewAuthService(db, userRepo, &config.Cfg)
	resourceService := service.NewResourceService(db, resourceRepo, &config.Cfg)
	studyLogService := service.NewStudyLogService(db, logRepo, userRepo)
	recommendService := service.NewRecommendService(db, userRepo, resourceRepo, logRepo, tipRepo, &config.Cfg)
	wellnessService := service.NewWellnessService(db, logRepo, tipRepo)
	scheduleService := service.NewScheduleService(db, logRepo, schedRepo, &config.Cfg)

	authHandler := handlers.NewAuthHandler(authService)
	resourceHandler := handlers.NewResourceHandler(resourceService)
	studyLogHandler := handlers.NewStudyLogHandler(studyLogService)
	recommendHandler := handlers.NewRecommendHandler(recommendService, resourceService)
	wellnessHandler := handlers.NewWellnessHandler(wellnessService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	adminHandler := handlers.NewAdminHandler(db)

	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.LoggingMiddleware(logger))

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   config.Cfg.CORS.AllowedOrigins,
		AllowedMethods:   config.Cfg.CORS.AllowedMethods,
		AllowedHeaders:   config.Cfg.CORS.AllowedHeaders,
		ExposedHeaders:   config.Cfg.CORS.ExposedHeaders,
		AllowCredentials: config.Cfg.CORS.AllowCredentials,
		MaxAge:           config.Cfg.CORS.MaxAge,
	})
	r.Use(corsHandler.Handler)

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/init_db", adminHandler.InitDB)

		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)

		r.Get("/resources", resourceHandler.List)

		r.Post("/log-study", studyLogHandler.LogStudy)

		r.Post("/recommend", recommendHandler.Recommend)
		r.Get("/recommendations", recommendHandler.Recommendations)

		r.Get("/wellness", wellnessHandler.ListTips)
		r.Get("/wellness-score/{user_id}", wellnessHandler.Score)

		r.Post("/schedule-break", scheduleHandler.ScheduleBreak)
		r.Get("/schedules/{user_id}", scheduleHandler.ListSchedules)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := sqlDB.PingContext(ctx); err != nil {
			slog.ErrorContext(ctx, "Health check failed: could not ping DB", slog.Any("error", err))
			http.Error(w, "Health check failed", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	server := &http.Server{
		Addr:         config.Cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		slog.Info("Server listening", slog.String("port", config.Cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Could not listen on port", slog.String("port", config.Cfg.Server.Port), slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", slog.Any("error", err))
	}

	log.Println("Server exiting")
}
