package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-careercoach-backend/config"
	_ "go-careercoach-backend/docs" // Important for Swagger
	"go-careercoach-backend/internal/analyzer"
	v1 "go-careercoach-backend/internal/delivery/http/v1"
	"go-careercoach-backend/internal/domain"
	"go-careercoach-backend/internal/repository"
	"go-careercoach-backend/internal/repository/memory"
	"go-careercoach-backend/internal/repository/postgres"
	"go-careercoach-backend/internal/usecase"
	"go-careercoach-backend/pkg/database"
	"go-careercoach-backend/pkg/logger"
	"go-careercoach-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
	"github.com/robfig/cron/v3"
)

// repos bundles one storage backend's repositories.
type repos struct {
	users      domain.UserRepository
	resumes    domain.ResumeRepository
	skills     domain.SkillRepository
	jobs       domain.JobRepository
	paths      domain.CareerPathRepository
	courses    domain.CourseRepository
	activities domain.ActivityRepository
}

// @title           Career Coach Backend API
// @version         1.0
// @description     Backend for the career coaching dashboard using Clean Architecture.
// @host            localhost:5000
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting career coach backend", "port", cfg.Port)

	// 3. Setup Storage (postgres when configured, in-memory otherwise)
	var r repos
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()

		r = repos{
			users:      postgres.NewUserRepository(dbPool),
			resumes:    postgres.NewResumeRepository(dbPool),
			skills:     postgres.NewSkillRepository(dbPool),
			jobs:       postgres.NewJobRepository(dbPool),
			paths:      postgres.NewCareerPathRepository(dbPool),
			courses:    postgres.NewCourseRepository(dbPool),
			activities: postgres.NewActivityRepository(dbPool),
		}
	} else {
		store := memory.NewStore()
		r = repos{
			users:      memory.NewUserRepository(store),
			resumes:    memory.NewResumeRepository(store),
			skills:     memory.NewSkillRepository(store),
			jobs:       memory.NewJobRepository(store),
			paths:      memory.NewCareerPathRepository(store),
			courses:    memory.NewCourseRepository(store),
			activities: memory.NewActivityRepository(store),
		}
	}

	// 4. Seed the default user, starter skills and course catalog
	user, err := repository.Seed(context.Background(), r.users, r.skills, r.courses, usecase.FallbackCourses())
	if err != nil {
		logger.Log.Error("Failed to seed store", "error", err)
		os.Exit(1)
	}

	// 5. Setup Redis (rate limiting; optional)
	if cfg.RedisURL != "" {
		if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
			logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
		}
	}

	// 6. Setup Analysis Service Client
	analyzerClient := analyzer.NewClient(
		cfg.AnalyzerURL,
		time.Duration(cfg.AnalyzerTimeoutSeconds)*time.Second,
		logger.Log,
	)

	// 7. Setup UseCases
	validate := validator.New()
	dashboardUC := usecase.NewDashboardUsecase(r.resumes, r.skills, r.jobs, user.ID)
	activityUC := usecase.NewActivityUsecase(r.activities, validate, user.ID)
	resumeUC := usecase.NewResumeUsecase(r.resumes, r.skills, r.activities, analyzerClient, logger.Log, user.ID)
	skillUC := usecase.NewSkillUsecase(r.skills, user.ID)
	jobUC := usecase.NewJobUsecase(r.jobs, r.skills, analyzerClient, logger.Log, user.ID)
	careerPathUC := usecase.NewCareerPathUsecase(r.paths, r.skills, analyzerClient, logger.Log, user.ID)
	courseUC := usecase.NewCourseUsecase(r.courses, logger.Log)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		DashboardUC:  dashboardUC,
		ActivityUC:   activityUC,
		ResumeUC:     resumeUC,
		SkillUC:      skillUC,
		JobUC:        jobUC,
		CareerPathUC: careerPathUC,
		CourseUC:     courseUC,
		Config:       cfg,
	})

	// 9. Background job refresh (disabled unless configured)
	if cfg.JobRefreshEnabled {
		c := cron.New()
		_, err := c.AddFunc(cfg.JobRefreshSchedule, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.AnalyzerTimeoutSeconds)*time.Second)
			defer cancel()
			if err := jobUC.Refresh(ctx); err != nil {
				logger.Log.Warn("Scheduled job refresh failed", "error", err)
			}
		})
		if err != nil {
			logger.Log.Error("Invalid job refresh schedule", "schedule", cfg.JobRefreshSchedule, "error", err)
			os.Exit(1)
		}
		c.Start()
		defer c.Stop()
		logger.Log.Info("Job refresh scheduled", "schedule", cfg.JobRefreshSchedule)
	}

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
