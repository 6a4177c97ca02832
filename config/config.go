package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Analysis service (resume parsing / live job and path data)
	AnalyzerURL            string
	AnalyzerTimeoutSeconds int
	// Redis Configuration (rate limiting)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
	RateLimitUploadThreshold int
	// Background job refresh
	JobRefreshEnabled  bool
	JobRefreshSchedule string
}

func LoadConfig() (*Config, error) {
	// .env is only present in local development; ignored elsewhere.
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "5000"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// The analysis service runs as a local sidecar on a fixed port.
		AnalyzerURL:              strings.TrimRight(getEnv("ANALYZER_URL", "http://localhost:8000"), "/"),
		AnalyzerTimeoutSeconds:   getEnvInt("ANALYZER_TIMEOUT_SECONDS", 30),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitUploadThreshold: getEnvInt("RATE_LIMIT_UPLOAD_THRESHOLD", 10),
		JobRefreshEnabled:        getEnvBool("JOB_REFRESH_ENABLED", false),
		JobRefreshSchedule:       getEnv("JOB_REFRESH_SCHEDULE", "0 */6 * * *"),
	}

	if cfg.DBUrl == "" {
		log.Println("DATABASE_URL not set; using the in-memory record store")
	}
	if cfg.RedisURL == "" {
		log.Println("REDIS_URL not set; rate limiting will use the in-memory fallback")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}
