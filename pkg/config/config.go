package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort         string
	FirebaseProject    string
	StorageBucket      string
	Environment        string
	ServiceAccountJSON string
	ServiceAccountPath string
	NewListingsWindow  time.Duration
	ChatSendPerMinute  int64
	ChatSendBurst      int64
	MaxUploadBytes     int64
	LogLevel           string
	LogFile            string
	LogJSON            bool
	CORSAllowOrigins   []string
}

func Load() (*Config, error) {
	godotenv.Load()

	window, err := time.ParseDuration(getEnv("NEW_LISTINGS_WINDOW", "168h"))
	if err != nil {
		return nil, fmt.Errorf("invalid NEW_LISTINGS_WINDOW: %w", err)
	}

	config := &Config{
		ServerPort:         getEnv("SERVER_PORT", "8080"),
		FirebaseProject:    getEnv("FIREBASE_PROJECT_ID", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", ""),
		Environment:        getEnv("ENVIRONMENT", "development"),
		ServiceAccountJSON: getEnv("FIREBASE_SERVICE_ACCOUNT_JSON", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),
		NewListingsWindow:  window,
		ChatSendPerMinute:  getEnvAsInt64("CHAT_SEND_PER_MINUTE", 10),
		ChatSendBurst:      getEnvAsInt64("CHAT_SEND_BURST", 5),
		MaxUploadBytes:     getEnvAsInt64("MAX_UPLOAD_BYTES", 5<<20),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		LogFile:            getEnv("LOG_FILE", ""),
		LogJSON:            getEnv("LOG_FORMAT", "text") == "json",
		CORSAllowOrigins:   []string{getEnv("CORS_ALLOW_ORIGIN", "*")},
	}

	if config.FirebaseProject == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID environment variable is required")
	}
	if config.StorageBucket == "" {
		return nil, fmt.Errorf("STORAGE_BUCKET environment variable is required")
	}

	return config, nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
