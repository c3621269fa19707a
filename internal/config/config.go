package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	APIKey        string
	Region        string
	MaxResults    int
	ExportPath    string
	TargetTZ      string
	YouTubeAPIURL string
	LogLevel      string
	Environment   string
	CORSOrigins   string
}

func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		APIKey:        getEnv("YOUTUBE_API_KEY", ""),
		Region:        getEnv("REGION_CODE", "US"),
		MaxResults:    getEnvInt("MAX_RESULTS", 200),
		ExportPath:    getEnv("EXPORT_PATH", "trending_videos.csv"),
		TargetTZ:      getEnv("TARGET_TZ", "Asia/Kolkata"),
		YouTubeAPIURL: getEnv("YOUTUBE_API_URL", "https://www.googleapis.com/youtube/v3"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		Environment:   getEnv("ENVIRONMENT", "development"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
