package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName     string
	Port        string
	Env         string
	Debug       bool
	APIBaseURL  string
	PageSize    int
	HTTPTimeout time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:     getEnv("APP_NAME", "catalog-viewer"),
			Port:        getEnv("PORT", "8080"),
			Env:         getEnv("APP_ENV", "development"),
			Debug:       os.Getenv("DEBUG") == "true",
			APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8000"),
			PageSize:    clampPageSize(getEnvInt("PAGE_SIZE", DefaultPageSize)),
			HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT", 10)) * time.Second,
		}
	})
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
