package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	OutputDir   string
	Port        int
	MaxUploadMB int

	LogLevel  string
	LogFormat string

	LLMEnabled   bool
	GeminiAPIKey string
	GeminiModel  string

	TextMaxLen int
	KPIMaxLen  int
}

func Load() (Config, error) {
	_ = godotenv.Load()

	cwd, err := os.Getwd()
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		OutputDir:   getEnv("OUTPUT_DIR", filepath.Join(cwd, "out")),
		Port:        getEnvInt("PORT", 8080),
		MaxUploadMB: getEnvInt("MAX_UPLOAD_MB", 50),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "text"),

		LLMEnabled:   getEnvBool("LLM_ENABLED", false),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		TextMaxLen: getEnvInt("TEXT_MAX_LEN", 500),
		KPIMaxLen:  getEnvInt("KPI_MAX_LEN", 200),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := getEnv(key, "")
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvBool(key string, fallback bool) bool {
	value := strings.ToLower(strings.TrimSpace(getEnv(key, "")))
	if value == "" {
		return fallback
	}
	if value == "1" || value == "true" || value == "yes" || value == "on" {
		return true
	}
	if value == "0" || value == "false" || value == "no" || value == "off" {
		return false
	}
	return fallback
}
