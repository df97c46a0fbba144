package config

import (
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Environment string
	LogLevel    slog.Level

	SavesDir    string
	Storage     string // "file" or "redis"
	RedisURL    string
	Provider    string // "anthropic", "gemini", or "offline"
	ClaudeModel string
	GeminiModel string
	MusicConfig string // optional playlist YAML path
}

func Load() *Config {
	return &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		LogLevel:    parseLogLevel(getEnv("LOG_LEVEL", "info")),
		SavesDir:    getEnv("THERON_SAVES_DIR", "./saves"),
		Storage:     getEnv("THERON_STORAGE", "file"),
		RedisURL:    getEnv("THERON_REDIS_URL", "localhost:6379"),
		Provider:    getEnv("DIALOGUE_PROVIDER", "anthropic"),
		ClaudeModel: getEnv("CLAUDE_MODEL", "claude-3-haiku-20240307"),
		GeminiModel: getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MusicConfig: getEnv("THERON_MUSIC_CONFIG", ""),
	}
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
