package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port         string
	Debug        bool
	MaxBodyBytes int64
	WriteTimeout int // seconds

	// Gemini AI
	GoogleAPIKey string
	ChatModel    string
	TutorModel   string

	// Redis (optional, enables relay events and /api/ws)
	RedisURL      string
	EventsChannel string

	// CORS
	CORSOrigins []string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "5000"),
		Debug:         getEnvAsBoolOrDefault("DEBUG", getEnvAsBoolOrDefault("FLASK_DEBUG", false)),
		MaxBodyBytes:  int64(getEnvAsIntOrDefault("MAX_BODY_BYTES", 1<<20)),
		WriteTimeout:  getEnvAsIntOrDefault("WRITE_TIMEOUT_SECONDS", 120),
		GoogleAPIKey:  mustGetEnv("GOOGLE_API_KEY", "GEMINI_API_KEY"),
		ChatModel:     getEnvOrDefault("CHAT_MODEL", "gemini-pro"),
		TutorModel:    getEnvOrDefault("TUTOR_MODEL", "gemini-1.5-flash"),
		RedisURL:      getEnvOrDefault("REDIS_URL", ""),
		EventsChannel: getEnvOrDefault("EVENTS_CHANNEL", "virtuzen:events"),
		CORSOrigins:   splitList(getEnvOrDefault("CORS_ORIGINS", "*")),
	}

	return cfg
}

// mustGetEnv returns the first non-empty value among keys and panics when none is set.
func mustGetEnv(keys ...string) string {
	for _, key := range keys {
		if val := os.Getenv(key); val != "" {
			return val
		}
	}
	panic(fmt.Sprintf("required environment variable %s is not set", strings.Join(keys, " or ")))
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(strings.ToLower(val))
	if err != nil {
		return defaultVal
	}
	return b
}

func splitList(val string) []string {
	var out []string
	for _, item := range strings.Split(val, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
