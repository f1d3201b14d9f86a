// Package config provides configuration for the mentors service.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the service configuration.
type Config struct {
	// Server settings
	HTTPPort int

	// CORSAllowedOrigin is the single frontend origin allowed to call the API.
	CORSAllowedOrigin string

	// LLM provider settings
	LLMBaseURL string
	LLMAPIKey  string
	LLMTimeout time.Duration

	// StrictMessageRoles restricts conversation history roles to
	// system, user and assistant. Off by default: roles are forwarded verbatim.
	StrictMessageRoles bool

	// Mode selects the provider implementation ("MOCK" for the local mock).
	Mode string

	// LogLevel sets the echo logger level: debug, info, warn, error or off.
	LogLevel string
}

// Load loads configuration from environment variables.
// The API key is not validated here; a missing key surfaces as an upstream
// error on the first chat request.
func Load() *Config {
	return &Config{
		HTTPPort:           getEnvInt("HTTP_PORT", 8000),
		CORSAllowedOrigin:  getEnv("CORS_ALLOWED_ORIGIN", "http://localhost:3000"),
		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://openrouter.ai/api/v1"),
		LLMAPIKey:          getEnv("OPENROUTER_API_KEY", ""),
		LLMTimeout:         time.Duration(getEnvInt("LLM_TIMEOUT_MS", 600000)) * time.Millisecond,
		StrictMessageRoles: getEnvBool("STRICT_MESSAGE_ROLES", false),
		Mode:               getEnv("MENTORS_MODE", ""),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if intVal, err := strconv.Atoi(val); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		if boolVal, err := strconv.ParseBool(val); err == nil {
			return boolVal
		}
	}
	return defaultVal
}
