package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Assistant modes.
const (
	ModeMock = "mock"
	ModeLive = "live"
)

// Config holds all application configuration.
type Config struct {
	// Server configuration
	ServerAddress string
	Environment   string

	// Memory store
	MemoryFile string

	// Completion service
	AssistantMode   string // mock or live
	AnthropicAPIKey string
	AssistantModel  string
	MaxTokens       int

	// Prompt composition
	PersonaFile    string
	MaxPromptNotes int

	// Logging and features
	LogLevel      string
	EnableCORS    bool
	ChatRateLimit int // completion requests per minute per client; 0 disables
}

// LoadConfig loads configuration from environment variables. A .env file in
// the working directory is honored when present.
func LoadConfig() (*Config, error) {
	// Missing .env is the normal case outside development.
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress: getEnv("SERVER_ADDRESS", ":8080"),
		Environment:   getEnv("ENVIRONMENT", "development"),

		MemoryFile: getEnv("MEMORY_FILE", "data/memory.json"),

		AssistantMode:   getEnv("ASSISTANT_MODE", ModeMock),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		AssistantModel:  getEnv("ASSISTANT_MODEL", "claude-3-7-sonnet-latest"),
		MaxTokens:       getEnvInt("ASSISTANT_MAX_TOKENS", 1024),

		PersonaFile:    getEnv("PERSONA_FILE", ""),
		MaxPromptNotes: getEnvInt("MAX_PROMPT_NOTES", 10),

		LogLevel:      getEnv("LOG_LEVEL", "info"),
		EnableCORS:    getEnvBool("ENABLE_CORS", true),
		ChatRateLimit: getEnvInt("CHAT_RATE_LIMIT", 0),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present.
func (c *Config) Validate() error {
	switch c.AssistantMode {
	case ModeMock:
		// No credential needed offline.
	case ModeLive:
		if c.AnthropicAPIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY is required when ASSISTANT_MODE=live")
		}
	default:
		return fmt.Errorf("ASSISTANT_MODE must be %q or %q, got %q", ModeMock, ModeLive, c.AssistantMode)
	}

	if c.MemoryFile == "" {
		return fmt.Errorf("MEMORY_FILE must not be empty")
	}
	if c.MaxPromptNotes < 1 {
		return fmt.Errorf("MAX_PROMPT_NOTES must be at least 1")
	}

	return nil
}

// IsDevelopment checks if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value.
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
