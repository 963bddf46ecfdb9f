package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Provider string

const (
	ProviderTogether Provider = "together"
	ProviderGemini   Provider = "gemini"
	ProviderMock     Provider = "mock"
)

type Config struct {
	TelegramToken string
	TelegramDebug bool

	Provider     Provider
	ModelName    string
	LLMBaseURL   string
	LLMAPIKey    string
	GeminiAPIKey string
	GCPProjectID string
	GCPLocation  string

	HistoryPath    string
	StorageBackend string // "memory" or "firestore"

	HTTPAddr string // empty disables the ops server
	LogLevel string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if v == "1" || v == "true" || v == "TRUE" {
		return true
	}
	return false
}

// Load reads .env when present, then all env vars, and builds the config.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		TelegramToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramDebug: getBoolEnv("MIA_DEBUG", false),

		Provider:     parseProvider(getEnv("MIA_LLM_PROVIDER", string(ProviderTogether))),
		ModelName:    os.Getenv("MIA_MODEL_NAME"),
		LLMBaseURL:   getEnv("MIA_LLM_BASE_URL", "https://api.together.xyz/v1"),
		LLMAPIKey:    os.Getenv("TOGETHER_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GCPProjectID: os.Getenv("MIA_GCP_PROJECT"),
		GCPLocation:  getEnv("MIA_GCP_LOCATION", "us-central1"),

		HistoryPath:    getEnv("MIA_HISTORY_PATH", "chat_history.txt"),
		StorageBackend: getEnv("MIA_STORAGE_BACKEND", "memory"),

		HTTPAddr: os.Getenv("MIA_HTTP_ADDR"),
		LogLevel: getEnv("MIA_LOG_LEVEL", "info"),
	}
	if _, set := os.LookupEnv("MIA_HTTP_ADDR"); !set {
		cfg.HTTPAddr = ":8080"
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.StorageBackend {
	case "memory":
	case "firestore":
		if c.GCPProjectID == "" {
			return fmt.Errorf("MIA_GCP_PROJECT is required for the firestore storage backend")
		}
	default:
		return fmt.Errorf("unknown MIA_STORAGE_BACKEND %q", c.StorageBackend)
	}
	return nil
}

func parseProvider(s string) Provider {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "gemini", "vertex":
		return ProviderGemini
	case "mock":
		return ProviderMock
	default:
		return ProviderTogether
	}
}
