package config

import (
	"os"
	"strconv"
	"strings"
)

// LLM providers
const (
	ProviderGemini = "gemini"
	ProviderClaude = "claude"
)

// Search providers
const (
	SearchTavily = "tavily"
	SearchPSE    = "pse"
)

// Config holds all configuration for the application
type Config struct {
	// Server
	Port         string
	Debug        bool
	LogJSON      bool
	FrontendURLs []string
	MaxUploadMB  int

	// Language model
	LLMProvider     string
	ProjectID       string
	Location        string
	GeminiModels    []string
	AnthropicAPIKey string
	ClaudeModels    []string

	// Job search
	SearchProvider      string
	TavilyAPIKey        string
	PSEAPIKey           string
	PSEEngineID         string
	SearchRatePerSecond float64

	// Timeouts
	HTTPTimeoutSeconds int

	// Resume archive
	CVBucketName     string
	FirestoreEnabled bool
}

// Load loads configuration from environment variables
func Load() *Config {
	cfg := &Config{
		// Server
		Port:         getEnv("PORT", "8000"),
		Debug:        getEnvBool("DEBUG", false),
		LogJSON:      getEnvBool("LOG_JSON", false),
		FrontendURLs: getEnvList("FRONTEND_URLS", []string{"http://localhost:3000", "http://localhost:5173"}),
		MaxUploadMB:  getEnvInt("MAX_UPLOAD_MB", 10),

		// Language model
		LLMProvider:     strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		ProjectID:       getEnv("PROJECT_ID", ""),
		Location:        getEnv("LOCATION", "us-central1"),
		GeminiModels:    getEnvList("GEMINI_MODELS", []string{"gemini-2.0-flash", "gemini-2.5-flash"}),
		AnthropicAPIKey: getEnv("ANTHROPIC_API_KEY", ""),
		ClaudeModels:    getEnvList("CLAUDE_MODELS", []string{"claude-3-7-sonnet-latest", "claude-3-5-haiku-latest"}),

		// Job search
		SearchProvider:      strings.ToLower(getEnv("SEARCH_PROVIDER", SearchTavily)),
		TavilyAPIKey:        getEnv("TAVILY_API_KEY", ""),
		PSEAPIKey:           getEnv("PSE_API_KEY", ""),
		PSEEngineID:         getEnv("PSE_ENGINE_ID", ""), // Get from https://programmablesearchengine.google.com/
		SearchRatePerSecond: getEnvFloat("SEARCH_RATE_PER_SECOND", 2),

		// Timeouts
		HTTPTimeoutSeconds: getEnvInt("HTTP_TIMEOUT_SECONDS", 30),

		// Resume archive
		CVBucketName:     getEnv("CV_BUCKET_NAME", ""),
		FirestoreEnabled: getEnvBool("FIRESTORE_ENABLED", false),
	}

	return cfg
}

// Validate checks that the configuration is consistent. Missing language
// model or search credentials are not errors: the agent then answers with
// fallback templates and sample listings.
func (c *Config) Validate() error {
	switch c.LLMProvider {
	case ProviderGemini, ProviderClaude:
	default:
		return &ConfigError{Field: "LLM_PROVIDER", Message: "LLM_PROVIDER must be gemini or claude"}
	}

	switch c.SearchProvider {
	case SearchTavily, SearchPSE:
	default:
		return &ConfigError{Field: "SEARCH_PROVIDER", Message: "SEARCH_PROVIDER must be tavily or pse"}
	}

	if c.SearchProvider == SearchPSE && c.PSEAPIKey != "" && c.PSEEngineID == "" {
		return &ConfigError{Field: "PSE_ENGINE_ID", Message: "PSE_ENGINE_ID is required when PSE_API_KEY is set"}
	}

	if c.FirestoreEnabled && c.ProjectID == "" {
		return &ConfigError{Field: "PROJECT_ID", Message: "PROJECT_ID is required for Firestore"}
	}

	if c.MaxUploadMB <= 0 {
		return &ConfigError{Field: "MAX_UPLOAD_MB", Message: "MAX_UPLOAD_MB must be positive"}
	}

	if c.SearchRatePerSecond <= 0 {
		return &ConfigError{Field: "SEARCH_RATE_PER_SECOND", Message: "SEARCH_RATE_PER_SECOND must be positive"}
	}

	return nil
}

// LLMConfigured reports whether the selected provider has credentials
func (c *Config) LLMConfigured() bool {
	switch c.LLMProvider {
	case ProviderGemini:
		return c.ProjectID != "" && len(c.GeminiModels) > 0
	case ProviderClaude:
		return c.AnthropicAPIKey != "" && len(c.ClaudeModels) > 0
	}
	return false
}

// SearchConfigured reports whether the selected search backend has credentials
func (c *Config) SearchConfigured() bool {
	switch c.SearchProvider {
	case SearchTavily:
		return c.TavilyAPIKey != ""
	case SearchPSE:
		return c.PSEAPIKey != "" && c.PSEEngineID != ""
	}
	return false
}

// MaxUploadBytes returns the upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Message
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated value, dropping empty items
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
