package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Defaults applied before file and environment overrides.
const (
	DefaultProvider            = "gemini"
	DefaultConfidenceThreshold = 0.8
	DefaultVectorCollection    = "papers"
	DefaultTimeout             = 30
	DefaultMaxRetries          = 2
)

// Config holds agent settings. Values are resolved in order: defaults,
// optional YAML file, environment variables.
type Config struct {
	// Provider selects the chat completion backend.
	Provider string `yaml:"provider" validate:"oneof=gemini openai anthropic cohere"`
	// Model overrides the provider's default model when set.
	Model string `yaml:"model"`

	GoogleAPIKey    string `yaml:"google_api_key"`
	OpenAIAPIKey    string `yaml:"openai_api_key"`
	AnthropicAPIKey string `yaml:"anthropic_api_key"`
	CohereAPIKey    string `yaml:"cohere_api_key"`
	BraveAPIKey     string `yaml:"brave_api_key"`

	// ConfidenceThreshold is the minimum similarity for vector search
	// results.
	ConfidenceThreshold float64 `yaml:"confidence_threshold" validate:"gte=0,lte=1"`
	// VectorCollection names the collection queried by vector search.
	VectorCollection string `yaml:"vector_collection"`
	// Timeout bounds a single model request, in seconds.
	Timeout int `yaml:"timeout" validate:"gte=0"`
	// MaxRetries is the number of additional model attempts on failure.
	MaxRetries int `yaml:"max_retries" validate:"gte=0"`
}

func defaults() *Config {
	return &Config{
		Provider:            DefaultProvider,
		ConfidenceThreshold: DefaultConfidenceThreshold,
		VectorCollection:    DefaultVectorCollection,
		Timeout:             DefaultTimeout,
		MaxRetries:          DefaultMaxRetries,
	}
}

// Load resolves the configuration. A missing .env file and an empty
// path are both fine; environment variables win over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()
	cfg := defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	cfg.applyEnv()
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.Provider, "LLM_PROVIDER")
	setString(&c.Model, "LLM_MODEL")
	setString(&c.GoogleAPIKey, "GOOGLE_API_KEY")
	setString(&c.OpenAIAPIKey, "OPENAI_API_KEY")
	setString(&c.AnthropicAPIKey, "ANTHROPIC_API_KEY")
	setString(&c.CohereAPIKey, "COHERE_API_KEY")
	setString(&c.BraveAPIKey, "BRAVE_API_KEY")
	setString(&c.VectorCollection, "VECTOR_COLLECTION")
	setFloat(&c.ConfidenceThreshold, "CONFIDENCE_THRESHOLD")
	setInt(&c.Timeout, "LLM_TIMEOUT")
	setInt(&c.MaxRetries, "LLM_MAX_RETRIES")
}

// APIKey returns the credential for the configured provider.
func (c *Config) APIKey() string {
	switch c.Provider {
	case "openai":
		return c.OpenAIAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	case "cohere":
		return c.CohereAPIKey
	default:
		return c.GoogleAPIKey
	}
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setFloat(dst *float64, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
}

func setInt(dst *int, key string) {
	if v, ok := os.LookupEnv(key); ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}
