package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/adeqmish/ai-text-humanizer/internal/provider"
)

// Config holds all server configuration.
type Config struct {
	Port          int    `yaml:"port"`
	GeminiAPIKey  string `yaml:"gemini_api_key"`
	GeminiModel   string `yaml:"gemini_model"`
	GeminiBaseURL string `yaml:"gemini_base_url"`
	AccessKey     string `yaml:"access_key"`
	MaxTextLength int    `yaml:"max_text_length"`
	LogLevel      string `yaml:"log_level"`
	LogFormat     string `yaml:"log_format"`
}

func defaults() Config {
	return Config{
		Port:          8090,
		GeminiModel:   provider.DefaultModel,
		MaxTextLength: 10000,
		LogLevel:      "info",
		LogFormat:     "text",
	}
}

// Load builds the configuration from defaults, then the YAML file at path
// (if non-empty), then the given dotenv files, then the process
// environment. Process variables win over dotenv values.
//
// A missing Gemini key is not an error: the server starts and reports a
// configuration failure per request.
func Load(path string, envFiles ...string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	dotenv := map[string]string{}
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		vals, err := godotenv.Read(f)
		if err != nil {
			return Config{}, fmt.Errorf("config: read env file %s: %w", f, err)
		}
		for k, v := range vals {
			dotenv[k] = v
		}
	}
	lookup := func(key string) string {
		if v, ok := os.LookupEnv(key); ok && v != "" {
			return v
		}
		return dotenv[key]
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config, lookup func(string) string) error {
	if v := lookup("HUMANIZER_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid HUMANIZER_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := lookup("HUMANIZER_GEMINI_API_KEY"); v != "" {
		cfg.GeminiAPIKey = v
	} else if v := lookup("API_KEY"); v != "" && cfg.GeminiAPIKey == "" {
		cfg.GeminiAPIKey = v
	}
	if v := lookup("HUMANIZER_GEMINI_MODEL"); v != "" {
		cfg.GeminiModel = v
	}
	if v := lookup("HUMANIZER_GEMINI_BASE_URL"); v != "" {
		cfg.GeminiBaseURL = v
	}
	if v := lookup("HUMANIZER_ACCESS_KEY"); v != "" {
		cfg.AccessKey = v
	}
	if v := lookup("HUMANIZER_MAX_TEXT_LENGTH"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid HUMANIZER_MAX_TEXT_LENGTH %q: %w", v, err)
		}
		cfg.MaxTextLength = n
	}
	if v := lookup("HUMANIZER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := lookup("HUMANIZER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: port %d out of range", c.Port)
	}
	if c.MaxTextLength <= 0 {
		return fmt.Errorf("config: max_text_length must be positive, got %d", c.MaxTextLength)
	}
	if c.GeminiModel == "" {
		c.GeminiModel = provider.DefaultModel
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	c.LogFormat = strings.ToLower(c.LogFormat)
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown log_format %q", c.LogFormat)
	}
	return nil
}
