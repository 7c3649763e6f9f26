package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Port            int           `yaml:"port"`
	DefaultModel    string        `yaml:"default_model"`
	GeminiAPIKey    string        `yaml:"gemini_api_key"`
	GeminiModel     string        `yaml:"gemini_model"`
	MaxOutputTokens int           `yaml:"max_output_tokens"`
	ClaudeAPIKey    string        `yaml:"claude_api_key"`
	ClaudeModel     string        `yaml:"claude_model"`
	OpenAIAPIKey    string        `yaml:"openai_api_key"`
	OpenAIModel     string        `yaml:"openai_model"`
	LlamaCppURL     string        `yaml:"llamacpp_url"`
	LlamaCppModel   string        `yaml:"llamacpp_model"`
	OllamaURL       string        `yaml:"ollama_url"`
	OllamaModel     string        `yaml:"ollama_model"`
	APIKey          string        `yaml:"api_key"`
	RateLimit       int           `yaml:"rate_limit"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
}

func defaults() Config {
	return Config{
		Port:            8090,
		GeminiModel:     "gemini-2.0-flash",
		MaxOutputTokens: 8192,
		ClaudeModel:     "claude-sonnet-4-5-20250929",
		OpenAIModel:     "gpt-4o-mini",
		OllamaModel:     "qwen2.5:1.5b",
		RateLimit:       10,
		RequestTimeout:  120 * time.Second,
	}
}

// Load reads configuration from a YAML file (if path is non-empty), then
// applies environment variable overrides. An empty path returns defaults plus
// env overrides.
func Load(path string) (Config, error) {
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

	if err := applyEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	strs := []struct {
		key string
		dst *string
	}{
		{"PARAPHRASE_DEFAULT_MODEL", &cfg.DefaultModel},
		// The bare name is what the hosted frontend has always used.
		{"GEMINI_API_KEY", &cfg.GeminiAPIKey},
		{"PARAPHRASE_GEMINI_API_KEY", &cfg.GeminiAPIKey},
		{"PARAPHRASE_GEMINI_MODEL", &cfg.GeminiModel},
		{"PARAPHRASE_CLAUDE_API_KEY", &cfg.ClaudeAPIKey},
		{"PARAPHRASE_CLAUDE_MODEL", &cfg.ClaudeModel},
		{"PARAPHRASE_OPENAI_API_KEY", &cfg.OpenAIAPIKey},
		{"PARAPHRASE_OPENAI_MODEL", &cfg.OpenAIModel},
		{"PARAPHRASE_LLAMACPP_URL", &cfg.LlamaCppURL},
		{"PARAPHRASE_LLAMACPP_MODEL", &cfg.LlamaCppModel},
		{"PARAPHRASE_OLLAMA_URL", &cfg.OllamaURL},
		{"PARAPHRASE_OLLAMA_MODEL", &cfg.OllamaModel},
		{"PARAPHRASE_API_KEY", &cfg.APIKey},
	}
	for _, s := range strs {
		if v := os.Getenv(s.key); v != "" {
			*s.dst = v
		}
	}

	ints := []struct {
		key string
		dst *int
	}{
		{"PARAPHRASE_PORT", &cfg.Port},
		{"PARAPHRASE_MAX_OUTPUT_TOKENS", &cfg.MaxOutputTokens},
		{"PARAPHRASE_RATE_LIMIT", &cfg.RateLimit},
	}
	for _, i := range ints {
		v := os.Getenv(i.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: invalid %s %q: %w", i.key, v, err)
		}
		*i.dst = n
	}

	if v := os.Getenv("PARAPHRASE_REQUEST_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: invalid PARAPHRASE_REQUEST_TIMEOUT %q: %w", v, err)
		}
		cfg.RequestTimeout = d
	}
	return nil
}
