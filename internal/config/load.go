package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// envPrefix namespaces the environment variables the loader reads, e.g.
// ANKIGEN_LLM_GEMINI_API_KEY for llm.gemini_api_key.
const envPrefix = "ANKIGEN"

// Load reads configuration from an optional config.yaml and from
// environment variables, environment taking precedence, then validates
// the result. Every key has a default so the whole tree is visible to
// viper; required-but-defaultless values (the API key) default to empty
// and fail validation when not provided.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.log_level", "info")
	v.SetDefault("app.words_file", "data/palavras.txt")
	v.SetDefault("app.cache_file", "data/processadas.json")

	v.SetDefault("anki.url", "http://localhost:8765")
	v.SetDefault("anki.deck", "Inglês")
	v.SetDefault("anki.card_model", "Básico")
	v.SetDefault("anki.front_field", "Frente")
	v.SetDefault("anki.back_field", "Verso")
	v.SetDefault("anki.default_tags", []string{"vocabulario", "auto-gerado"})

	v.SetDefault("llm.gemini_api_key", "")
	v.SetDefault("llm.model", "gemini-2.5-flash")
	v.SetDefault("llm.prompt_template", "config/prompt_template.txt")
	v.SetDefault("llm.max_output_tokens", 2000)
	v.SetDefault("llm.requests_per_minute", 10)

	v.SetDefault("image.base_url", "https://image.pollinations.ai/prompt")
	v.SetDefault("image.output_dir", "data/images")
	v.SetDefault("image.max_retries", 3)
	v.SetDefault("image.quality", "high")

	v.SetDefault("parser.concept_marker", "CONCEITO VISUAL")
	v.SetDefault("parser.frequency_keywords", []string{"muito comum", "comum", "pouco comum", "raro"})
}
