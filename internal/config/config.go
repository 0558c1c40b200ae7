package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	App    AppConfig    `mapstructure:"app" validate:"required"`
	Anki   AnkiConfig   `mapstructure:"anki" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm" validate:"required"`
	Image  ImageConfig  `mapstructure:"image" validate:"required"`
	Parser ParserConfig `mapstructure:"parser" validate:"required"`
}

// AppConfig contains run-level settings: logging and the data files the
// batch works through.
type AppConfig struct {
	LogLevel  string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	WordsFile string `mapstructure:"words_file" validate:"required"`
	CacheFile string `mapstructure:"cache_file" validate:"required"`
}

// AnkiConfig contains the AnkiConnect endpoint and card conventions.
type AnkiConfig struct {
	URL       string `mapstructure:"url" validate:"required,url"`
	Deck      string `mapstructure:"deck" validate:"required"`
	CardModel string `mapstructure:"card_model" validate:"required"`

	// FrontField and BackField are the note field labels used when the
	// card model's own field names cannot be fetched.
	FrontField string `mapstructure:"front_field" validate:"required"`
	BackField  string `mapstructure:"back_field" validate:"required"`

	DefaultTags []string `mapstructure:"default_tags"`
}

// LLMConfig contains the text-generation settings.
type LLMConfig struct {
	GeminiAPIKey      string `mapstructure:"gemini_api_key" validate:"required"`
	Model             string `mapstructure:"model" validate:"required"`
	PromptTemplate    string `mapstructure:"prompt_template" validate:"required"`
	MaxOutputTokens   int    `mapstructure:"max_output_tokens" validate:"gt=0"`
	RequestsPerMinute int    `mapstructure:"requests_per_minute" validate:"gt=0"`
}

// ImageConfig contains the image-generation settings.
type ImageConfig struct {
	BaseURL    string `mapstructure:"base_url" validate:"required,url"`
	OutputDir  string `mapstructure:"output_dir" validate:"required"`
	MaxRetries int    `mapstructure:"max_retries" validate:"gt=0"`
	Quality    string `mapstructure:"quality" validate:"required,oneof=high medium low"`
}

// ParserConfig contains the marker vocabulary the response parser
// recognizes. Both values follow the language the prompt template is
// written in.
type ParserConfig struct {
	ConceptMarker     string   `mapstructure:"concept_marker" validate:"required"`
	FrequencyKeywords []string `mapstructure:"frequency_keywords" validate:"required,min=1"`
}
