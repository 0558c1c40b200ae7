package generation

import (
	"context"
	"fmt"
	"log/slog"

	"google.golang.org/genai"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
)

// GeminiConfig carries everything the Gemini-backed generator needs.
type GeminiConfig struct {
	APIKey         string
	Model          string
	PromptTemplate string
	MaxTokens      int32
}

// GeminiGenerator implements Generator against the Gemini API. It owns
// only the API call and the reply parsing; rate limiting and retries are
// the pipeline's concern.
type GeminiGenerator struct {
	client   *genai.Client
	model    string
	template string
	maxTok   int32
	parser   *Parser
	logger   *slog.Logger
}

// NewGeminiGenerator validates the configuration, creates the genai
// client and wires in the response parser.
func NewGeminiGenerator(
	ctx context.Context,
	cfg GeminiConfig,
	parser *Parser,
	logger *slog.Logger,
) (*GeminiGenerator, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: API key is required", ErrInvalidConfig)
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("%w: model name is required", ErrInvalidConfig)
	}
	if cfg.PromptTemplate == "" {
		return nil, fmt.Errorf("%w: prompt template is required", ErrInvalidConfig)
	}
	if parser == nil {
		return nil, fmt.Errorf("%w: parser is required", ErrInvalidConfig)
	}
	if logger == nil {
		logger = slog.Default()
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	maxTok := cfg.MaxTokens
	if maxTok <= 0 {
		maxTok = 2000
	}

	return &GeminiGenerator{
		client:   client,
		model:    cfg.Model,
		template: cfg.PromptTemplate,
		maxTok:   maxTok,
		parser:   parser,
		logger:   logger.With("component", "gemini_generator", "model", cfg.Model),
	}, nil
}

// Generate sends the templated prompt for a word and parses the reply.
func (g *GeminiGenerator) Generate(ctx context.Context, word string) (domain.Flashcard, error) {
	prompt := BuildPrompt(g.template, word)

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{MaxOutputTokens: g.maxTok},
	)
	if err != nil {
		return domain.Flashcard{}, fmt.Errorf("%w: %q: %v", ErrGenerationFailed, word, err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil ||
		len(resp.Candidates[0].Content.Parts) == 0 {
		return domain.Flashcard{}, fmt.Errorf("%w: %q", ErrEmptyResponse, word)
	}
	text := resp.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return domain.Flashcard{}, fmt.Errorf("%w: %q", ErrEmptyResponse, word)
	}

	g.logger.DebugContext(ctx, "received generation reply", "word", word, "chars", len(text))
	return g.parser.Parse(text, word), nil
}
