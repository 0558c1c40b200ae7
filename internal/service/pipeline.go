package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
	"github.com/dpalis/anki-flashcard-automation/internal/redact"
	"github.com/dpalis/anki-flashcard-automation/internal/render"
	"github.com/dpalis/anki-flashcard-automation/internal/wordlist"
)

// Generator produces a flashcard draft for a single word.
type Generator interface {
	Generate(ctx context.Context, word string) (domain.Flashcard, error)
}

// ImageProvider turns a visual concept into a local image file and
// returns the path of the file it wrote (or reused).
type ImageProvider interface {
	Generate(ctx context.Context, word, visualConcept string) (string, error)
}

// AnkiClient is the slice of the AnkiConnect API the pipeline needs.
type AnkiClient interface {
	ModelFieldNames(ctx context.Context, fallback []string) []string
	StoreMediaFile(ctx context.Context, path, filename string) error
	AddNote(ctx context.Context, deck, frontField, backField, front, back string, tags []string) (int64, error)
}

// RecordStore tracks which words have already been turned into cards.
type RecordStore interface {
	IsProcessed(word string) bool
	Mark(word string, cardIDs []int64) error
}

// PipelineConfig carries the card-destination settings the pipeline
// stamps on every note it creates.
type PipelineConfig struct {
	Deck       string
	FrontField string
	BackField  string
	Tags       []string

	// WordsFile is the batch queue; processed words are removed from it
	// when Run is called with removeFromList set.
	WordsFile string
}

// Summary reports the outcome of a pipeline run.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
}

// Pipeline owns the per-word flow: generate, validate, illustrate,
// upload media, then add one note per card orientation. Words are
// handled sequentially; a failure on one word never aborts the run.
type Pipeline struct {
	cfg     PipelineConfig
	gen     Generator
	images  ImageProvider
	anki    AnkiClient
	records RecordStore
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewPipeline validates the collaborators and returns a ready pipeline.
// The limiter gates every outbound generation call (text and image).
func NewPipeline(
	cfg PipelineConfig,
	gen Generator,
	images ImageProvider,
	anki AnkiClient,
	records RecordStore,
	limiter *rate.Limiter,
	logger *slog.Logger,
) (*Pipeline, error) {
	if gen == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if images == nil {
		return nil, errors.New("image provider cannot be nil")
	}
	if anki == nil {
		return nil, errors.New("anki client cannot be nil")
	}
	if records == nil {
		return nil, errors.New("record store cannot be nil")
	}
	if limiter == nil {
		limiter = rate.NewLimiter(rate.Inf, 1)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{
		cfg:     cfg,
		gen:     gen,
		images:  images,
		anki:    anki,
		records: records,
		limiter: limiter,
		logger:  logger,
	}, nil
}

// Run processes the given words in order. Already-processed words are
// skipped, per-word failures are logged and counted. When
// removeFromList is set, each successfully processed word is also
// removed from the words file. Run stops early only when the context
// is cancelled.
func (p *Pipeline) Run(ctx context.Context, words []string, removeFromList bool) Summary {
	runID := uuid.New().String()
	log := p.logger.With("run_id", runID)

	var summary Summary
	log.InfoContext(ctx, "starting run", "words", len(words))

	for _, word := range words {
		if ctx.Err() != nil {
			log.WarnContext(ctx, "run cancelled", "remaining", len(words)-summary.Processed-summary.Skipped-summary.Failed)
			break
		}

		if p.records.IsProcessed(word) {
			log.DebugContext(ctx, "word already processed, skipping", "word", word)
			summary.Skipped++
			continue
		}

		cardIDs, err := p.processWord(ctx, log, word)
		if err != nil {
			log.ErrorContext(ctx, "word failed", "word", word, "error", redact.Error(err))
			summary.Failed++
			continue
		}

		if err := p.records.Mark(word, cardIDs); err != nil {
			log.WarnContext(ctx, "could not record processed word", "word", word, "error", err)
		}
		if removeFromList {
			if err := wordlist.Remove(p.cfg.WordsFile, word); err != nil {
				log.WarnContext(ctx, "could not remove word from queue", "word", word, "error", err)
			}
		}

		log.InfoContext(ctx, "word processed", "word", word, "card_ids", cardIDs)
		summary.Processed++
	}

	log.InfoContext(ctx, "run finished",
		"processed", summary.Processed,
		"skipped", summary.Skipped,
		"failed", summary.Failed)
	return summary
}

// processWord runs the full flow for a single word and returns the IDs
// of the notes it created.
func (p *Pipeline) processWord(ctx context.Context, log *slog.Logger, word string) ([]int64, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	card, err := p.gen.Generate(ctx, word)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	if err := card.Validate(); err != nil {
		return nil, fmt.Errorf("generated card rejected: %w", err)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	imagePath, err := p.images.Generate(ctx, word, card.VisualConcept)
	if err != nil {
		return nil, fmt.Errorf("generate image: %w", err)
	}
	filename := filepath.Base(imagePath)

	if err := p.anki.StoreMediaFile(ctx, imagePath, filename); err != nil {
		return nil, fmt.Errorf("store media: %w", err)
	}

	front, back := p.fieldNames(ctx)
	cardIDs := make([]int64, 0, 2)
	for _, rendered := range render.Cards(word, card.Content, filename) {
		id, err := p.anki.AddNote(ctx, p.cfg.Deck, front, back, rendered.Front, rendered.Back, p.cfg.Tags)
		if err != nil {
			return nil, fmt.Errorf("add note: %w", err)
		}
		cardIDs = append(cardIDs, id)
	}

	log.DebugContext(ctx, "notes created", "word", word, "count", len(cardIDs))
	return cardIDs, nil
}

// fieldNames resolves the note-model field pair, falling back to the
// configured names when the model reports fewer than two fields.
func (p *Pipeline) fieldNames(ctx context.Context) (front, back string) {
	fallback := []string{p.cfg.FrontField, p.cfg.BackField}
	names := p.anki.ModelFieldNames(ctx, fallback)
	if len(names) < 2 {
		names = fallback
	}
	return names[0], names[1]
}
