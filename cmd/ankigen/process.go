package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/dpalis/anki-flashcard-automation/internal/anki"
	"github.com/dpalis/anki-flashcard-automation/internal/config"
	"github.com/dpalis/anki-flashcard-automation/internal/generation"
	"github.com/dpalis/anki-flashcard-automation/internal/image"
	"github.com/dpalis/anki-flashcard-automation/internal/platform/logger"
	"github.com/dpalis/anki-flashcard-automation/internal/service"
	"github.com/dpalis/anki-flashcard-automation/internal/store"
	"github.com/dpalis/anki-flashcard-automation/internal/wordlist"
)

var (
	singleWord string
	resetCache bool
)

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Generate flashcards and add them to Anki",
	Long: `Process reads the configured words file and, for every word not yet
processed, generates an explanation, an illustration and two Anki cards.
With --word a single word is processed without touching the words file.`,
	Args: cobra.NoArgs,
	RunE: runProcess,
}

func init() {
	processCmd.Flags().StringVarP(&singleWord, "word", "w", "", "process a single word instead of the words file")
	processCmd.Flags().BoolVar(&resetCache, "reset-cache", false, "forget previously processed words before running")
	rootCmd.AddCommand(processCmd)
}

func runProcess(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level := cfg.App.LogLevel
	if verbose {
		level = "debug"
	}
	if quiet {
		level = "error"
	}
	log := logger.Setup(level)

	template, err := generation.LoadPromptTemplate(cfg.LLM.PromptTemplate)
	if err != nil {
		return fmt.Errorf("load prompt template: %w", err)
	}

	client := anki.NewClient(cfg.Anki.URL, cfg.Anki.CardModel, nil)
	version, err := client.Version(ctx)
	if err != nil {
		return fmt.Errorf("AnkiConnect is not reachable at %s (is Anki running?): %w", cfg.Anki.URL, err)
	}
	log.InfoContext(ctx, "connected to AnkiConnect", "version", version)

	if err := client.CreateDeckIfMissing(ctx, cfg.Anki.Deck); err != nil {
		return fmt.Errorf("ensure deck %q: %w", cfg.Anki.Deck, err)
	}

	parser := generation.NewParser(generation.ParserConfig{
		ConceptMarker:     cfg.Parser.ConceptMarker,
		FrequencyKeywords: cfg.Parser.FrequencyKeywords,
	})
	gen, err := generation.NewGeminiGenerator(ctx, generation.GeminiConfig{
		APIKey:         cfg.LLM.GeminiAPIKey,
		Model:          cfg.LLM.Model,
		PromptTemplate: template,
		MaxTokens:      int32(cfg.LLM.MaxOutputTokens),
	}, parser, log)
	if err != nil {
		return fmt.Errorf("set up generator: %w", err)
	}

	images, err := image.NewProvider(image.Config{
		BaseURL:    cfg.Image.BaseURL,
		OutputDir:  cfg.Image.OutputDir,
		MaxRetries: cfg.Image.MaxRetries,
		Quality:    cfg.Image.Quality,
	}, nil, log)
	if err != nil {
		return fmt.Errorf("set up image provider: %w", err)
	}

	records := store.Open(cfg.App.CacheFile, log)
	if resetCache {
		if err := records.Reset(); err != nil {
			return fmt.Errorf("reset processed-word cache: %w", err)
		}
		log.InfoContext(ctx, "processed-word cache cleared")
	}

	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.LLM.RequestsPerMinute)), 1)

	pipeline, err := service.NewPipeline(service.PipelineConfig{
		Deck:       cfg.Anki.Deck,
		FrontField: cfg.Anki.FrontField,
		BackField:  cfg.Anki.BackField,
		Tags:       cfg.Anki.DefaultTags,
		WordsFile:  cfg.App.WordsFile,
	}, gen, images, client, records, limiter, log)
	if err != nil {
		return err
	}

	words, batch, err := resolveWords(cfg.App.WordsFile)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		log.InfoContext(ctx, "words file is empty, nothing to do", "file", cfg.App.WordsFile)
		return nil
	}

	summary := pipeline.Run(ctx, words, batch)
	fmt.Fprintf(cmd.OutOrStdout(), "processed %d, skipped %d, failed %d\n",
		summary.Processed, summary.Skipped, summary.Failed)

	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d words failed", summary.Failed, len(words))
	}
	return nil
}

// resolveWords returns the words to process and whether this is a batch
// run over the words file (only batch runs shrink the file).
func resolveWords(wordsFile string) ([]string, bool, error) {
	if singleWord != "" {
		return []string{singleWord}, false, nil
	}
	words, err := wordlist.Load(wordsFile)
	if err != nil {
		return nil, false, fmt.Errorf("load words file %s: %w", wordsFile, err)
	}
	return words, true, nil
}
