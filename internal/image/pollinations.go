// Package image generates concept illustrations for words through the
// Pollinations API and stores them as local JPEG files named after the
// word.
package image

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// noTextInstructions is prepended to every image prompt. The images go
// on card fronts, so any rendered text would give the answer away.
const noTextInstructions = "IMPORTANT: No text, no words, no letters, no numbers, no symbols, " +
	"no signs, no labels, no typography of any kind. Pure visual concept only. "

// ErrGenerationExhausted is returned when every download attempt failed.
var ErrGenerationExhausted = errors.New("image generation attempts exhausted")

// Config tunes the provider.
type Config struct {
	// BaseURL is the prompt endpoint, e.g.
	// https://image.pollinations.ai/prompt.
	BaseURL string

	// OutputDir receives the downloaded JPEG files.
	OutputDir string

	// MaxRetries caps download attempts per image.
	MaxRetries int

	// Quality selects the requested resolution: high, medium or low.
	Quality string

	// RetryWait is the pause between attempts. Zero means the default
	// two seconds.
	RetryWait time.Duration
}

// Provider downloads generated images. Words map deterministically to
// filenames, so an image that already exists on disk is reused instead
// of regenerated.
type Provider struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewProvider creates the provider and ensures the output directory
// exists.
func NewProvider(cfg Config, httpClient *http.Client, logger *slog.Logger) (*Provider, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("image provider: base URL is required")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = 2 * time.Second
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("image provider: create output dir: %w", err)
	}
	return &Provider{cfg: cfg, httpClient: httpClient, logger: logger.With("component", "image_provider")}, nil
}

// Filename returns the media filename a word's image is stored under.
func Filename(word string) string {
	return SanitizeWord(word) + ".jpg"
}

// SanitizeWord lowercases a word and strips everything that is unsafe in
// a filename; spaces become underscores.
func SanitizeWord(word string) string {
	safe := strings.ToLower(strings.TrimSpace(word))
	safe = strings.ReplaceAll(safe, " ", "_")

	var b strings.Builder
	for _, r := range safe {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Generate downloads the image for a word's visual concept and returns
// the local file path. An existing file short-circuits the download.
func (p *Provider) Generate(ctx context.Context, word, visualConcept string) (string, error) {
	outputPath := filepath.Join(p.cfg.OutputDir, Filename(word))

	if _, err := os.Stat(outputPath); err == nil {
		p.logger.Debug("image already exists, reusing", "word", word, "path", outputPath)
		return outputPath, nil
	}

	imageURL := p.buildURL(noTextInstructions + visualConcept)

	var lastErr error
	for attempt := 1; attempt <= p.cfg.MaxRetries; attempt++ {
		p.logger.Debug("downloading image", "word", word, "attempt", attempt, "max", p.cfg.MaxRetries)

		if err := p.download(ctx, imageURL, outputPath); err != nil {
			lastErr = err
			p.logger.Warn("image download failed", "word", word, "attempt", attempt, "error", err)
			if attempt < p.cfg.MaxRetries {
				select {
				case <-time.After(p.cfg.RetryWait):
				case <-ctx.Done():
					return "", ctx.Err()
				}
			}
			continue
		}
		return outputPath, nil
	}
	return "", fmt.Errorf("%w: %q after %d attempts: %v", ErrGenerationExhausted, word, p.cfg.MaxRetries, lastErr)
}

// buildURL escapes the prompt into the path and appends the resolution
// for the configured quality.
func (p *Provider) buildURL(prompt string) string {
	size := 512
	switch p.cfg.Quality {
	case "high":
		size = 1024
	case "medium":
		size = 768
	}
	return fmt.Sprintf("%s/%s?width=%d&height=%d&nologo=true",
		p.cfg.BaseURL, url.PathEscape(prompt), size, size)
}

func (p *Provider) download(ctx context.Context, imageURL, outputPath string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("fetch image: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read image body: %w", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return fmt.Errorf("write image: %w", err)
	}
	return nil
}
