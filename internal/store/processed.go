package store

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
)

// ProcessedStore is a flat JSON file holding a map keyed by lowercased
// word. Absence of a key means "not yet processed". The file is loaded
// once and rewritten whole after every change; the batch is strictly
// sequential so there is no contention to design for.
type ProcessedStore struct {
	path    string
	records map[string]domain.ProcessedRecord
	logger  *slog.Logger
	now     func() time.Time
}

// Open loads the record file. A missing or unreadable file yields an
// empty map rather than an error: the worst outcome is redoing work.
func Open(path string, logger *slog.Logger) *ProcessedStore {
	if logger == nil {
		logger = slog.Default()
	}
	s := &ProcessedStore{
		path:    path,
		records: make(map[string]domain.ProcessedRecord),
		logger:  logger.With("component", "processed_store"),
		now:     time.Now,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read record file, starting empty", "path", path, "error", err)
		}
		return s
	}
	if err := json.Unmarshal(data, &s.records); err != nil {
		s.logger.Warn("corrupt record file, starting empty", "path", path, "error", err)
		s.records = make(map[string]domain.ProcessedRecord)
	}
	return s
}

// Len reports how many words have been processed.
func (s *ProcessedStore) Len() int {
	return len(s.records)
}

// IsProcessed reports whether the word was already turned into cards,
// regardless of case.
func (s *ProcessedStore) IsProcessed(word string) bool {
	_, ok := s.records[domain.WordKey(word)]
	return ok
}

// Mark records a word as processed with the created card IDs and
// persists the map.
func (s *ProcessedStore) Mark(word string, cardIDs []int64) error {
	s.records[domain.WordKey(word)] = domain.ProcessedRecord{
		Timestamp: s.now().UTC(),
		CardIDs:   cardIDs,
	}
	return s.save()
}

// Reset discards all records and persists the empty map.
func (s *ProcessedStore) Reset() error {
	s.records = make(map[string]domain.ProcessedRecord)
	return s.save()
}

func (s *ProcessedStore) save() error {
	data, err := json.MarshalIndent(s.records, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal records: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create record dir: %w", err)
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write record file: %w", err)
	}
	return nil
}
