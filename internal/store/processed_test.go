package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
)

func TestOpenMissingFile(t *testing.T) {
	t.Parallel()

	s := Open(filepath.Join(t.TempDir(), "processed.json"), nil)
	assert.Zero(t, s.Len())
	assert.False(t, s.IsProcessed("nimble"))
}

func TestMarkAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data", "processed.json")

	s := Open(path, nil)
	require.NoError(t, s.Mark("Nimble", []int64{101, 102}))

	assert.True(t, s.IsProcessed("nimble"))
	assert.True(t, s.IsProcessed("NIMBLE"), "lookups must ignore case")

	// A fresh store reads the same records back.
	reloaded := Open(path, nil)
	assert.Equal(t, 1, reloaded.Len())
	assert.True(t, reloaded.IsProcessed("nimble"))

	// The file is keyed by the lowercased word.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var raw map[string]domain.ProcessedRecord
	require.NoError(t, json.Unmarshal(data, &raw))
	record, ok := raw["nimble"]
	require.True(t, ok, "record must be keyed by lowercased word")
	assert.Equal(t, []int64{101, 102}, record.CardIDs)
	assert.False(t, record.Timestamp.IsZero())
}

func TestOpenCorruptFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "processed.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	s := Open(path, nil)
	assert.Zero(t, s.Len())

	// Marking still works and replaces the corrupt file.
	require.NoError(t, s.Mark("nimble", []int64{1, 2}))
	assert.True(t, Open(path, nil).IsProcessed("nimble"))
}

func TestReset(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "processed.json")
	s := Open(path, nil)
	require.NoError(t, s.Mark("nimble", []int64{1, 2}))
	require.NoError(t, s.Mark("to deem", []int64{3, 4}))
	require.Equal(t, 2, s.Len())

	require.NoError(t, s.Reset())
	assert.Zero(t, s.Len())
	assert.Zero(t, Open(path, nil).Len())
}
