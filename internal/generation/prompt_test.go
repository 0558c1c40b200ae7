package generation

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadPromptTemplate(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("  Generate a flashcard.\n"), 0o644))

	template, err := LoadPromptTemplate(path)
	require.NoError(t, err)
	assert.Equal(t, "Generate a flashcard.", template)
}

func TestLoadPromptTemplateMissing(t *testing.T) {
	t.Parallel()

	_, err := LoadPromptTemplate(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestLoadPromptTemplateEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "prompt.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\n"), 0o644))

	_, err := LoadPromptTemplate(path)
	assert.True(t, errors.Is(err, ErrTemplateNotFound))
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	got := BuildPrompt("Generate a flashcard.", "nimble")
	assert.Equal(t, "Generate a flashcard.\n\n---\n\nPalavra: nimble", got)
}
