package generation

import (
	"fmt"
	"os"
	"strings"
)

// LoadPromptTemplate reads the prompt template the generator sends ahead
// of each word. A missing template is a startup error, not a per-word
// one.
func LoadPromptTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, path, err)
	}
	template := strings.TrimSpace(string(data))
	if template == "" {
		return "", fmt.Errorf("%w: %s is empty", ErrTemplateNotFound, path)
	}
	return template, nil
}

// BuildPrompt merges a word into the template. The separator keeps the
// word visually apart from the instructions so the model does not fold
// it into them.
func BuildPrompt(template, word string) string {
	return fmt.Sprintf("%s\n\n---\n\nPalavra: %s", template, word)
}
