package generation

import (
	"context"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
)

// Generator defines the interface for producing flashcard content for a
// word. It is the boundary between the processing pipeline and the
// external language model: implementations own the API call and the
// parsing of the raw reply, and return a structured flashcard that may
// still fail downstream validation.
type Generator interface {
	// Generate produces the flashcard content for a single word. The
	// returned flashcard is best-effort: a malformed model reply surfaces
	// as empty fields, not as an error, and is caught by
	// domain.Flashcard.Validate.
	Generate(ctx context.Context, word string) (domain.Flashcard, error)
}
