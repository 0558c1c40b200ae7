package domain

import (
	"errors"
	"unicode/utf8"
)

// Flashcard-specific validation errors
var (
	// ErrWordEmpty is returned when a flashcard's word is empty.
	ErrWordEmpty = errors.New("flashcard word cannot be empty")

	// ErrContentEmpty is returned when a flashcard's content is empty.
	ErrContentEmpty = errors.New("flashcard content cannot be empty")

	// ErrVisualConceptEmpty is returned when a flashcard has no visual concept.
	ErrVisualConceptEmpty = errors.New("flashcard visual concept cannot be empty")

	// ErrContentTooShort is returned when a flashcard's content is below the
	// minimum viable length.
	ErrContentTooShort = errors.New("flashcard content below minimum length")

	// ErrVisualConceptTooShort is returned when a flashcard's visual concept
	// is below the minimum viable length.
	ErrVisualConceptTooShort = errors.New("flashcard visual concept below minimum length")
)

// Minimum viable sizes for generated fields, measured in characters
// (runes), not bytes or tokens. Responses below these thresholds are not
// worth the cost of image generation and card creation.
const (
	MinContentLength       = 50
	MinVisualConceptLength = 20
)

// Flashcard holds the structured fields extracted from a single raw
// generation result. It is constructed once by the response parser and
// never mutated afterward.
type Flashcard struct {
	// Word is the original input word or expression.
	Word string

	// Content is the main flashcard text: definition, examples and usage
	// notes as plain multi-line text.
	Content string

	// VisualConcept describes the scene the image generator should draw
	// for this word. Empty when the generator's reply had no concept
	// section.
	VisualConcept string
}

// Validate checks the flashcard for completeness and minimum viable size.
// It is the hard gate the pipeline applies before incurring any
// image-generation cost: a non-nil error means the word is skipped.
func (f Flashcard) Validate() error {
	if f.Word == "" {
		return ErrWordEmpty
	}
	if f.Content == "" {
		return ErrContentEmpty
	}
	if f.VisualConcept == "" {
		return ErrVisualConceptEmpty
	}
	if utf8.RuneCountInString(f.Content) < MinContentLength {
		return ErrContentTooShort
	}
	if utf8.RuneCountInString(f.VisualConcept) < MinVisualConceptLength {
		return ErrVisualConceptTooShort
	}
	return nil
}
