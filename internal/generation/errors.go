package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when content generation fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate flashcard content")

	// ErrEmptyResponse is returned when the language model reply carries no text
	ErrEmptyResponse = errors.New("empty response from language model")

	// ErrInvalidConfig is returned when the generator configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrTemplateNotFound is returned when the prompt template file cannot be read
	ErrTemplateNotFound = errors.New("prompt template not found")
)
