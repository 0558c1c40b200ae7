// Package generation provides interfaces and implementations for interacting
// with external AI/LLM services for content generation. It abstracts the
// details of LLM API integration (Gemini), allowing the application to
// generate flashcard content for a word without coupling to a specific
// external service, and owns the parsing of raw model replies into
// structured flashcards.
package generation
