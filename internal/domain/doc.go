// Package domain contains the core business entities and domain logic of
// the flashcard automation: the parsed generation result, the rendered
// card pair, and the processed-record bookkeeping. It is independent of
// any specific generator, image service, or card store.
package domain
