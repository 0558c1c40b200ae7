package domain

import (
	"strings"
	"time"
)

// Orientation identifies one of the two fixed card layouts generated for
// every word. No other orientations exist.
type Orientation string

const (
	// ImageToWord shows the image on the front and the word plus content
	// on the back.
	ImageToWord Orientation = "image_to_word"

	// WordToImage shows the word on the front and the image plus content
	// on the back.
	WordToImage Orientation = "word_to_image"
)

// RenderedCard is one front/back HTML pair ready for the card store.
// Values are passed by value and never mutated after rendering.
type RenderedCard struct {
	Front string
	Back  string
}

// ProcessedRecord marks a word as fully processed: both cards created and
// the media file stored. Records are created on success and never updated
// afterward.
type ProcessedRecord struct {
	Timestamp time.Time `json:"timestamp"`
	CardIDs   []int64   `json:"card_ids"`
}

// WordKey normalizes a word to its processed-record key. A word counts as
// processed iff its lowercased form is a key in the record map; case is
// never distinguished.
func WordKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}
