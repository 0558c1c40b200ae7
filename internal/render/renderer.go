// Package render builds the HTML for both card orientations. The layout
// rules are a fixed visual contract: every card in the deck must look the
// same, so the markup here is deterministic down to the exact line-break
// tags.
package render

import (
	"fmt"
	"strings"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
)

// Word wraps a word in the fixed word style: bold, blue, 20px.
func Word(word string) string {
	return fmt.Sprintf(`<span style="color: #0000FF; font-weight: bold; font-size: 20px;">%s</span>`, word)
}

// Image references a media filename with a responsive style. Only the
// bare filename is embedded; the card store resolves it from its own
// media directory.
func Image(filename string) string {
	return fmt.Sprintf(`<img src="%s" style="max-width: 100%%; height: auto;">`, filename)
}

// Content reflows plain generated text into HTML, preserving the
// author's paragraph structure. Consecutive non-blank lines form a block
// joined with <br>; blocks are joined with <br><br>, which renders as a
// single blank line between paragraphs regardless of how many blank
// lines separated them in the source.
func Content(text string) string {
	lines := strings.Split(text, "\n")

	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	var blocks []string
	var block []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			block = append(block, escape(line))
			continue
		}
		if len(block) > 0 {
			blocks = append(blocks, strings.Join(block, "<br>"))
			block = nil
		}
	}
	if len(block) > 0 {
		blocks = append(blocks, strings.Join(block, "<br>"))
	}

	return strings.Join(blocks, "<br><br>")
}

// escape protects the angle brackets that would break the card markup.
// Generated text is trusted otherwise, so no broader HTML escaping is
// applied.
func escape(text string) string {
	text = strings.ReplaceAll(text, "<", "&lt;")
	text = strings.ReplaceAll(text, ">", "&gt;")
	return text
}

// Card assembles the front/back pair for one orientation.
//
// The two layouts are intentionally asymmetric: the image-front card
// restates the word on the back with a blank line before the content,
// while the word-front card puts the image directly above the content
// with only a single line break and no restated word.
func Card(orientation domain.Orientation, word, content, imageFilename string) domain.RenderedCard {
	if orientation == domain.WordToImage {
		return domain.RenderedCard{
			Front: Word(word),
			Back:  Image(imageFilename) + "<br>" + Content(content),
		}
	}
	return domain.RenderedCard{
		Front: Image(imageFilename),
		Back:  Word(word) + "<br><br>" + Content(content),
	}
}

// Cards renders both orientations for a word in their fixed order:
// image-to-word first, word-to-image second.
func Cards(word, content, imageFilename string) []domain.RenderedCard {
	return []domain.RenderedCard{
		Card(domain.ImageToWord, word, content, imageFilename),
		Card(domain.WordToImage, word, content, imageFilename),
	}
}
