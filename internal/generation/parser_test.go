package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testParser() *Parser {
	return NewParser(ParserConfig{
		ConceptMarker:     "CONCEITO VISUAL",
		FrequencyKeywords: []string{"muito comum", "comum", "pouco comum", "raro"},
	})
}

func TestParseExtractsConceptSection(t *testing.T) {
	t.Parallel()

	raw := "A quick definition with examples.\n\nCONCEITO VISUAL:\nA cat leaping between rooftops at dusk."
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "nimble", card.Word)
	assert.Equal(t, "A quick definition with examples.", card.Content)
	assert.Equal(t, "A cat leaping between rooftops at dusk.", card.VisualConcept)
}

func TestParseMarkerCaseInsensitive(t *testing.T) {
	t.Parallel()

	raw := "Definition.\nconceito visual:\nA winding mountain road."
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "Definition.", card.Content)
	assert.Equal(t, "A winding mountain road.", card.VisualConcept)
}

func TestParseMarkerAbsent(t *testing.T) {
	t.Parallel()

	raw := "Just a definition, nothing else."
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "Just a definition, nothing else.", card.Content)
	assert.Empty(t, card.VisualConcept)
	assert.Error(t, card.Validate())
}

func TestParseEmptyConceptSection(t *testing.T) {
	t.Parallel()

	// Marker present but nothing after it: legitimate parser output, the
	// validator rejects it.
	raw := "Definition.\nCONCEITO VISUAL:"
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "Definition.", card.Content)
	assert.Empty(t, card.VisualConcept)
	assert.Error(t, card.Validate())
}

func TestParseMultiLineConcept(t *testing.T) {
	t.Parallel()

	raw := "Definition.\nCONCEITO VISUAL:\nFirst concept line.\nSecond concept line."
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "First concept line.\nSecond concept line.", card.VisualConcept)
}

func TestParseStripsLabelLine(t *testing.T) {
	t.Parallel()

	raw := "Flashcard: nimble\nActual definition text.\nCONCEITO VISUAL:\nA scene."
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "Actual definition text.", card.Content)
}

func TestParseLabelPrefixCaseSensitive(t *testing.T) {
	t.Parallel()

	raw := "flashcard: nimble\nDefinition."
	card := testParser().Parse(raw, "nimble")

	// Lowercase prefix is not the label convention and stays in place.
	assert.Equal(t, "flashcard: nimble\nDefinition.", card.Content)
}

func TestParseStripsCodeFences(t *testing.T) {
	t.Parallel()

	raw := "```\nDefinition inside a fenced block.\n```\nCONCEITO VISUAL:\nA scene."
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "Definition inside a fenced block.", card.Content)
	assert.NotContains(t, card.Content, "```")
}

func TestParseDropsEchoedWord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		word  string
		first string
	}{
		{"same case", "nimble", "nimble"},
		{"different case", "nimble", "Nimble"},
		{"multi-token word", "to deem", "To Deem"},
		{"surrounding whitespace", "to deem", "  to deem  "},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			raw := tc.first + "\nDefinition follows here."
			card := testParser().Parse(raw, tc.word)
			assert.Equal(t, "Definition follows here.", card.Content)
		})
	}
}

func TestParseKeepsUnrelatedFirstLine(t *testing.T) {
	t.Parallel()

	raw := "nimbleness\nDefinition follows."
	card := testParser().Parse(raw, "nimble")

	assert.Equal(t, "nimbleness\nDefinition follows.", card.Content)
}

func TestParseDropsFrequencyLine(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		last string
		want string
	}{
		{"muito comum", "Muito comum", "Definition."},
		{"raro bracketed", "[Raro]", "Definition."},
		{"plain comum", "Comum", "Definition."},
		{"regular sentence kept", "some example sentence", "Definition.\nsome example sentence"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			raw := "Definition.\n" + tc.last
			card := testParser().Parse(raw, "nimble")
			assert.Equal(t, tc.want, card.Content)
		})
	}
}

func TestParseDegenerateReply(t *testing.T) {
	t.Parallel()

	// Echoed word plus a frequency line leaves nothing: empty content is
	// valid parser output, caught by the validator.
	raw := "Nimble\nMuito comum"
	card := testParser().Parse(raw, "nimble")

	assert.Empty(t, card.Content)
	assert.Error(t, card.Validate())
}

func TestParseIsPure(t *testing.T) {
	t.Parallel()

	raw := "Flashcard: nimble\nnimble\nDefinition text here.\n\nMuito comum\nCONCEITO VISUAL:\nA scene with no text."
	p := testParser()

	first := p.Parse(raw, "nimble")
	second := p.Parse(raw, "nimble")
	assert.Equal(t, first, second)
}

func TestParseFullNoisyReply(t *testing.T) {
	t.Parallel()

	raw := "Flashcard: to deem\n```\nTo Deem\nConsiderar, julgar.\n\nExample: The project was deemed a success.\n\nPouco comum\n```\nCONCEITO VISUAL:\nA judge holding scales, weighing two glowing orbs."
	card := testParser().Parse(raw, "to deem")

	assert.Equal(t, "Considerar, julgar.\n\nExample: The project was deemed a success.", card.Content)
	assert.Equal(t, "A judge holding scales, weighing two glowing orbs.", card.VisualConcept)
}
