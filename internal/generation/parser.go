package generation

import (
	"strings"

	"github.com/dpalis/anki-flashcard-automation/internal/domain"
)

// labelPrefix marks the redundant title line some model replies start
// with ("Flashcard: nimble"). The prefix match is case-sensitive.
const labelPrefix = "Flashcard:"

// codeFence is the literal markdown fence some model replies wrap the
// whole card in.
const codeFence = "```"

// ParserConfig holds the marker vocabulary the parser recognizes. Both
// values depend on the language the prompt template is written in, so
// they are configuration rather than constants.
type ParserConfig struct {
	// ConceptMarker labels the trailing section of the reply that holds
	// the image-concept description. Matched case-insensitively against
	// whole lines.
	ConceptMarker string

	// FrequencyKeywords identify a trailing familiarity annotation
	// ("Muito comum", "Raro", ...). A last line containing any of them,
	// lowercased, is dropped.
	FrequencyKeywords []string
}

// Parser extracts structured flashcard fields from a raw model reply,
// tolerating the formatting noise generators tend to introduce: echoed
// words, markdown fences, label lines, frequency annotations.
type Parser struct {
	cfg ParserConfig
}

// NewParser returns a parser for the given marker vocabulary.
func NewParser(cfg ParserConfig) *Parser {
	return &Parser{cfg: cfg}
}

// Parse converts a raw reply into a flashcard. It is a pure function and
// never fails: a reply missing the concept section or stripped down to
// nothing yields empty fields, which the validator rejects downstream.
func (p *Parser) Parse(raw, word string) domain.Flashcard {
	content, concept := p.splitConceptSection(raw)

	content = stripLabelLines(content)
	content = strings.TrimSpace(strings.ReplaceAll(content, codeFence, ""))

	lines := strings.Split(content, "\n")
	lines = p.dropEchoedWord(lines, word)
	lines = p.dropFrequencyLine(lines)

	return domain.Flashcard{
		Word:          word,
		Content:       strings.TrimSpace(strings.Join(lines, "\n")),
		VisualConcept: concept,
	}
}

// splitConceptSection scans for the first line containing the concept
// marker, case-insensitively. Everything after that line, trimmed, is
// the visual concept; everything before it is the content candidate.
// The explicit scan replaces the original regex extraction so there is
// no greedy/lazy ambiguity: the first marker line always wins.
func (p *Parser) splitConceptSection(raw string) (content, concept string) {
	if p.cfg.ConceptMarker == "" {
		return strings.TrimSpace(raw), ""
	}

	marker := strings.ToLower(p.cfg.ConceptMarker)
	lines := strings.Split(raw, "\n")
	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), marker) {
			continue
		}
		content = strings.TrimSpace(strings.Join(lines[:i], "\n"))
		concept = strings.TrimSpace(strings.Join(lines[i+1:], "\n"))
		return content, concept
	}
	return strings.TrimSpace(raw), ""
}

// stripLabelLines removes every "Flashcard: ..." line.
func stripLabelLines(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, labelPrefix) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

// dropEchoedWord removes the first line when it is just the input word
// echoed back, compared case-insensitively and whitespace-trimmed so
// multi-token words like "to deem" match too.
func (p *Parser) dropEchoedWord(lines []string, word string) []string {
	if len(lines) == 0 {
		return lines
	}
	first := strings.ToLower(strings.TrimSpace(lines[0]))
	if first == strings.ToLower(strings.TrimSpace(word)) {
		return lines[1:]
	}
	return lines
}

// dropFrequencyLine removes a trailing familiarity annotation when the
// last line, lowercased, contains any configured frequency keyword.
func (p *Parser) dropFrequencyLine(lines []string) []string {
	if len(lines) == 0 {
		return lines
	}
	last := strings.ToLower(strings.TrimSpace(lines[len(lines)-1]))
	for _, keyword := range p.cfg.FrequencyKeywords {
		if keyword != "" && strings.Contains(last, strings.ToLower(keyword)) {
			return lines[:len(lines)-1]
		}
	}
	return lines
}
