// Package diataxis implements the structural linter for the four-type
// documentation taxonomy: tutorial, how-to, reference, and explanation.
package diataxis

import (
	"regexp"
	"strings"

	"github.com/yaklabco/doclint/pkg/docmodel"
	"github.com/yaklabco/doclint/pkg/lexicon"
)

// Scoring weights and the mixed-type threshold. Tunable constants: a
// heading hit outweighs a prose hit, and a type only competes once its
// score reaches mixedTypeThreshold, so a single incidental mention in
// prose never flags a document as mixed.
const (
	headingHitWeight   = 2
	paragraphHitWeight = 1
	numberedStepsBonus = 1
	mixedTypeThreshold = 2

	// classifyParagraphs is how many leading paragraphs contribute
	// signals. Body prose further down is not framing.
	classifyParagraphs = 2
)

var numberedItemPattern = regexp.MustCompile(`^\s*\d+\.\s`)

// Scores holds the signal score per documentation type.
type Scores map[lexicon.DocType]int

// Classification is the outcome of scoring a document.
type Classification struct {
	// Scores is the raw per-type signal score.
	Scores Scores

	// Dominant is the highest-scoring type, or "" when no type scored.
	Dominant lexicon.DocType

	// Competing lists every type at or above the mixed-type threshold,
	// in stable taxonomy order.
	Competing []lexicon.DocType
}

// Mixed reports whether two or more types compete.
func (c Classification) Mixed() bool {
	return len(c.Competing) >= 2
}

// Classify scores the document's type signals from its headings and the
// first paragraphs, and derives the dominant and competing types.
func Classify(doc *docmodel.Document, lex *lexicon.Lexicon) Classification {
	scores := make(Scores, 4)

	headingText := strings.ToLower(joinHeadings(doc))
	leadText := strings.ToLower(leadingParagraphs(doc, classifyParagraphs))

	for _, dt := range lexicon.DocTypes() {
		score := 0
		for _, signal := range lex.TypeSignals[dt] {
			score += countHits(headingText, signal) * headingHitWeight
			score += countHits(leadText, signal) * paragraphHitWeight
		}
		scores[dt] = score
	}

	// Numbered steps signal a how-to, unless the document frames itself
	// as a tutorial, in which case they reinforce the tutorial reading.
	if hasNumberedItems(doc) {
		if scores[lexicon.TypeTutorial] > 0 {
			scores[lexicon.TypeTutorial] += numberedStepsBonus
		} else {
			scores[lexicon.TypeHowTo] += numberedStepsBonus
		}
	}

	c := Classification{Scores: scores}

	for _, dt := range lexicon.DocTypes() {
		if scores[dt] >= mixedTypeThreshold {
			c.Competing = append(c.Competing, dt)
		}
		if scores[dt] > 0 && (c.Dominant == "" || scores[dt] > scores[c.Dominant]) {
			c.Dominant = dt
		}
	}

	return c
}

// joinHeadings concatenates every heading's text.
func joinHeadings(doc *docmodel.Document) string {
	var sb strings.Builder
	for _, h := range doc.Headings {
		sb.WriteString(h.Text)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// leadingParagraphs returns the text of the first n paragraphs: contiguous
// prose line runs outside code regions, excluding headings and blanks.
func leadingParagraphs(doc *docmodel.Document, n int) string {
	var sb strings.Builder
	inParagraph := false
	count := 0

	for lineNum := 1; lineNum <= doc.LineCount(); lineNum++ {
		line := strings.TrimSpace(doc.Line(lineNum))

		isBreak := line == "" || strings.HasPrefix(line, "#") || doc.InCodeRegion(lineNum)
		if isBreak {
			if inParagraph {
				inParagraph = false
				count++
				if count >= n {
					break
				}
			}
			continue
		}

		inParagraph = true
		sb.WriteString(line)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// countHits counts non-overlapping whole-word occurrences of the phrase.
func countHits(text, phrase string) int {
	if phrase == "" {
		return 0
	}

	count := 0
	offset := 0
	for {
		idx := strings.Index(text[offset:], phrase)
		if idx < 0 {
			return count
		}
		start := offset + idx
		end := start + len(phrase)
		if wordBoundary(text, start-1) && wordBoundary(text, end) {
			count++
		}
		offset = end
	}
}

// wordBoundary reports whether the byte at i is absent or a non-word
// character, so "api" does not hit inside "rapid".
func wordBoundary(text string, i int) bool {
	if i < 0 || i >= len(text) {
		return true
	}
	c := text[i]
	return !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9')
}

// hasNumberedItems reports whether the document contains ordered list
// items outside code regions.
func hasNumberedItems(doc *docmodel.Document) bool {
	for lineNum := 1; lineNum <= doc.LineCount(); lineNum++ {
		if doc.InCodeRegion(lineNum) {
			continue
		}
		if numberedItemPattern.MatchString(doc.Line(lineNum)) {
			return true
		}
	}
	return false
}
