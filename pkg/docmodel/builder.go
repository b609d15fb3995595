package docmodel

import (
	"regexp"
	"strings"
)

// minSentenceChars guards against false splits on abbreviations such as
// "e.g." by refusing to end a sentence shorter than this mid-paragraph.
const minSentenceChars = 12

var (
	headingPattern = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)

	// inlineLinkPattern matches [text](url), with an optional leading !
	// so images can be told apart from links.
	inlineLinkPattern = regexp.MustCompile(`(!?)\[([^\]]*)\]\(([^)\s]*)(?:\s+"[^"]*")?\)`)

	listMarkerPattern = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s`)
	linkOnlyPattern   = regexp.MustCompile(`^\s*!?\[[^\]]*\]\([^)]*\)[.!?]?\s*$`)
)

// Build constructs a Document from raw file content.
// It is a pure function: no I/O, and malformed input produces sparse
// extraction rather than an error.
func Build(content string) *Document {
	lines := splitLines(content)
	regions := ComputeCodeRegions(lines)

	doc := &Document{
		Lines:       lines,
		CodeRegions: regions,
	}

	doc.Headings = extractHeadings(lines, regions)
	doc.Links = extractLinks(lines, regions)
	doc.Sentences = extractSentences(lines, regions)

	return doc
}

// splitLines splits content into physical lines, handling both LF and CRLF.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	// A trailing newline produces a phantom empty final element.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// extractHeadings returns all ATX headings outside code regions.
func extractHeadings(lines []string, regions []CodeRegion) []Heading {
	var headings []Heading

	for i, line := range lines {
		lineNum := i + 1
		if InRegions(regions, lineNum) {
			continue
		}

		m := headingPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		text := strings.TrimSpace(m[2])
		// Closed ATX style: strip trailing marker hashes.
		text = strings.TrimRight(text, "#")
		text = strings.TrimRight(text, " \t")
		if text == "" {
			continue
		}

		headings = append(headings, Heading{
			Level: len(m[1]),
			Text:  text,
			Line:  lineNum,
		})
	}

	return headings
}

// extractLinks returns all inline links outside code regions.
// Images are excluded.
func extractLinks(lines []string, regions []CodeRegion) []LinkRef {
	var links []LinkRef

	for i, line := range lines {
		lineNum := i + 1
		if InRegions(regions, lineNum) {
			continue
		}

		for _, m := range inlineLinkPattern.FindAllStringSubmatchIndex(line, -1) {
			// m[2]:m[3] is the optional image bang.
			if m[3] > m[2] {
				continue
			}
			links = append(links, LinkRef{
				Text:   line[m[4]:m[5]],
				URL:    line[m[6]:m[7]],
				Line:   lineNum,
				Column: m[0] + 1,
			})
		}
	}

	return links
}

// paragraphPart is one physical line contributing to a paragraph.
type paragraphPart struct {
	text string
	line int
}

// extractSentences assembles paragraphs from contiguous prose lines and
// splits them into sentences. Headings, list items, blockquotes, tables,
// link-only lines, and code regions never contribute.
func extractSentences(lines []string, regions []CodeRegion) []Sentence {
	var sentences []Sentence
	var paragraph []paragraphPart

	flush := func() {
		if len(paragraph) > 0 {
			sentences = append(sentences, splitSentences(paragraph)...)
			paragraph = nil
		}
	}

	for i, line := range lines {
		lineNum := i + 1
		if InRegions(regions, lineNum) || !isProseLine(line) {
			flush()
			continue
		}

		// Reduce inline links and images to their text so URLs do not
		// leak into prose analysis.
		text := inlineLinkPattern.ReplaceAllString(line, "$2")
		paragraph = append(paragraph, paragraphPart{
			text: strings.TrimSpace(text),
			line: lineNum,
		})
	}
	flush()

	return sentences
}

// isProseLine reports whether a line contributes paragraph text.
func isProseLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	if strings.HasPrefix(trimmed, "#") ||
		strings.HasPrefix(trimmed, ">") ||
		strings.HasPrefix(trimmed, "|") {
		return false
	}
	if listMarkerPattern.MatchString(line) {
		return false
	}
	if linkOnlyPattern.MatchString(line) {
		return false
	}
	return true
}

// splitSentences splits assembled paragraph text on sentence-terminal
// punctuation followed by whitespace or end-of-paragraph.
func splitSentences(parts []paragraphPart) []Sentence {
	// Join parts with single spaces while recording where each physical
	// line starts, so sentences can be mapped back to their source line.
	var joined strings.Builder
	starts := make([]int, len(parts)) // offset in joined -> parts index

	for i, part := range parts {
		if i > 0 {
			joined.WriteByte(' ')
		}
		starts[i] = joined.Len()
		joined.WriteString(part.text)
	}

	text := joined.String()
	lineAt := func(offset int) int {
		line := parts[0].line
		for i, start := range starts {
			if offset >= start {
				line = parts[i].line
			}
		}
		return line
	}

	var sentences []Sentence
	segStart := 0

	for i := 0; i < len(text); i++ {
		if !isTerminal(text[i]) {
			continue
		}
		// Swallow runs of terminal punctuation ("?!", "...").
		end := i
		for end+1 < len(text) && isTerminal(text[end+1]) {
			end++
		}
		atEnd := end == len(text)-1
		followedBySpace := !atEnd && text[end+1] == ' '
		if !atEnd && !followedBySpace {
			i = end
			continue
		}
		// Abbreviation guard: too short to be a sentence mid-paragraph.
		if !atEnd && end+1-segStart < minSentenceChars {
			i = end
			continue
		}

		seg := strings.TrimSpace(text[segStart : end+1])
		if seg != "" {
			sentences = append(sentences, Sentence{Text: seg, Line: lineAt(skipSpaces(text, segStart))})
		}
		segStart = end + 1
		i = end
	}

	// Trailing text without terminal punctuation still forms a sentence.
	if rest := strings.TrimSpace(text[segStart:]); rest != "" {
		sentences = append(sentences, Sentence{Text: rest, Line: lineAt(skipSpaces(text, segStart))})
	}

	return sentences
}

func isTerminal(c byte) bool {
	return c == '.' || c == '!' || c == '?'
}

// skipSpaces advances past the joining spaces so a sentence that begins on
// a later physical line maps to that line, not the previous one.
func skipSpaces(text string, offset int) int {
	for offset < len(text) && text[offset] == ' ' {
		offset++
	}
	return offset
}
