// Package docmodel builds the immutable line-based document representation
// shared by every linter. Extraction is region-aware: content inside fenced
// code blocks never appears in headings, sentences, or links.
package docmodel

// Heading is an ATX heading extracted from the document.
type Heading struct {
	// Level is the heading depth, 1 through 6.
	Level int

	// Text is the heading content without markers.
	Text string

	// Line is the 1-based physical line of the # marker.
	Line int
}

// Sentence is a unit of prose extracted from paragraph text.
// Sentences never span a code region.
type Sentence struct {
	// Text is the sentence content with inline links reduced to their
	// link text.
	Text string

	// Line is the 1-based line where the sentence starts.
	Line int
}

// LinkRef is a Markdown inline link.
type LinkRef struct {
	Text   string
	URL    string
	Line   int
	Column int
}

// Document is the immutable aggregate produced by Build.
// It is constructed once per lint invocation and shared read-only by all
// linters operating on the same file.
type Document struct {
	Lines       []string
	Headings    []Heading
	Sentences   []Sentence
	Links       []LinkRef
	CodeRegions []CodeRegion
}

// LineCount returns the number of physical lines.
func (d *Document) LineCount() int {
	return len(d.Lines)
}

// Line returns the content of a 1-based line number, or "" if out of range.
func (d *Document) Line(n int) string {
	if n < 1 || n > len(d.Lines) {
		return ""
	}
	return d.Lines[n-1]
}

// InCodeRegion reports whether the 1-based line is inside a fenced code block.
func (d *Document) InCodeRegion(line int) bool {
	return InRegions(d.CodeRegions, line)
}
