package docmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeadings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Heading
	}{
		{
			name:  "simple headings",
			input: "# Title\n\nprose\n\n## Section\n",
			want: []Heading{
				{Level: 1, Text: "Title", Line: 1},
				{Level: 2, Text: "Section", Line: 5},
			},
		},
		{
			name:  "all levels",
			input: "# a\n## b\n### c\n#### d\n##### e\n###### f\n",
			want: []Heading{
				{Level: 1, Text: "a", Line: 1},
				{Level: 2, Text: "b", Line: 2},
				{Level: 3, Text: "c", Line: 3},
				{Level: 4, Text: "d", Line: 4},
				{Level: 5, Text: "e", Line: 5},
				{Level: 6, Text: "f", Line: 6},
			},
		},
		{
			name:  "closed ATX style",
			input: "## Section ##\n",
			want:  []Heading{{Level: 2, Text: "Section", Line: 1}},
		},
		{
			name:  "seven hashes is not a heading",
			input: "####### too deep\n",
			want:  nil,
		},
		{
			name:  "hash without space is not a heading",
			input: "#hashtag\n",
			want:  nil,
		},
		{
			name:  "heading inside code fence is ignored",
			input: "```\n# not a heading\n```\n# real heading\n",
			want:  []Heading{{Level: 1, Text: "real heading", Line: 4}},
		},
		{
			name:  "setext headings are not extracted",
			input: "Title\n=====\n",
			want:  nil,
		},
		{
			name:  "empty input",
			input: "",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(tt.input)
			assert.Equal(t, tt.want, doc.Headings)
		})
	}
}

func TestBuildLinks(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []LinkRef
	}{
		{
			name:  "simple link",
			input: "See [API documentation](https://example.com/api) for details.\n",
			want: []LinkRef{
				{Text: "API documentation", URL: "https://example.com/api", Line: 1, Column: 5},
			},
		},
		{
			name:  "two links on one line",
			input: "[a](x) and [b](y)\n",
			want: []LinkRef{
				{Text: "a", URL: "x", Line: 1, Column: 1},
				{Text: "b", URL: "y", Line: 1, Column: 12},
			},
		},
		{
			name:  "image is not a link",
			input: "![diagram](diagram.png)\n",
			want:  nil,
		},
		{
			name:  "link inside code fence is ignored",
			input: "```\n[click here](url)\n```\n",
			want:  nil,
		},
		{
			name:  "link with title",
			input: `[docs](https://example.com "the docs")` + "\n",
			want: []LinkRef{
				{Text: "docs", URL: "https://example.com", Line: 1, Column: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(tt.input)
			assert.Equal(t, tt.want, doc.Links)
		})
	}
}

func TestBuildSentences(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantTexts []string
		wantLines []int
	}{
		{
			name:      "two sentences on one line",
			input:     "This is the first sentence. This is the second sentence.\n",
			wantTexts: []string{"This is the first sentence.", "This is the second sentence."},
			wantLines: []int{1, 1},
		},
		{
			name:      "sentence spanning wrapped lines",
			input:     "This sentence wraps across\ntwo physical lines.\n",
			wantTexts: []string{"This sentence wraps across two physical lines."},
			wantLines: []int{1},
		},
		{
			name:      "second sentence starts on second line",
			input:     "The first sentence ends here.\nThe second one starts on line two.\n",
			wantTexts: []string{"The first sentence ends here.", "The second one starts on line two."},
			wantLines: []int{1, 2},
		},
		{
			name:      "abbreviation does not split",
			input:     "Use e.g. the default settings for most cases.\n",
			wantTexts: []string{"Use e.g. the default settings for most cases."},
			wantLines: []int{1},
		},
		{
			name:      "headings and lists excluded",
			input:     "# Title\n\nReal prose here it goes.\n\n- list item one\n- list item two\n",
			wantTexts: []string{"Real prose here it goes."},
			wantLines: []int{3},
		},
		{
			name:      "code fence excluded",
			input:     "```\nNot a sentence. Really not.\n```\nActual prose sentence here.\n",
			wantTexts: []string{"Actual prose sentence here."},
			wantLines: []int{4},
		},
		{
			name:      "inline link reduced to text",
			input:     "Read the [API documentation](https://example.com/api) before starting.\n",
			wantTexts: []string{"Read the API documentation before starting."},
			wantLines: []int{1},
		},
		{
			name:      "link-only line excluded",
			input:     "[API documentation](https://example.com)\n",
			wantTexts: nil,
			wantLines: nil,
		},
		{
			name:      "question and exclamation terminate",
			input:     "Does this work as expected? It does work as expected!\n",
			wantTexts: []string{"Does this work as expected?", "It does work as expected!"},
			wantLines: []int{1, 1},
		},
		{
			name:      "trailing text without punctuation",
			input:     "A final fragment with no end\n",
			wantTexts: []string{"A final fragment with no end"},
			wantLines: []int{1},
		},
		{
			name:      "empty input",
			input:     "",
			wantTexts: nil,
			wantLines: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := Build(tt.input)

			require.Len(t, doc.Sentences, len(tt.wantTexts))
			for i, s := range doc.Sentences {
				assert.Equal(t, tt.wantTexts[i], s.Text)
				assert.Equal(t, tt.wantLines[i], s.Line)
			}
		})
	}
}

func TestBuildIsPure(t *testing.T) {
	input := "# Title\n\nSome prose here it is. More prose follows it.\n\n```\ncode\n```\n"

	first := Build(input)
	second := Build(input)

	assert.Equal(t, first, second)
}

func TestBuildMalformedInput(t *testing.T) {
	// Pathological inputs must produce sparse extraction, never a panic.
	inputs := []string{
		"",
		"\n\n\n",
		"```",
		"```\n```\n```",
		"[unclosed link(\n",
		"######",
		"...\n",
		"\r\n\r\n",
	}

	for _, input := range inputs {
		doc := Build(input)
		assert.NotNil(t, doc)
	}
}

func TestDocumentAccessors(t *testing.T) {
	doc := Build("one\n```\ntwo\n```\n")

	assert.Equal(t, 4, doc.LineCount())
	assert.Equal(t, "one", doc.Line(1))
	assert.Equal(t, "", doc.Line(0))
	assert.Equal(t, "", doc.Line(5))
	assert.False(t, doc.InCodeRegion(1))
	assert.True(t, doc.InCodeRegion(3))
}
