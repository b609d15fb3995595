package style

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/docmodel"
	"github.com/yaklabco/doclint/pkg/lint"
)

// ForbiddenWordRule flags discouraged words and phrases in prose.
type ForbiddenWordRule struct {
	lint.BaseRule
}

// NewForbiddenWordRule creates a new forbidden word rule.
func NewForbiddenWordRule() *ForbiddenWordRule {
	return &ForbiddenWordRule{
		BaseRule: lint.NewBaseRule(
			"GS002",
			"forbidden-word",
			"Prose should avoid filler and condescending words such as \"obviously\" and \"simply\"",
			[]string{"google-style", "prose", "vocabulary"},
			config.SeverityWarning,
		),
	}
}

// Apply scans every sentence for lexicon hits. Sentences are extracted
// outside code regions and links, so fenced samples never fire.
func (r *ForbiddenWordRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	// Sort for deterministic issue order on ties.
	words := make([]string, 0, len(ctx.Lexicon.ForbiddenWords))
	for word := range ctx.Lexicon.ForbiddenWords {
		words = append(words, word)
	}
	sort.Strings(words)

	var issues []lint.Issue

	for _, word := range words {
		pattern, err := wordPattern(word)
		if err != nil {
			return nil, fmt.Errorf("compile forbidden word %q: %w", word, err)
		}

		for _, s := range ctx.Doc.Sentences {
			if ctx.Cancelled() {
				return issues, ctx.Ctx.Err()
			}

			for range pattern.FindAllStringIndex(s.Text, -1) {
				issues = append(issues, r.buildIssue(ctx, word, s))
			}
		}
	}

	return issues, nil
}

func (r *ForbiddenWordRule) buildIssue(ctx *lint.RuleContext, word string, s docmodel.Sentence) lint.Issue {
	suggestion := "Remove it, or state the difficulty honestly"
	if replacement := ctx.Lexicon.ForbiddenWords[word]; replacement != "" {
		suggestion = fmt.Sprintf("Consider %q instead", replacement)
	}

	builder := lint.NewIssue(r.ID(), s.Line,
		fmt.Sprintf("Avoid %q in documentation prose", word)).
		WithSeverity(config.SeverityWarning).
		WithSuggestion(suggestion)

	if col := columnOf(ctx.Doc, s.Line, word); col > 0 {
		builder = builder.At(col)
	}

	return builder.Build()
}

// wordPattern compiles a case-insensitive whole-word pattern for a word
// or phrase, so "just" does not hit inside "adjust".
func wordPattern(word string) (*regexp.Regexp, error) {
	return regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// columnOf locates the first case-insensitive occurrence of text on the
// given physical line, returning a 1-based column or 0 when the match
// starts on a continuation line.
func columnOf(doc *docmodel.Document, line int, text string) int {
	idx := strings.Index(strings.ToLower(doc.Line(line)), strings.ToLower(text))
	if idx < 0 {
		return 0
	}
	return idx + 1
}
