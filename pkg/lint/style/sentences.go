// Package style implements the prose linter enforcing the house style
// guide: sentence length, tense, vocabulary, heading case, link text, and
// contraction usage.
package style

import (
	"fmt"
	"strings"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
)

// defaultMaxSentenceWords is the word-count threshold beyond which a
// sentence reads as a run-on. Tunable via the max_words rule option.
const defaultMaxSentenceWords = 30

// SentenceLengthRule flags sentences that exceed the word limit.
type SentenceLengthRule struct {
	lint.BaseRule
}

// NewSentenceLengthRule creates a new sentence length rule.
func NewSentenceLengthRule() *SentenceLengthRule {
	return &SentenceLengthRule{
		BaseRule: lint.NewBaseRule(
			"GS001",
			"sentence-too-long",
			"Sentences should stay short enough to follow in one reading",
			[]string{"google-style", "prose"},
			config.SeverityWarning,
		),
	}
}

// Apply emits one issue per sentence over the limit, at the sentence's
// starting line.
func (r *SentenceLengthRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	maxWords := ctx.OptionInt("max_words", defaultMaxSentenceWords)

	var issues []lint.Issue

	for _, s := range ctx.Doc.Sentences {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}

		words := len(strings.Fields(s.Text))
		if words <= maxWords {
			continue
		}

		issue := lint.NewIssue(r.ID(), s.Line,
			fmt.Sprintf("Sentence has %d words (limit %d)", words, maxWords)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion("Break this sentence into shorter ones").
			Build()
		issues = append(issues, issue)
	}

	return issues, nil
}
