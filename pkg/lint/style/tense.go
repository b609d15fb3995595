package style

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
)

// futureTensePattern matches "will" followed by a base verb. An adverb
// may sit between them ("will automatically retry").
var futureTensePattern = regexp.MustCompile(`(?i)\bwill\s+(?:[a-z]+ly\s+)?([a-z]+)`)

// PresentTenseRule suggests present tense where prose describes behavior
// in the future tense.
type PresentTenseRule struct {
	lint.BaseRule
}

// NewPresentTenseRule creates a new present tense rule.
func NewPresentTenseRule() *PresentTenseRule {
	return &PresentTenseRule{
		BaseRule: lint.NewBaseRule(
			"GS003",
			"use-present-tense",
			"Documentation should describe behavior in the present tense",
			[]string{"google-style", "prose", "tense"},
			config.SeverityWarning,
		),
	}
}

// Apply flags future-tense constructions. A sentence already in present
// tense contains no "will <verb>" phrase and never triggers.
func (r *PresentTenseRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var issues []lint.Issue

	for _, s := range ctx.Doc.Sentences {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}

		m := futureTensePattern.FindStringSubmatch(s.Text)
		if m == nil {
			continue
		}

		verb := strings.ToLower(m[1])
		phrase := strings.ToLower(strings.Join(strings.Fields(m[0]), " "))

		builder := lint.NewIssue(r.ID(), s.Line,
			fmt.Sprintf("Use present tense instead of %q", phrase)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion(fmt.Sprintf("Write %q as %q", phrase, presentForm(verb)))

		if col := columnOf(ctx.Doc, s.Line, m[0]); col > 0 {
			builder = builder.At(col)
		}

		issues = append(issues, builder.Build())
	}

	return issues, nil
}

// presentForm returns a naive third-person present form of a base verb.
func presentForm(verb string) string {
	switch verb {
	case "be":
		return "is"
	case "have":
		return "has"
	case "not":
		return "does not"
	}
	if strings.HasSuffix(verb, "s") || strings.HasSuffix(verb, "sh") ||
		strings.HasSuffix(verb, "ch") || strings.HasSuffix(verb, "x") {
		return verb + "es"
	}
	return verb + "s"
}
