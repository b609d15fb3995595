package diataxis

import (
	"fmt"
	"strings"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
)

// MixedTypeRule flags documents that blend two or more documentation
// types instead of committing to one.
type MixedTypeRule struct {
	lint.BaseRule
}

// NewMixedTypeRule creates a new mixed document type rule.
func NewMixedTypeRule() *MixedTypeRule {
	return &MixedTypeRule{
		BaseRule: lint.NewBaseRule(
			"DX001",
			"mixed-document-type",
			"A document should commit to one documentation type rather than mixing tutorial, how-to, reference, and explanation content",
			[]string{"diataxis", "structure"},
			config.SeverityWarning,
		),
	}
}

// Apply scores type signals and flags the document when two or more types
// compete above the threshold.
func (r *MixedTypeRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	c := Classify(ctx.Doc, ctx.Lexicon)
	if !c.Mixed() {
		return nil, nil
	}

	names := make([]string, 0, len(c.Competing))
	for _, dt := range c.Competing {
		names = append(names, string(dt))
	}

	line := 1
	if len(ctx.Doc.Headings) > 0 {
		line = ctx.Doc.Headings[0].Line
	}

	issue := lint.NewIssue(r.ID(), line,
		fmt.Sprintf("Document mixes %s content", strings.Join(names, " and "))).
		WithSeverity(config.SeverityWarning).
		WithSuggestion("Split the page so each documentation type stands alone").
		Build()

	return []lint.Issue{issue}, nil
}
