package diataxis

import (
	"fmt"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
)

// HeadingHierarchyRule checks that heading levels never skip forward by
// more than one.
type HeadingHierarchyRule struct {
	lint.BaseRule
}

// NewHeadingHierarchyRule creates a new heading hierarchy rule.
func NewHeadingHierarchyRule() *HeadingHierarchyRule {
	return &HeadingHierarchyRule{
		BaseRule: lint.NewBaseRule(
			"DX003",
			"heading-hierarchy",
			"Heading levels should only increment by one level at a time",
			[]string{"diataxis", "structure", "headings"},
			config.SeverityWarning,
		),
	}
}

// Apply flags forward level skips. Decreasing levels close a subsection
// and never trigger.
func (r *HeadingHierarchyRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var issues []lint.Issue
	prevLevel := 0

	for _, h := range ctx.Doc.Headings {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}

		// The first heading can be any level.
		if prevLevel > 0 && h.Level > prevLevel+1 {
			issue := lint.NewIssue(r.ID(), h.Line,
				fmt.Sprintf("Heading level jumped from H%d to H%d", prevLevel, h.Level)).
				WithSeverity(config.SeverityWarning).
				WithSuggestion(fmt.Sprintf("Use H%d instead", prevLevel+1)).
				Build()
			issues = append(issues, issue)
		}

		prevLevel = h.Level
	}

	return issues, nil
}
