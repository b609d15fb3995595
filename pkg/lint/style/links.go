package style

import (
	"fmt"
	"strings"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
)

// MeaningfulLinkTextRule flags link text that fails to name its target.
type MeaningfulLinkTextRule struct {
	lint.BaseRule
}

// NewMeaningfulLinkTextRule creates a new meaningful link text rule.
func NewMeaningfulLinkTextRule() *MeaningfulLinkTextRule {
	return &MeaningfulLinkTextRule{
		BaseRule: lint.NewBaseRule(
			"GS005",
			"meaningful-link-text",
			"Link text should name its target instead of generic phrases like \"click here\"",
			[]string{"google-style", "links"},
			config.SeverityError,
		),
	}
}

// Apply checks every extracted link against the generic-phrase lexicon.
// Links are extracted outside code regions, so fenced samples never fire.
func (r *MeaningfulLinkTextRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var issues []lint.Issue

	for _, link := range ctx.Doc.Links {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}

		text := normalizeLinkText(link.Text)
		if !isGeneric(text, ctx.Lexicon.GenericLinkText) {
			continue
		}

		issue := lint.NewIssue(r.ID(), link.Line,
			fmt.Sprintf("Link text %q does not describe its target", link.Text)).
			At(link.Column).
			WithSeverity(config.SeverityError).
			WithSuggestion("Name the destination, for example \"API documentation\"").
			Build()
		issues = append(issues, issue)
	}

	return issues, nil
}

// normalizeLinkText lowercases and strips surrounding punctuation so
// "Click here!" matches the "click here" lexicon entry.
func normalizeLinkText(text string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(text)), `"'.,:;!?`)
}

// isGeneric reports whether the normalized text equals a lexicon phrase.
// Matching is exact: "API documentation" must not hit "documentation".
func isGeneric(text string, phrases []string) bool {
	if text == "" {
		return true // empty link text never names a target
	}
	for _, phrase := range phrases {
		if text == phrase {
			return true
		}
	}
	return false
}
