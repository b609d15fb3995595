package diataxis

import (
	"fmt"
	"strings"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/docmodel"
	"github.com/yaklabco/doclint/pkg/lexicon"
	"github.com/yaklabco/doclint/pkg/lint"
)

// RequiredSectionsRule checks that a document carries the section headings
// its dominant type calls for.
type RequiredSectionsRule struct {
	lint.BaseRule
}

// NewRequiredSectionsRule creates a new required sections rule.
func NewRequiredSectionsRule() *RequiredSectionsRule {
	return &RequiredSectionsRule{
		BaseRule: lint.NewBaseRule(
			"DX002",
			"missing-required-section",
			"A document should contain the section headings required by its documentation type",
			[]string{"diataxis", "structure"},
			config.SeverityWarning,
		),
	}
}

// Apply determines the dominant type and emits one issue per required
// section the document lacks. A document with no discernible type yields
// nothing: ambiguity resolves to zero confidence, not failure.
func (r *RequiredSectionsRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	c := Classify(ctx.Doc, ctx.Lexicon)
	if c.Dominant == "" {
		return nil, nil
	}

	required := ctx.Lexicon.RequiredSections[c.Dominant]
	if len(required) == 0 {
		return nil, nil
	}

	var issues []lint.Issue

	for _, section := range required {
		if hasSection(ctx.Doc, ctx.Lexicon, section) {
			continue
		}

		issue := lint.NewIssue(r.ID(), 1,
			fmt.Sprintf("%s document is missing a %q section",
				capitalize(string(c.Dominant)), section)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion(fmt.Sprintf("Add a %q heading", capitalize(section))).
			Build()
		issues = append(issues, issue)
	}

	return issues, nil
}

// hasSection reports whether any heading satisfies the required section,
// either by the section name itself or one of its aliases.
func hasSection(doc *docmodel.Document, lex *lexicon.Lexicon, section string) bool {
	names := lex.SectionAliases[section]
	if len(names) == 0 {
		names = []string{section}
	}

	for _, h := range doc.Headings {
		text := strings.ToLower(h.Text)
		for _, name := range names {
			if strings.Contains(text, name) {
				return true
			}
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
