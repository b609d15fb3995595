package style

import (
	"fmt"
	"sort"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
)

// ContractionsRule suggests contractions for expanded forms, keeping the
// documentation's tone conversational.
type ContractionsRule struct {
	lint.BaseRule
}

// NewContractionsRule creates a new contractions rule.
func NewContractionsRule() *ContractionsRule {
	return &ContractionsRule{
		BaseRule: lint.NewBaseRule(
			"GS006",
			"use-contractions",
			"Prose reads more naturally with contractions such as \"don't\" over \"do not\"",
			[]string{"google-style", "prose", "tone"},
			config.SeverityInfo,
		),
	}
}

// Apply scans sentences for expanded forms. An already-contracted form
// contains an apostrophe and never matches an expansion.
func (r *ContractionsRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	expansions := make([]string, 0, len(ctx.Lexicon.Contractions))
	for expansion := range ctx.Lexicon.Contractions {
		expansions = append(expansions, expansion)
	}
	sort.Strings(expansions)

	var issues []lint.Issue

	for _, expansion := range expansions {
		pattern, err := wordPattern(expansion)
		if err != nil {
			return nil, fmt.Errorf("compile expansion %q: %w", expansion, err)
		}
		contraction := ctx.Lexicon.Contractions[expansion]

		for _, s := range ctx.Doc.Sentences {
			if ctx.Cancelled() {
				return issues, ctx.Ctx.Err()
			}

			if !pattern.MatchString(s.Text) {
				continue
			}

			builder := lint.NewIssue(r.ID(), s.Line,
				fmt.Sprintf("Consider the contraction %q instead of %q", contraction, expansion)).
				WithSeverity(config.SeverityInfo).
				WithSuggestion(fmt.Sprintf("Replace %q with %q", expansion, contraction))

			if col := columnOf(ctx.Doc, s.Line, expansion); col > 0 {
				builder = builder.At(col)
			}

			issues = append(issues, builder.Build())
		}
	}

	return issues, nil
}
