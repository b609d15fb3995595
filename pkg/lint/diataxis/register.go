package diataxis

import (
	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lexicon"
	"github.com/yaklabco/doclint/pkg/lint"
)

// LinterName is the tag and name of the structural linter.
const LinterName = "diataxis"

// Rules returns fresh instances of every diataxis rule.
func Rules() []lint.Rule {
	return []lint.Rule{
		NewMixedTypeRule(),
		NewRequiredSectionsRule(),
		NewHeadingHierarchyRule(),
	}
}

// NewLinter creates the structural linter.
func NewLinter(cfg *config.Config, lex *lexicon.Lexicon) *lint.RuleSetLinter {
	return lint.NewRuleSetLinter(LinterName, Rules(), cfg, lex)
}

//nolint:gochecknoinits // Rules register themselves, matching the registry convention
func init() {
	for _, rule := range Rules() {
		lint.DefaultRegistry.Register(rule)
	}
}
