package style

import (
	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lexicon"
	"github.com/yaklabco/doclint/pkg/lint"
)

// LinterName is the tag and name of the prose style linter.
const LinterName = "google-style"

// Rules returns fresh instances of every style rule.
func Rules() []lint.Rule {
	return []lint.Rule{
		NewSentenceLengthRule(),
		NewForbiddenWordRule(),
		NewPresentTenseRule(),
		NewHeadingCaseRule(),
		NewMeaningfulLinkTextRule(),
		NewContractionsRule(),
		NewCodeLanguageTagRule(),
	}
}

// NewLinter creates the prose style linter.
func NewLinter(cfg *config.Config, lex *lexicon.Lexicon) *lint.RuleSetLinter {
	return lint.NewRuleSetLinter(LinterName, Rules(), cfg, lex)
}

//nolint:gochecknoinits // Rules register themselves, matching the registry convention
func init() {
	for _, rule := range Rules() {
		lint.DefaultRegistry.Register(rule)
	}
}
