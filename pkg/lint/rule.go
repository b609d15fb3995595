package lint

import "github.com/yaklabco/doclint/pkg/config"

// Rule defines the interface that all lint rules must implement.
type Rule interface {
	// ID returns the unique identifier for this rule (e.g., "DX001").
	ID() string

	// Name returns the stable human-readable name of the rule
	// (e.g., "heading-hierarchy").
	Name() string

	// Description returns a detailed description of what the rule checks.
	Description() string

	// DefaultEnabled returns whether the rule is enabled by default.
	DefaultEnabled() bool

	// DefaultSeverity returns the default severity for this rule.
	DefaultSeverity() config.Severity

	// Tags returns categorization tags for this rule. The first tag is
	// the owning linter ("diataxis" or "google-style").
	Tags() []string

	// Apply executes the rule against the given context and returns
	// issues.
	//
	// Rules must:
	//   - Return one issue per violation found.
	//   - Skip any match whose line falls inside a code region.
	//   - Return error only for internal failures, never for document
	//     content.
	Apply(ctx *RuleContext) ([]Issue, error)
}
