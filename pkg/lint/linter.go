package lint

import (
	"context"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/docmodel"
	"github.com/yaklabco/doclint/pkg/lexicon"
)

// Linter is the capability every document linter exposes.
// Implementations must never fail on document content: syntactically odd
// Markdown yields sparse results, not errors.
type Linter interface {
	// Name returns the stable linter name (e.g., "diataxis").
	Name() string

	// Lint analyzes content and returns a Result. The filePath is only
	// echoed into the result, never read from disk.
	Lint(ctx context.Context, filePath, content string) Result
}

// DocumentLinter is implemented by linters that can reuse an
// already-built document model, so the engine builds the model once and
// shares it across linters.
type DocumentLinter interface {
	Linter

	// LintDocument analyzes a pre-built document model.
	LintDocument(ctx context.Context, filePath string, doc *docmodel.Document) Result
}

// RuleSetLinter runs a fixed set of registered rules over a document.
// Both built-in linters are RuleSetLinters built from the default
// registry by tag.
// RuleSetLinter carries no per-file state, so one instance may lint many
// files concurrently.
type RuleSetLinter struct {
	name  string
	rules []Rule
	cfg   *config.Config
	lex   *lexicon.Lexicon
}

// Compile-time interface check.
var _ DocumentLinter = (*RuleSetLinter)(nil)

// NewRuleSetLinter creates a linter from an explicit rule list.
func NewRuleSetLinter(name string, rules []Rule, cfg *config.Config, lex *lexicon.Lexicon) *RuleSetLinter {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	if lex == nil {
		lex = lexicon.Default()
	}
	return &RuleSetLinter{
		name:  name,
		rules: rules,
		cfg:   cfg,
		lex:   lex,
	}
}

// NewTaggedLinter creates a linter from all registry rules carrying the
// given tag. By convention the tag equals the linter name.
func NewTaggedLinter(name string, registry *Registry, cfg *config.Config, lex *lexicon.Lexicon) *RuleSetLinter {
	if registry == nil {
		registry = DefaultRegistry
	}
	return NewRuleSetLinter(name, registry.RulesByTag(name), cfg, lex)
}

// Name returns the linter name.
func (l *RuleSetLinter) Name() string {
	return l.name
}

// Lint builds the document model and analyzes it.
func (l *RuleSetLinter) Lint(ctx context.Context, filePath, content string) Result {
	return l.LintDocument(ctx, filePath, docmodel.Build(content))
}

// LintDocument runs every enabled rule over the shared document model.
func (l *RuleSetLinter) LintDocument(ctx context.Context, filePath string, doc *docmodel.Document) Result {
	result, _ := l.lintDocument(ctx, filePath, doc)
	return result
}

// LintDocumentReport is LintDocument plus internal rule failures, keyed
// by rule ID. Document content never produces an entry here.
func (l *RuleSetLinter) LintDocumentReport(
	ctx context.Context,
	filePath string,
	doc *docmodel.Document,
) (Result, map[string]error) {
	return l.lintDocument(ctx, filePath, doc)
}

func (l *RuleSetLinter) lintDocument(
	ctx context.Context,
	filePath string,
	doc *docmodel.Document,
) (Result, map[string]error) {
	var issues []Issue
	var ruleErrors map[string]error

	for _, rr := range ResolveRules(l.rules, l.cfg) {
		ruleCtx := NewRuleContext(ctx, doc, filePath, l.cfg, rr.Config, l.lex)

		ruleIssues, err := rr.Rule.Apply(ruleCtx)
		if err != nil {
			if ruleErrors == nil {
				ruleErrors = make(map[string]error)
			}
			ruleErrors[rr.Rule.ID()] = err
			continue
		}

		for i := range ruleIssues {
			// Apply resolved severity and fill the rule name for
			// human-readable output.
			ruleIssues[i].Severity = rr.Severity
			if ruleIssues[i].Rule == "" {
				ruleIssues[i].Rule = rr.Rule.Name()
			}
		}

		issues = append(issues, ruleIssues...)
	}

	return newResult(filePath, l.name, issues), ruleErrors
}
