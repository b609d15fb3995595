package lint

import (
	"context"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/docmodel"
	"github.com/yaklabco/doclint/pkg/lexicon"
)

// RuleContext provides all context needed by a rule to perform linting.
//
// Design note: RuleContext stores context.Context as a field (Ctx) rather
// than passing it as a method parameter. RuleContext is a short-lived
// parameter object created per-rule-invocation, not a long-lived struct,
// which keeps the Rule interface to a single Apply method while still
// allowing cancellation checks via the Cancelled() helper.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Doc is the shared immutable document model.
	Doc *docmodel.Document

	// FilePath is the path of the document being linted, used only for
	// echoing into results.
	FilePath string

	// Config is the resolved configuration.
	Config *config.Config

	// RuleConfig is the rule-specific configuration (may be nil).
	RuleConfig *config.RuleConfig

	// Lexicon holds the injected word tables.
	Lexicon *lexicon.Lexicon
}

// NewRuleContext creates a RuleContext for the given document.
func NewRuleContext(
	ctx context.Context,
	doc *docmodel.Document,
	filePath string,
	cfg *config.Config,
	ruleCfg *config.RuleConfig,
	lex *lexicon.Lexicon,
) *RuleContext {
	if lex == nil {
		lex = lexicon.Default()
	}
	return &RuleContext{
		Ctx:        ctx,
		Doc:        doc,
		FilePath:   filePath,
		Config:     cfg,
		RuleConfig: ruleCfg,
		Lexicon:    lex,
	}
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	if rc.Ctx == nil {
		return false
	}
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}

// Option returns a rule-specific option value, or the default if not set.
func (rc *RuleContext) Option(key string, defaultValue any) any {
	if rc.RuleConfig == nil || rc.RuleConfig.Options == nil {
		return defaultValue
	}
	if v, ok := rc.RuleConfig.Options[key]; ok {
		return v
	}
	return defaultValue
}

// OptionInt returns a rule-specific integer option, or the default.
func (rc *RuleContext) OptionInt(key string, defaultValue int) int {
	v := rc.Option(key, defaultValue)
	switch val := v.(type) {
	case int:
		return val
	case float64:
		return int(val)
	default:
		return defaultValue
	}
}

// OptionString returns a rule-specific string option, or the default.
func (rc *RuleContext) OptionString(key string, defaultValue string) string {
	v := rc.Option(key, defaultValue)
	if s, ok := v.(string); ok {
		return s
	}
	return defaultValue
}

// OptionBool returns a rule-specific boolean option, or the default.
func (rc *RuleContext) OptionBool(key string, defaultValue bool) bool {
	v := rc.Option(key, defaultValue)
	if b, ok := v.(bool); ok {
		return b
	}
	return defaultValue
}
