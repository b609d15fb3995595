package lint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/doclint/pkg/config"
)

func TestRuleContextOptions(t *testing.T) {
	ruleCfg := &config.RuleConfig{
		Options: map[string]any{
			"max_words": 40,
			"ratio":     float64(25), // YAML numbers can decode as float64
			"label":     "custom",
			"flag":      true,
		},
	}
	rc := NewRuleContext(context.Background(), buildDoc(""), "doc.md", nil, ruleCfg, nil)

	assert.Equal(t, 40, rc.OptionInt("max_words", 30))
	assert.Equal(t, 25, rc.OptionInt("ratio", 30))
	assert.Equal(t, 30, rc.OptionInt("missing", 30))
	assert.Equal(t, "custom", rc.OptionString("label", "default"))
	assert.True(t, rc.OptionBool("flag", false))
	assert.False(t, rc.OptionBool("missing", false))
}

func TestRuleContextOptionsNilConfig(t *testing.T) {
	rc := NewRuleContext(context.Background(), buildDoc(""), "doc.md", nil, nil, nil)
	assert.Equal(t, 30, rc.OptionInt("max_words", 30))
	assert.NotNil(t, rc.Lexicon, "lexicon defaults when not injected")
}

func TestRuleContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	rc := NewRuleContext(ctx, buildDoc(""), "doc.md", nil, nil, nil)

	assert.False(t, rc.Cancelled())
	cancel()
	assert.True(t, rc.Cancelled())
}

func TestIssueBuilder(t *testing.T) {
	issue := NewIssue("GS005", 12, "link text is generic").
		At(7).
		WithSeverity(config.SeverityError).
		WithSuggestion("Describe the link target").
		Build()

	assert.Equal(t, Issue{
		RuleID:     "GS005",
		Severity:   config.SeverityError,
		Line:       12,
		Column:     7,
		Message:    "link text is generic",
		Suggestion: "Describe the link target",
	}, issue)
}
