package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doclint/pkg/config"
)

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }

func TestResolveRulesDefaults(t *testing.T) {
	rules := []Rule{
		newStubRule("TS001", "stub-one", "test", config.SeverityWarning),
		newStubRule("TS002", "stub-two", "test", config.SeverityError),
	}

	resolved := ResolveRules(rules, config.NewConfig())

	require.Len(t, resolved, 2)
	assert.Equal(t, "TS001", resolved[0].Rule.ID())
	assert.Equal(t, config.SeverityWarning, resolved[0].Severity)
	assert.Equal(t, config.SeverityError, resolved[1].Severity)
}

func TestResolveRulesDisabledByConfig(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{name: "by ID", key: "TS001"},
		{name: "by name", key: "stub-one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.NewConfig()
			cfg.Rules = map[string]config.RuleConfig{
				tt.key: {Enabled: boolPtr(false)},
			}

			rules := []Rule{newStubRule("TS001", "stub-one", "test", config.SeverityWarning)}
			resolved := ResolveRules(rules, cfg)
			assert.Empty(t, resolved)
		})
	}
}

func TestResolveRulesSeverityOverride(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		"stub-one": {Severity: strPtr("error")},
	}

	rules := []Rule{newStubRule("TS001", "stub-one", "test", config.SeverityWarning)}
	resolved := ResolveRules(rules, cfg)

	require.Len(t, resolved, 1)
	assert.Equal(t, config.SeverityError, resolved[0].Severity)
}

func TestResolveRulesInvalidSeverityIgnored(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		"TS001": {Severity: strPtr("catastrophic")},
	}

	rules := []Rule{newStubRule("TS001", "stub-one", "test", config.SeverityWarning)}
	resolved := ResolveRules(rules, cfg)

	require.Len(t, resolved, 1)
	assert.Equal(t, config.SeverityWarning, resolved[0].Severity)
}

func TestResolveRulesCLIOverridesFileConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Rules = map[string]config.RuleConfig{
		"TS001": {Enabled: boolPtr(false)},
	}
	cfg.EnableRules = []string{"stub-one"}

	rules := []Rule{newStubRule("TS001", "stub-one", "test", config.SeverityWarning)}
	resolved := ResolveRules(rules, cfg)
	require.Len(t, resolved, 1)
}

func TestResolveRulesDisableWinsOverEnable(t *testing.T) {
	cfg := config.NewConfig()
	cfg.EnableRules = []string{"TS001"}
	cfg.DisableRules = []string{"stub-one"}

	rules := []Rule{newStubRule("TS001", "stub-one", "test", config.SeverityWarning)}
	resolved := ResolveRules(rules, cfg)
	assert.Empty(t, resolved)
}

func TestResolveRulesNilConfig(t *testing.T) {
	rules := []Rule{newStubRule("TS001", "stub-one", "test", config.SeverityWarning)}
	resolved := ResolveRules(rules, nil)
	require.Len(t, resolved, 1)
	assert.True(t, resolved[0].Enabled)
}
