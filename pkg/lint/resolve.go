package lint

import "github.com/yaklabco/doclint/pkg/config"

// ResolvedRule pairs a Rule with its resolved configuration.
type ResolvedRule struct {
	// Rule is the underlying rule implementation.
	Rule Rule

	// Enabled indicates whether the rule should be run.
	Enabled bool

	// Severity is the resolved severity for issues from this rule.
	Severity config.Severity

	// Config is the rule-specific configuration (may be nil).
	Config *config.RuleConfig
}

// ResolveRules determines which rules to run for a rule set based on the
// registry and config. Returns only enabled rules with their resolved
// configuration, in stable ID order.
func ResolveRules(rules []Rule, cfg *config.Config) []ResolvedRule {
	var resolved []ResolvedRule

	for _, rule := range rules {
		rr := resolveRule(rule, cfg)
		if rr.Enabled {
			resolved = append(resolved, rr)
		}
	}

	return resolved
}

// resolveRule resolves the configuration for a single rule.
// Rules may be addressed by ID or by name in every config surface.
func resolveRule(rule Rule, cfg *config.Config) ResolvedRule {
	rr := ResolvedRule{
		Rule:     rule,
		Enabled:  rule.DefaultEnabled(),
		Severity: rule.DefaultSeverity(),
	}

	if cfg == nil {
		return rr
	}

	matches := func(key string) bool {
		return key == rule.ID() || key == rule.Name()
	}

	// Rule-specific config, keyed by ID or name.
	ruleCfg, ok := cfg.Rules[rule.ID()]
	if !ok {
		ruleCfg, ok = cfg.Rules[rule.Name()]
	}
	if ok {
		rr.Config = &ruleCfg

		if ruleCfg.Enabled != nil {
			rr.Enabled = *ruleCfg.Enabled
		}
		if ruleCfg.Severity != nil {
			if s := config.Severity(*ruleCfg.Severity); s.IsValid() {
				rr.Severity = s
			}
		}
	}

	// Explicit CLI enable/disable beats file config, disable winning
	// over enable.
	for _, key := range cfg.EnableRules {
		if matches(key) {
			rr.Enabled = true
			break
		}
	}
	for _, key := range cfg.DisableRules {
		if matches(key) {
			rr.Enabled = false
			break
		}
	}

	return rr
}
