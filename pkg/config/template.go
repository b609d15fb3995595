package config

import (
	"fmt"
	"sort"
	"strings"
)

// RuleInfo contains rule metadata for template generation.
type RuleInfo struct {
	ID          string
	Name        string
	Description string
	Severity    Severity
	Tags        []string
}

// RuleInfoProvider is a function that returns rule information.
// This allows decoupling from the lint package to avoid circular imports.
type RuleInfoProvider func() []RuleInfo

// DefaultRuleInfoProvider is set by the lint package during init.
//
//nolint:gochecknoglobals // Intentional extension point for rule info.
var DefaultRuleInfoProvider RuleInfoProvider

// TemplateOptions controls configuration template generation.
type TemplateOptions struct {
	// Full includes every rule with its documentation.
	// If false, generates a minimal starter template.
	Full bool
}

// GenerateTemplate creates a YAML configuration file template.
func GenerateTemplate(opts TemplateOptions) ([]byte, error) {
	var sb strings.Builder

	sb.WriteString("# doclint configuration\n")
	sb.WriteString("# See: https://github.com/yaklabco/doclint\n\n")
	sb.WriteString("severity_default: warning\n\n")
	sb.WriteString("linters:\n")
	sb.WriteString("  diataxis:\n    enabled: true\n")
	sb.WriteString("  google-style:\n    enabled: true\n\n")

	if !opts.Full {
		sb.WriteString("# Per-rule overrides, keyed by rule ID or name:\n")
		sb.WriteString("# rules:\n")
		sb.WriteString("#   sentence-too-long:\n")
		sb.WriteString("#     options:\n")
		sb.WriteString("#       max_words: 30\n")
		sb.WriteString("#   use-contractions:\n")
		sb.WriteString("#     enabled: false\n\n")
		sb.WriteString("# Additive lexicon entries:\n")
		sb.WriteString("# lexicon:\n")
		sb.WriteString("#   forbidden_words:\n")
		sb.WriteString("#     leverage: \"use\"\n")
		sb.WriteString("#   generic_link_text:\n")
		sb.WriteString("#     - \"see more\"\n")
		return []byte(sb.String()), nil
	}

	if DefaultRuleInfoProvider == nil {
		return nil, fmt.Errorf("no rule info provider registered")
	}

	rules := DefaultRuleInfoProvider()
	sort.Slice(rules, func(i, j int) bool { return rules[i].ID < rules[j].ID })

	sb.WriteString("rules:\n")
	for _, info := range rules {
		sb.WriteString(fmt.Sprintf("  # %s\n", info.Description))
		if len(info.Tags) > 0 {
			sb.WriteString(fmt.Sprintf("  # Tags: %s\n", strings.Join(info.Tags, ", ")))
		}
		sb.WriteString(fmt.Sprintf("  %s:\n", info.Name))
		sb.WriteString("    enabled: true\n")
		sb.WriteString(fmt.Sprintf("    severity: %s\n", info.Severity))
	}

	return []byte(sb.String()), nil
}
