package configloader

import "github.com/yaklabco/doclint/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Maps: deep merge, with override's values taking precedence
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	// Start with a shallow copy of base
	result := *base

	// Scalars: override overwrites base if set (non-zero value)
	if override.SeverityDefault != "" {
		result.SeverityDefault = override.SeverityDefault
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.RuleFormat != "" {
		result.RuleFormat = override.RuleFormat
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Strict is a plain bool, so only "true" in the override is detectable.
	// A config file cannot unset a CLI --strict.
	if override.Strict {
		result.Strict = override.Strict
	}

	// Maps: deep merge
	result.Linters = mergeLinters(base.Linters, override.Linters)
	result.Rules = mergeRules(base.Rules, override.Rules)
	result.Lexicon = mergeLexicon(base.Lexicon, override.Lexicon)

	// Slices: override replaces base entirely if non-nil
	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}
	if override.EnableRules != nil {
		result.EnableRules = override.EnableRules
	}
	if override.DisableRules != nil {
		result.DisableRules = override.DisableRules
	}

	return &result
}

// mergeLinters performs deep merge of linter configurations.
func mergeLinters(base, override map[string]config.LinterConfig) map[string]config.LinterConfig {
	if base == nil && override == nil {
		return nil
	}

	result := make(map[string]config.LinterConfig, len(base)+len(override))
	for key, val := range base {
		result[key] = val
	}
	for key, val := range override {
		if existing, ok := result[key]; ok {
			if val.Enabled != nil {
				existing.Enabled = val.Enabled
			}
			result[key] = existing
		} else {
			result[key] = val
		}
	}
	return result
}

// mergeRules performs deep merge of rule configurations.
// Both maps are iterated, with override's values taking precedence.
func mergeRules(base, override map[string]config.RuleConfig) map[string]config.RuleConfig {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		result := make(map[string]config.RuleConfig, len(override))
		for key, val := range override {
			result[key] = val
		}
		return result
	}
	if override == nil {
		result := make(map[string]config.RuleConfig, len(base))
		for key, val := range base {
			result[key] = val
		}
		return result
	}

	result := make(map[string]config.RuleConfig, len(base)+len(override))

	for key, val := range base {
		result[key] = val
	}

	for key, val := range override {
		if existing, ok := result[key]; ok {
			result[key] = mergeRuleConfig(existing, val)
		} else {
			result[key] = val
		}
	}

	return result
}

// mergeRuleConfig merges individual rule configurations.
// override's values take precedence over base's values.
func mergeRuleConfig(base, override config.RuleConfig) config.RuleConfig {
	result := base

	if override.Enabled != nil {
		result.Enabled = override.Enabled
	}
	if override.Severity != nil {
		result.Severity = override.Severity
	}

	// Options: deep merge
	if override.Options != nil {
		if result.Options == nil {
			result.Options = make(map[string]any)
		}
		for key, val := range override.Options {
			result.Options[key] = val
		}
	}

	return result
}

// mergeLexicon merges lexicon extensions. Word maps deep-merge and
// phrase lists append, so every config layer can add entries.
func mergeLexicon(base, override config.LexiconConfig) config.LexiconConfig {
	result := base

	if override.ForbiddenWords != nil {
		if result.ForbiddenWords == nil {
			result.ForbiddenWords = make(map[string]string, len(override.ForbiddenWords))
		} else {
			merged := make(map[string]string, len(result.ForbiddenWords)+len(override.ForbiddenWords))
			for word, suggestion := range result.ForbiddenWords {
				merged[word] = suggestion
			}
			result.ForbiddenWords = merged
		}
		for word, suggestion := range override.ForbiddenWords {
			result.ForbiddenWords[word] = suggestion
		}
	}

	if len(override.GenericLinkText) > 0 {
		combined := make([]string, 0, len(result.GenericLinkText)+len(override.GenericLinkText))
		combined = append(combined, result.GenericLinkText...)
		combined = append(combined, override.GenericLinkText...)
		result.GenericLinkText = combined
	}

	return result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
