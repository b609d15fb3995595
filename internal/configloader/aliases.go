package configloader

import (
	"github.com/yaklabco/doclint/pkg/lint"
)

// Rule keys in config files may be a canonical ID (GS002), a rule name
// (forbidden-word), or a group key naming a whole linter (google-style).
// Group keys expand to every rule the linter carries, letting a config
// disable a linter's rules or drop their severity in one stanza.

// IsGroupKey returns true if the key names a rule group (a linter).
func IsGroupKey(key string) bool {
	return knownLinters[key]
}

// ExpandGroupKey returns the canonical IDs of every rule in the group,
// sorted by ID. Returns nil if the key is not a group.
func ExpandGroupKey(key string) []string {
	if !knownLinters[key] {
		return nil
	}

	rules := lint.DefaultRegistry.RulesByTag(key)
	ids := make([]string, 0, len(rules))
	for _, rule := range rules {
		ids = append(ids, rule.ID())
	}
	return ids
}

// ResolveRuleKey converts a rule ID or name to its canonical rule ID.
// Returns empty string if the key is not a recognized rule.
func ResolveRuleKey(key string) string {
	canonicalID, _, found := lint.DefaultRegistry.Resolve(key)
	if !found {
		return ""
	}
	return canonicalID
}
