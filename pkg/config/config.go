// Package config defines core configuration types for doclint.
// These types are pure data structures with no dependency on any
// particular config loader.
package config

// Severity represents the severity level of a lint issue.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// IsValid returns true if the severity is one of the known levels.
func (s Severity) IsValid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	default:
		return false
	}
}

// RuleConfig holds per-rule configuration options.
type RuleConfig struct {
	Enabled  *bool          `yaml:"enabled"`
	Severity *string        `yaml:"severity"`
	Options  map[string]any `yaml:"options"`
}

// LinterConfig holds per-linter configuration.
type LinterConfig struct {
	Enabled *bool `yaml:"enabled"`
}

// LexiconConfig extends the built-in lexicons from configuration.
// Entries are additive; the built-in tables are never replaced.
type LexiconConfig struct {
	// ForbiddenWords adds entries to the forbidden-word lexicon.
	// Keys are the words, values are suggested rephrasings (may be empty).
	ForbiddenWords map[string]string `yaml:"forbidden_words"`

	// GenericLinkText adds phrases to the generic link-text lexicon.
	GenericLinkText []string `yaml:"generic_link_text"`
}

// OutputFormat specifies the output format for issues.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSARIF   OutputFormat = "sarif"
	FormatSummary OutputFormat = "summary"
)

// IsValid returns true if the output format is supported.
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatJSON, FormatSARIF, FormatSummary:
		return true
	default:
		return false
	}
}

// RuleFormat controls how rule identifiers appear in output.
type RuleFormat string

const (
	RuleFormatName     RuleFormat = "name"     // "sentence-too-long"
	RuleFormatID       RuleFormat = "id"       // "DX001"
	RuleFormatCombined RuleFormat = "combined" // "DX001/sentence-too-long"
)

// Config is the root configuration structure for doclint.
type Config struct {
	// SeverityDefault is the default severity for rules that don't specify one.
	SeverityDefault string `yaml:"severity_default"`

	// Linters contains per-linter configuration keyed by linter name
	// ("diataxis", "google-style").
	Linters map[string]LinterConfig `yaml:"linters"`

	// Rules contains per-rule configuration keyed by rule ID or name.
	Rules map[string]RuleConfig `yaml:"rules"`

	// Lexicon extends the built-in word lists.
	Lexicon LexiconConfig `yaml:"lexicon"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// CLI-level options (not persisted to config files).

	// Format specifies the output format.
	Format OutputFormat `yaml:"-"`

	// RuleFormat controls how rule identifiers appear in output.
	RuleFormat RuleFormat `yaml:"-"`

	// Strict treats warnings as errors for the exit code.
	Strict bool `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// EnableRules contains rule IDs to explicitly enable.
	EnableRules []string `yaml:"-"`

	// DisableRules contains rule IDs to explicitly disable.
	DisableRules []string `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		SeverityDefault: string(SeverityWarning),
		Linters:         make(map[string]LinterConfig),
		Rules:           make(map[string]RuleConfig),
		Format:          FormatText,
		RuleFormat:      RuleFormatName,
		Jobs:            0, // 0 means use GOMAXPROCS
	}
}

// LinterEnabled reports whether the named linter is enabled.
// Linters are enabled unless explicitly disabled.
func (c *Config) LinterEnabled(name string) bool {
	if lc, ok := c.Linters[name]; ok && lc.Enabled != nil {
		return *lc.Enabled
	}
	return true
}
