package lint

import "github.com/yaklabco/doclint/pkg/config"

// IssueBuilder helps construct Issue values.
type IssueBuilder struct {
	issue Issue
}

// NewIssue starts building an issue for the given rule at a line.
func NewIssue(ruleID string, line int, message string) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			RuleID:  ruleID,
			Line:    line,
			Message: message,
		},
	}
}

// At sets the 1-based column.
func (b *IssueBuilder) At(column int) *IssueBuilder {
	b.issue.Column = column
	return b
}

// WithSeverity sets the severity.
func (b *IssueBuilder) WithSeverity(s config.Severity) *IssueBuilder {
	b.issue.Severity = s
	return b
}

// WithSuggestion sets a human-readable fix suggestion.
func (b *IssueBuilder) WithSuggestion(s string) *IssueBuilder {
	b.issue.Suggestion = s
	return b
}

// Build returns the constructed Issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
