// Package lint provides the rule engine, issue types, and registry for
// doclint.
package lint

import (
	"cmp"
	"slices"

	"github.com/yaklabco/doclint/pkg/config"
)

// Issue represents a single problem found in a document.
// Every detected problem is represented this way; the engine never turns
// document content into an error.
type Issue struct {
	// RuleID is the identifier of the rule that produced this issue
	// (e.g., "GS001").
	RuleID string `json:"-"`

	// Rule is the stable human-readable rule name
	// (e.g., "sentence-too-long").
	Rule string `json:"rule"`

	// Severity indicates the importance of the issue.
	Severity config.Severity `json:"severity"`

	// Line is the 1-based line number where the issue occurs.
	Line int `json:"line"`

	// Column is the 1-based column number, or 0 when the issue applies
	// to the whole line.
	Column int `json:"column,omitempty"`

	// Message is the human-readable description of the issue.
	Message string `json:"message"`

	// Suggestion is an optional rephrasing or fix hint.
	Suggestion string `json:"suggestion,omitempty"`
}

// Result contains the outcome of one linter over one document.
// It is immutable after return; the aggregator only concatenates results,
// never mutates them.
type Result struct {
	// FilePath is the path echoed from the lint call. It is never read
	// from disk by the engine.
	FilePath string `json:"file_path"`

	// Linter is the name of the linter that produced this result.
	Linter string `json:"linter"`

	// Passed is true iff no issue has error severity.
	Passed bool `json:"passed"`

	// Issues holds the detected issues, sorted by ascending line number
	// with ties broken by rule name.
	Issues []Issue `json:"issues"`
}

// ErrorCount returns the number of error-severity issues.
func (r *Result) ErrorCount() int {
	count := 0
	for _, issue := range r.Issues {
		if issue.Severity == config.SeverityError {
			count++
		}
	}
	return count
}

// sortIssues orders issues by line, then rule name, then column.
// This is the determinism contract: identical input yields an identical,
// stably ordered issue list.
func sortIssues(issues []Issue) {
	slices.SortStableFunc(issues, func(a, b Issue) int {
		if c := cmp.Compare(a.Line, b.Line); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Rule, b.Rule); c != 0 {
			return c
		}
		return cmp.Compare(a.Column, b.Column)
	})
}

// newResult assembles a Result from collected issues, computing Passed.
func newResult(filePath, linter string, issues []Issue) Result {
	sortIssues(issues)

	passed := true
	for _, issue := range issues {
		if issue.Severity == config.SeverityError {
			passed = false
			break
		}
	}

	return Result{
		FilePath: filePath,
		Linter:   linter,
		Passed:   passed,
		Issues:   issues,
	}
}
