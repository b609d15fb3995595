package lint

import (
	"context"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/docmodel"
)

// FileResult contains the results of linting a single file with every
// enabled linter.
type FileResult struct {
	// FilePath is the path echoed from the lint call.
	FilePath string

	// Document is the shared model all linters consumed.
	Document *docmodel.Document

	// Results holds one Result per linter, in engine linter order.
	Results []Result

	// RuleErrors contains any internal errors from rule execution,
	// keyed by rule ID.
	RuleErrors map[string]error
}

// Passed is true iff every linter passed.
func (fr *FileResult) Passed() bool {
	for _, r := range fr.Results {
		if !r.Passed {
			return false
		}
	}
	return true
}

// Issues merges all linter results into a single stably ordered list
// (ascending line, ties by rule name). The underlying results are not
// mutated.
func (fr *FileResult) Issues() []Issue {
	var merged []Issue
	for _, r := range fr.Results {
		merged = append(merged, r.Issues...)
	}
	sortIssues(merged)
	return merged
}

// IssueCount returns the total number of issues across all linters.
func (fr *FileResult) IssueCount() int {
	count := 0
	for _, r := range fr.Results {
		count += len(r.Issues)
	}
	return count
}

// HasIssues returns true if any linter found issues.
func (fr *FileResult) HasIssues() bool {
	return fr.IssueCount() > 0
}

// CountBySeverity returns issue counts keyed by severity string.
func (fr *FileResult) CountBySeverity() map[string]int {
	counts := make(map[string]int)
	for _, r := range fr.Results {
		for _, issue := range r.Issues {
			severity := string(issue.Severity)
			if severity == "" {
				severity = string(config.SeverityWarning)
			}
			counts[severity]++
		}
	}
	return counts
}

// Engine composes an arbitrary set of linters over a shared document
// model. Linters are independent: none knows about its siblings, and the
// engine only concatenates their results.
type Engine struct {
	linters []Linter
}

// NewEngine creates an Engine running the given linters in order.
func NewEngine(linters ...Linter) *Engine {
	return &Engine{linters: linters}
}

// Linters returns the composed linters.
func (e *Engine) Linters() []Linter {
	return e.linters
}

// LintFile builds the document model once and runs every linter over it.
// It never fails on document content: the worst case is a FileResult with
// sparse extraction and zero issues.
func (e *Engine) LintFile(ctx context.Context, filePath, content string) *FileResult {
	doc := docmodel.Build(content)

	fr := &FileResult{
		FilePath: filePath,
		Document: doc,
		Results:  make([]Result, 0, len(e.linters)),
	}

	for _, linter := range e.linters {
		var result Result
		var ruleErrs map[string]error

		switch l := linter.(type) {
		case *RuleSetLinter:
			result, ruleErrs = l.LintDocumentReport(ctx, filePath, doc)
		case DocumentLinter:
			result = l.LintDocument(ctx, filePath, doc)
		default:
			result = linter.Lint(ctx, filePath, content)
		}

		fr.Results = append(fr.Results, result)

		for id, err := range ruleErrs {
			if fr.RuleErrors == nil {
				fr.RuleErrors = make(map[string]error)
			}
			fr.RuleErrors[id] = err
		}
	}

	return fr
}
