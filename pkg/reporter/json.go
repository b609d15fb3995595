package reporter

import (
	"bufio"
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/runner"
)

// jsonOutputVersion is the version of the JSON output schema.
const jsonOutputVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path   string      `json:"path"`
	Issues []JSONIssue `json:"issues"`
	Error  string      `json:"error,omitempty"`
}

// JSONIssue represents a single issue.
type JSONIssue struct {
	Linter     string `json:"linter"`
	RuleID     string `json:"ruleId"`
	RuleName   string `json:"ruleName"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Line       int    `json:"line"`
	Column     int    `json:"column,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// JSONSummary contains aggregate statistics.
type JSONSummary struct {
	FilesChecked    int            `json:"filesChecked"`
	FilesWithIssues int            `json:"filesWithIssues"`
	FilesErrored    int            `json:"filesErrored"`
	TotalIssues     int            `json:"totalIssues"`
	BySeverity      map[string]int `json:"bySeverity"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := r.buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.TotalIssues, nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: jsonOutputVersion,
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			BySeverity: make(map[string]int),
		},
	}

	if result == nil {
		return output
	}

	if len(result.Files) > 0 {
		output.Files = make([]JSONFileResult, 0, len(result.Files))
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:   relativePath(file.Path, r.opts.WorkingDir),
			Issues: make([]JSONIssue, 0),
		}

		if file.Error != nil {
			fileResult.Error = file.Error.Error()
			output.Summary.FilesErrored++
		}

		if file.Result != nil {
			for _, linterResult := range file.Result.Results {
				for _, issue := range linterResult.Issues {
					severity := string(issue.Severity)
					if severity == "" {
						severity = string(config.SeverityWarning)
					}

					fileResult.Issues = append(fileResult.Issues, JSONIssue{
						Linter:     linterResult.Linter,
						RuleID:     issue.RuleID,
						RuleName:   issue.Rule,
						Severity:   severity,
						Message:    issue.Message,
						Line:       issue.Line,
						Column:     issue.Column,
						Suggestion: issue.Suggestion,
					})
					output.Summary.TotalIssues++
					output.Summary.BySeverity[severity]++
				}
			}
		}

		// Merge the per-linter streams into one line-ordered list.
		slices.SortStableFunc(fileResult.Issues, func(a, b JSONIssue) int {
			if c := cmp.Compare(a.Line, b.Line); c != 0 {
				return c
			}
			if c := cmp.Compare(a.RuleName, b.RuleName); c != 0 {
				return c
			}
			return cmp.Compare(a.Column, b.Column)
		})

		if len(fileResult.Issues) > 0 {
			output.Summary.FilesWithIssues++
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.FilesChecked++
	}

	return output
}
