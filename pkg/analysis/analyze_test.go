package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
	"github.com/yaklabco/doclint/pkg/runner"
)

func sampleRunnerResult() *runner.Result {
	return &runner.Result{
		Files: []runner.FileOutcome{
			{
				Path: "/work/docs/a.md",
				Result: &lint.FileResult{
					FilePath: "/work/docs/a.md",
					Results: []lint.Result{
						{
							Linter: "google-style",
							Issues: []lint.Issue{
								{
									RuleID: "GS002", Rule: "forbidden-word",
									Severity: config.SeverityWarning,
									Line:     3, Message: `Avoid "simply"`,
								},
								{
									RuleID: "GS005", Rule: "meaningful-link-text",
									Severity: config.SeverityError,
									Line:     7, Message: "generic link",
								},
							},
						},
					},
				},
			},
			{
				Path: "/work/docs/b.md",
				Result: &lint.FileResult{
					FilePath: "/work/docs/b.md",
					Results: []lint.Result{
						{
							Linter: "google-style",
							Issues: []lint.Issue{
								{
									RuleID: "GS002", Rule: "forbidden-word",
									Severity: config.SeverityWarning,
									Line:     1, Message: `Avoid "just"`,
								},
							},
						},
						{Linter: "diataxis", Passed: true},
					},
				},
			},
			{
				Path:   "/work/docs/clean.md",
				Result: &lint.FileResult{FilePath: "/work/docs/clean.md"},
			},
		},
	}
}

func TestAnalyzeTotals(t *testing.T) {
	report := Analyze(sampleRunnerResult(), DefaultOptions())

	assert.Equal(t, ReportVersion, report.Version)
	assert.Equal(t, 3, report.Totals.Files)
	assert.Equal(t, 2, report.Totals.FilesWithIssues)
	assert.Equal(t, 3, report.Totals.Issues)
	assert.Equal(t, 1, report.Totals.Errors)
	assert.Equal(t, 2, report.Totals.Warnings)
	assert.True(t, report.Totals.HasIssues())
	assert.True(t, report.Totals.HasErrors())
}

func TestAnalyzeRelativePaths(t *testing.T) {
	opts := DefaultOptions()
	opts.WorkingDir = "/work"

	report := Analyze(sampleRunnerResult(), opts)

	require.NotEmpty(t, report.Issues)
	assert.Equal(t, "docs/a.md", report.Issues[0].FilePath)
}

func TestAnalyzeByRule(t *testing.T) {
	opts := DefaultOptions()
	opts.SortBy = SortByCount
	opts.SortDesc = true

	report := Analyze(sampleRunnerResult(), opts)

	require.Len(t, report.ByRule, 2)
	// forbidden-word has two hits across two files, so it sorts first.
	assert.Equal(t, "GS002", report.ByRule[0].RuleID)
	assert.Equal(t, 2, report.ByRule[0].Issues)
	assert.Len(t, report.ByRule[0].Files, 2)
	assert.Equal(t, "google-style", report.ByRule[0].Linter)
}

func TestAnalyzeByFileSkipsCleanFiles(t *testing.T) {
	opts := DefaultOptions()
	opts.SortBy = SortByAlpha

	report := Analyze(sampleRunnerResult(), opts)

	require.Len(t, report.ByFile, 2)
	assert.Equal(t, "/work/docs/a.md", report.ByFile[0].Path)
	assert.Equal(t, 1, report.ByFile[0].Errors)
	assert.Equal(t, []string{"GS002", "GS005"}, report.ByFile[0].Rules)
}

func TestAnalyzeSortBySeverity(t *testing.T) {
	opts := DefaultOptions()
	opts.SortBy = SortBySeverity

	report := Analyze(sampleRunnerResult(), opts)

	require.Len(t, report.ByRule, 2)
	// meaningful-link-text carries the only error, so it sorts first.
	assert.Equal(t, "GS005", report.ByRule[0].RuleID)
}

func TestAnalyzeErroredFile(t *testing.T) {
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/work/broken.md", Error: assert.AnError},
		},
	}

	report := Analyze(result, DefaultOptions())

	assert.Equal(t, 1, report.Totals.Files)
	assert.Equal(t, 1, report.Totals.FilesErrored)
	assert.Equal(t, 0, report.Totals.Issues)
}

func TestAnalyzeNilResult(t *testing.T) {
	report := Analyze(nil, DefaultOptions())

	assert.Equal(t, 0, report.Totals.Files)
	assert.Empty(t, report.Issues)
	assert.False(t, report.Totals.HasIssues())
}

func TestAnalyzeExcludesViewsWhenDisabled(t *testing.T) {
	opts := Options{SortBy: SortByCount}

	report := Analyze(sampleRunnerResult(), opts)

	assert.Empty(t, report.Issues)
	assert.Empty(t, report.ByFile)
	assert.Empty(t, report.ByRule)
	assert.Equal(t, 3, report.Totals.Issues)
}

func TestSortFieldIsValid(t *testing.T) {
	assert.True(t, SortByCount.IsValid())
	assert.True(t, SortByAlpha.IsValid())
	assert.True(t, SortBySeverity.IsValid())
	assert.False(t, SortField("random").IsValid())
}
