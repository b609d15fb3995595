package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/doclint/pkg/config"
)

func TestSortIssues(t *testing.T) {
	issues := []Issue{
		{Rule: "b-rule", Line: 5},
		{Rule: "a-rule", Line: 5},
		{Rule: "z-rule", Line: 1},
		{Rule: "a-rule", Line: 5, Column: 3},
		{Rule: "a-rule", Line: 2},
	}

	sortIssues(issues)

	assert.Equal(t, []Issue{
		{Rule: "z-rule", Line: 1},
		{Rule: "a-rule", Line: 2},
		{Rule: "a-rule", Line: 5},
		{Rule: "a-rule", Line: 5, Column: 3},
		{Rule: "b-rule", Line: 5},
	}, issues)
}

func TestNewResultPassed(t *testing.T) {
	tests := []struct {
		name       string
		issues     []Issue
		wantPassed bool
	}{
		{
			name:       "no issues passes",
			issues:     nil,
			wantPassed: true,
		},
		{
			name: "warnings pass",
			issues: []Issue{
				{Rule: "x", Severity: config.SeverityWarning, Line: 1},
				{Rule: "y", Severity: config.SeverityInfo, Line: 2},
			},
			wantPassed: true,
		},
		{
			name: "any error fails",
			issues: []Issue{
				{Rule: "x", Severity: config.SeverityWarning, Line: 1},
				{Rule: "y", Severity: config.SeverityError, Line: 2},
			},
			wantPassed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := newResult("doc.md", "test", tt.issues)
			assert.Equal(t, tt.wantPassed, result.Passed)
			assert.Equal(t, "doc.md", result.FilePath)
			assert.Equal(t, "test", result.Linter)
		})
	}
}

func TestResultErrorCount(t *testing.T) {
	result := newResult("doc.md", "test", []Issue{
		{Rule: "a", Severity: config.SeverityError, Line: 1},
		{Rule: "b", Severity: config.SeverityWarning, Line: 2},
		{Rule: "c", Severity: config.SeverityError, Line: 3},
	})

	assert.Equal(t, 2, result.ErrorCount())
	assert.False(t, result.Passed)
}
