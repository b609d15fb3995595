package diataxis

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doclint/pkg/docmodel"
	"github.com/yaklabco/doclint/pkg/lint"
)

func applyRule(t *testing.T, rule lint.Rule, content string) []lint.Issue {
	t.Helper()
	ctx := lint.NewRuleContext(
		context.Background(), docmodel.Build(content), "doc.md", nil, nil, nil)
	issues, err := rule.Apply(ctx)
	require.NoError(t, err)
	return issues
}

func TestMixedTypeRule(t *testing.T) {
	rule := NewMixedTypeRule()

	t.Run("pure tutorial yields nothing", func(t *testing.T) {
		issues := applyRule(t, rule, pureTutorialDoc)
		assert.Empty(t, issues)
	})

	t.Run("mixed document flagged once at first heading", func(t *testing.T) {
		issues := applyRule(t, rule, mixedReferenceDoc)
		require.Len(t, issues, 1)
		assert.Equal(t, 1, issues[0].Line)
		assert.Equal(t, "Document mixes reference and explanation content", issues[0].Message)
	})

	t.Run("empty document yields nothing", func(t *testing.T) {
		issues := applyRule(t, rule, "")
		assert.Empty(t, issues)
	})
}

func TestRequiredSectionsRule(t *testing.T) {
	rule := NewRequiredSectionsRule()

	t.Run("tutorial with all sections passes", func(t *testing.T) {
		issues := applyRule(t, rule, pureTutorialDoc)
		assert.Empty(t, issues)
	})

	t.Run("how-to missing prerequisites and result", func(t *testing.T) {
		issues := applyRule(t, rule, `# How to Configure Logging

This guide shows how to send logs elsewhere.

1. Open the configuration file.
2. Set the sink address.
`)
		require.Len(t, issues, 2)
		assert.Contains(t, issues[0].Message, `missing a "prerequisites" section`)
		assert.Contains(t, issues[1].Message, `missing a "result" section`)
	})

	t.Run("aliases satisfy a required section", func(t *testing.T) {
		issues := applyRule(t, rule, `# How to Configure Logging

This guide shows how to send logs elsewhere.

## Before You Begin

Install the agent.

## Verification

Check the dashboard.
`)
		assert.Empty(t, issues)
	})

	t.Run("unclassifiable document yields nothing", func(t *testing.T) {
		issues := applyRule(t, rule, `# Release Notes

Bug fixes and small improvements.
`)
		assert.Empty(t, issues)
	})

	t.Run("reference has no required sections", func(t *testing.T) {
		issues := applyRule(t, rule, `# Configuration Reference

## Parameters

None yet.
`)
		assert.Empty(t, issues)
	})
}

func TestHeadingHierarchyRule(t *testing.T) {
	rule := NewHeadingHierarchyRule()

	t.Run("forward skip flagged", func(t *testing.T) {
		issues := applyRule(t, rule, `# Title

#### Deep Section

## Second

### Third
`)
		require.Len(t, issues, 1)
		assert.Equal(t, 3, issues[0].Line)
		assert.Equal(t, "Heading level jumped from H1 to H4", issues[0].Message)
		assert.Equal(t, "Use H2 instead", issues[0].Suggestion)
	})

	t.Run("backward jumps allowed", func(t *testing.T) {
		issues := applyRule(t, rule, `# Title

## Section

### Subsection

## Next Section
`)
		assert.Empty(t, issues)
	})

	t.Run("first heading may be any level", func(t *testing.T) {
		issues := applyRule(t, rule, `### Fragment

#### Detail
`)
		assert.Empty(t, issues)
	})

	t.Run("hash lines in code fences ignored", func(t *testing.T) {
		issues := applyRule(t, rule, "# Title\n\n```bash\n#### not a heading\n```\n\n## Section\n")
		assert.Empty(t, issues)
	})
}

func TestNewLinterRunsAllRules(t *testing.T) {
	linter := NewLinter(nil, nil)
	result := linter.Lint(context.Background(), "doc.md", mixedReferenceDoc)

	assert.Equal(t, LinterName, result.Linter)
	require.Len(t, result.Issues, 1)
	assert.Equal(t, "mixed-document-type", result.Issues[0].Rule)
}
