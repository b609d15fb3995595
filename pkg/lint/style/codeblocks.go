package style

import (
	"fmt"
	"strings"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/langdetect"
	"github.com/yaklabco/doclint/pkg/lint"
)

// CodeLanguageTagRule suggests a language tag for untagged code fences so
// rendered documentation gets syntax highlighting.
type CodeLanguageTagRule struct {
	lint.BaseRule
}

// NewCodeLanguageTagRule creates a new code language tag rule.
func NewCodeLanguageTagRule() *CodeLanguageTagRule {
	return &CodeLanguageTagRule{
		BaseRule: lint.NewBaseRule(
			"GS007",
			"code-language-tag",
			"Fenced code blocks should declare a language tag",
			[]string{"google-style", "code"},
			config.SeverityInfo,
		),
	}
}

// Apply inspects fence opening lines only. Fence contents are code by
// definition and feed detection, never prose rules.
func (r *CodeLanguageTagRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var issues []lint.Issue

	for _, region := range ctx.Doc.CodeRegions {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}

		opening := ctx.Doc.Line(region.StartLine)
		if fenceTag(opening) != "" {
			continue
		}

		content := regionContent(ctx, region.StartLine, region.EndLine)
		detected := langdetect.Detect([]byte(content))

		builder := lint.NewIssue(r.ID(), region.StartLine,
			"Code fence has no language tag").
			WithSeverity(config.SeverityInfo)

		if detected != "" && detected != "text" {
			builder = builder.WithSuggestion(
				fmt.Sprintf("This looks like %s; use ```%s", detected, detected))
		} else {
			builder = builder.WithSuggestion("Add a language tag, or ```text for plain output")
		}

		issues = append(issues, builder.Build())
	}

	return issues, nil
}

// fenceTag returns the language tag on a fence opening line, or "".
func fenceTag(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	trimmed = strings.TrimLeft(trimmed, "`~")
	return strings.TrimSpace(trimmed)
}

// regionContent joins the lines between the fence markers.
func regionContent(ctx *lint.RuleContext, startLine, endLine int) string {
	var sb strings.Builder
	for line := startLine + 1; line < endLine; line++ {
		sb.WriteString(ctx.Doc.Line(line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
