package style

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lint"
)

// titleCaseThreshold is how many capitalized non-first words mark a
// heading as Title Case rather than an incidental proper noun.
const titleCaseThreshold = 2

// HeadingCaseRule checks that headings use sentence case.
type HeadingCaseRule struct {
	lint.BaseRule
}

// NewHeadingCaseRule creates a new heading case rule.
func NewHeadingCaseRule() *HeadingCaseRule {
	return &HeadingCaseRule{
		BaseRule: lint.NewBaseRule(
			"GS004",
			"heading-case",
			"Headings should use sentence case, capitalizing only the first word and proper nouns",
			[]string{"google-style", "headings"},
			config.SeverityWarning,
		),
	}
}

// Apply flags headings where two or more non-first words are capitalized.
// All-caps acronyms (API, HTTP) do not count as capitalized words.
func (r *HeadingCaseRule) Apply(ctx *lint.RuleContext) ([]lint.Issue, error) {
	if ctx.Doc == nil {
		return nil, nil
	}

	var issues []lint.Issue

	for _, h := range ctx.Doc.Headings {
		if ctx.Cancelled() {
			return issues, ctx.Ctx.Err()
		}

		words := strings.Fields(h.Text)
		if len(words) < 2 {
			continue
		}

		capitalized := 0
		for _, word := range words[1:] {
			if isTitleCased(word) {
				capitalized++
			}
		}
		if capitalized < titleCaseThreshold {
			continue
		}

		issue := lint.NewIssue(r.ID(), h.Line,
			fmt.Sprintf("Heading %q appears to use Title Case", h.Text)).
			WithSeverity(config.SeverityWarning).
			WithSuggestion(fmt.Sprintf("Use sentence case: %q", sentenceCase(words))).
			Build()
		issues = append(issues, issue)
	}

	return issues, nil
}

// isTitleCased reports whether a word looks Title-Cased: initial upper
// followed by at least one lowercase letter. Acronyms and mixed-case
// identifiers do not qualify.
func isTitleCased(word string) bool {
	runes := []rune(strings.Trim(word, `"'(),.:;!?`))
	if len(runes) < 2 {
		return false
	}
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	for _, r := range runes[1:] {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return unicode.IsLower(runes[1])
}

// sentenceCase lowers every Title-Cased non-first word.
func sentenceCase(words []string) string {
	result := make([]string, len(words))
	copy(result, words)
	for i := 1; i < len(result); i++ {
		if isTitleCased(result[i]) {
			result[i] = strings.ToLower(result[i])
		}
	}
	return strings.Join(result, " ")
}
