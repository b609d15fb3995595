// Package langdetect guesses the language of fenced code content.
// It uses go-enry plus a few high-signal patterns, primarily to suggest
// language tags for untagged code fences.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Fence tags for commonly detected languages.
const (
	langGo     = "go"
	langPython = "python"
	langJS     = "javascript"
	langJSON   = "json"
	langYAML   = "yaml"
	langBash   = "bash"
	langSQL    = "sql"
	langText   = "text"
)

// classifierMinBytes is the smallest content size worth feeding to the
// statistical classifier. Below this the token counts carry no signal and
// the classifier guesses.
const classifierMinBytes = 64

// classifierCandidates bounds the enry classifier to languages that show
// up in documentation code samples.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detect returns a fence tag for the code content, or "text" when no
// confident guess exists.
func Detect(content []byte) string {
	if len(content) == 0 {
		return langText
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(string(content)); lang != "" {
		return lang
	}

	if len(content) >= classifierMinBytes {
		if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
			return normalize(lang)
		}
	}

	return langText
}

// detectByPattern checks a few patterns that identify a language with
// near certainty before falling back to the statistical classifier.
func detectByPattern(content string) string {
	trimmed := strings.TrimSpace(content)

	switch {
	case strings.HasPrefix(trimmed, "package ") ||
		strings.Contains(content, "func main()"):
		return langGo
	case strings.Contains(content, "def ") && strings.Contains(content, "):"),
		strings.Contains(content, "__main__"):
		return langPython
	case strings.HasPrefix(trimmed, "{") && strings.Contains(trimmed, `"`),
		strings.HasPrefix(trimmed, "[") && strings.Contains(trimmed, `"`):
		return langJSON
	case strings.Contains(content, "console.log") ||
		strings.Contains(content, "=>") && strings.Contains(content, "const "):
		return langJS
	case hasSQLVerb(trimmed):
		return langSQL
	case strings.HasPrefix(trimmed, "$ ") ||
		strings.HasPrefix(trimmed, "curl "):
		return langBash
	case looksLikeYAML(content):
		return langYAML
	}

	return ""
}

// hasSQLVerb reports whether content starts with a SQL statement verb.
func hasSQLVerb(trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	for _, verb := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, verb) {
			return true
		}
	}
	return false
}

// looksLikeYAML counts top-level key: value lines.
func looksLikeYAML(content string) bool {
	keyLines := 0
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, ": ") &&
			!strings.ContainsAny(line, "({") &&
			!strings.HasPrefix(line, `"`) {
			keyLines++
		}
	}
	return keyLines >= 2
}

// normalize converts enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}
