package langdetect

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{
			name:    "empty content",
			content: "",
			want:    "text",
		},
		{
			name:    "go package clause",
			content: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n",
			want:    "go",
		},
		{
			name:    "python function",
			content: "def handler(event):\n    return event\n",
			want:    "python",
		},
		{
			name:    "bash shebang",
			content: "#!/bin/bash\nset -euo pipefail\n",
			want:    "bash",
		},
		{
			name:    "json object",
			content: "{\n  \"name\": \"doclint\",\n  \"version\": \"1.0.0\"\n}\n",
			want:    "json",
		},
		{
			name:    "javascript console",
			content: "console.log(\"hello\");\n",
			want:    "javascript",
		},
		{
			name:    "sql select",
			content: "SELECT id, name FROM users WHERE active = true;\n",
			want:    "sql",
		},
		{
			name:    "shell prompt transcript",
			content: "$ doclint lint docs/\n",
			want:    "bash",
		},
		{
			name:    "yaml key values",
			content: "severity: warning\nformat: text\n",
			want:    "yaml",
		},
		{
			name:    "prose falls back to text",
			content: "lorem ipsum dolor\n",
			want:    "text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect([]byte(tt.content)))
		})
	}
}
