package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/yaklabco/doclint/pkg/config"
	_ "github.com/yaklabco/doclint/pkg/lint/diataxis" // Register rules
	_ "github.com/yaklabco/doclint/pkg/lint/style"    // Register rules
)

func TestGenerateTemplate_Minimal(t *testing.T) {
	content, err := config.GenerateTemplate(config.TemplateOptions{})
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "doclint configuration")
	assert.Contains(t, text, "severity_default: warning")
	assert.Contains(t, text, "diataxis:")
	assert.Contains(t, text, "google-style:")
}

func TestGenerateTemplate_Full(t *testing.T) {
	content, err := config.GenerateTemplate(config.TemplateOptions{Full: true})
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "rules:")
	assert.Contains(t, text, "sentence-too-long:")
	assert.Contains(t, text, "heading-hierarchy:")
	assert.Contains(t, text, "meaningful-link-text:")
}

func TestGenerateTemplate_IsValidYAML(t *testing.T) {
	for _, full := range []bool{false, true} {
		content, err := config.GenerateTemplate(config.TemplateOptions{Full: full})
		require.NoError(t, err)

		var cfg config.Config
		require.NoError(t, yaml.Unmarshal(content, &cfg), "full=%v", full)
	}
}
