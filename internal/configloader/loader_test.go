package configloader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yaklabco/doclint/pkg/config"
	_ "github.com/yaklabco/doclint/pkg/lint/diataxis" // Register rules
	_ "github.com/yaklabco/doclint/pkg/lint/style"    // Register rules
)

func writeConfigFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func isolatedOptions(workDir string) LoadOptions {
	return LoadOptions{
		WorkingDir:         workDir,
		IgnoreSystemConfig: true,
		IgnoreUserConfig:   true,
		IgnoreEnv:          true,
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config == nil {
		t.Fatal("Load() returned nil config")
	}
	if result.Config.SeverityDefault != "warning" {
		t.Errorf("expected severity_default %q, got %q", "warning", result.Config.SeverityDefault)
	}
	if result.Config.Format != config.FormatText {
		t.Errorf("expected format %q, got %q", config.FormatText, result.Config.Format)
	}
	if len(result.LoadedFrom) != 0 {
		t.Errorf("expected no loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_ProjectConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", `
severity_default: error
rules:
  GS002:
    enabled: false
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected severity_default %q, got %q", "error", result.Config.SeverityDefault)
	}

	gs002, ok := result.Config.Rules["GS002"]
	if !ok {
		t.Fatal("GS002 rule not found in config")
	}
	if gs002.Enabled == nil || *gs002.Enabled {
		t.Error("expected GS002 to be disabled")
	}

	if len(result.LoadedFrom) != 1 {
		t.Errorf("expected 1 loaded file, got %d", len(result.LoadedFrom))
	}
}

func TestLoad_ExplicitConfig(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	customPath := writeConfigFile(t, tmpDir, "custom-config.yml", `
severity_default: info
`)

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected severity_default %q, got %q", "info", result.Config.SeverityDefault)
	}
	if result.Paths.Explicit != customPath {
		t.Errorf("expected explicit path %q, got %q", customPath, result.Paths.Explicit)
	}
}

func TestLoad_ExplicitOverridesProject(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", "severity_default: warning\n")
	customPath := writeConfigFile(t, tmpDir, "ci.yml", "severity_default: error\n")

	opts := isolatedOptions(tmpDir)
	opts.ExplicitPath = customPath

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected explicit config to win, got severity_default %q", result.Config.SeverityDefault)
	}
	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected 2 loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_CLIOverrides(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", "severity_default: error\n")

	opts := isolatedOptions(tmpDir)
	opts.CLIConfig = &config.Config{
		SeverityDefault: "info",
		Format:          config.FormatJSON,
		Jobs:            4,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected CLI severity_default to win, got %q", result.Config.SeverityDefault)
	}
	if result.Config.Format != config.FormatJSON {
		t.Errorf("expected format json, got %q", result.Config.Format)
	}
	if result.Config.Jobs != 4 {
		t.Errorf("expected jobs 4, got %d", result.Config.Jobs)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", "severity_default: error\n")

	t.Setenv("DOCLINT_SEVERITY_DEFAULT", "info")
	t.Setenv("DOCLINT_FORMAT", "sarif")

	opts := isolatedOptions(tmpDir)
	opts.IgnoreEnv = false

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected env severity_default to win, got %q", result.Config.SeverityDefault)
	}
	if result.Config.Format != config.FormatSARIF {
		t.Errorf("expected format sarif, got %q", result.Config.Format)
	}
}

func TestLoad_UserConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configHome := t.TempDir()

	userDir := filepath.Join(configHome, "doclint")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfigFile(t, userDir, "config.yaml", "severity_default: info\n")

	t.Setenv("XDG_CONFIG_HOME", configHome)

	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreEnv:          true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "info" {
		t.Errorf("expected user config severity_default, got %q", result.Config.SeverityDefault)
	}
}

func TestLoad_ProjectOverridesUser(t *testing.T) {
	tmpDir := t.TempDir()
	configHome := t.TempDir()

	userDir := filepath.Join(configHome, "doclint")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeConfigFile(t, userDir, "config.yaml", "severity_default: info\n")
	writeConfigFile(t, tmpDir, ".doclint.yml", "severity_default: error\n")

	t.Setenv("XDG_CONFIG_HOME", configHome)

	opts := LoadOptions{
		WorkingDir:         tmpDir,
		IgnoreSystemConfig: true,
		IgnoreEnv:          true,
	}

	result, err := Load(context.Background(), opts)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.SeverityDefault != "error" {
		t.Errorf("expected project config to win, got %q", result.Config.SeverityDefault)
	}
	if len(result.LoadedFrom) != 2 {
		t.Errorf("expected 2 loaded files, got %v", result.LoadedFrom)
	}
}

func TestLoad_RuleNameNormalization(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", `
rules:
  sentence-too-long:
    options:
      max_words: 25
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	gs001, ok := result.Config.Rules["GS001"]
	if !ok {
		t.Fatal("expected sentence-too-long to normalize to GS001")
	}
	if gs001.Options["max_words"] != 25 {
		t.Errorf("expected max_words 25, got %v", gs001.Options["max_words"])
	}
	if _, stillThere := result.Config.Rules["sentence-too-long"]; stillThere {
		t.Error("expected rule-name key to be replaced by canonical ID")
	}
}

func TestLoad_GroupKeyExpansion(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", `
rules:
  google-style:
    enabled: false
  sentence-too-long:
    enabled: true
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	gs002, ok := result.Config.Rules["GS002"]
	if !ok {
		t.Fatal("expected group key to expand to GS002")
	}
	if gs002.Enabled == nil || *gs002.Enabled {
		t.Error("expected GS002 disabled via group key")
	}

	gs001, ok := result.Config.Rules["GS001"]
	if !ok {
		t.Fatal("expected GS001 in normalized rules")
	}
	if gs001.Enabled == nil || !*gs001.Enabled {
		t.Error("expected specific rule config to override the group")
	}

	if _, stillThere := result.Config.Rules["google-style"]; stillThere {
		t.Error("expected group key to be removed after expansion")
	}
}

func TestLoad_DuplicateRuleKeysWarn(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", `
rules:
  GS001:
    enabled: false
  sentence-too-long:
    enabled: true
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, "duplicate rule configuration") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected duplicate-rule warning, got %v", result.Warnings)
	}
}

func TestLoad_UnknownRuleWarns(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", `
rules:
  no-such-rule:
    enabled: false
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	found := false
	for _, w := range result.Warnings {
		if strings.Contains(w, `unknown rule "no-such-rule"`) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected unknown-rule warning, got %v", result.Warnings)
	}
}

func TestLoad_InvalidSeverityFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", "severity_default: fatal\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err == nil {
		t.Fatal("expected error for invalid severity")
	}
	if !strings.Contains(err.Error(), "invalid severity") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoad_MalformedYAMLFails(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", "rules: [not: a: map\n")

	_, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoad_LexiconExtension(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", `
lexicon:
  forbidden_words:
    leverage: "use"
  generic_link_text:
    - "see more"
`)

	result, err := Load(context.Background(), isolatedOptions(tmpDir))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if result.Config.Lexicon.ForbiddenWords["leverage"] != "use" {
		t.Errorf("expected forbidden word from config, got %v", result.Config.Lexicon.ForbiddenWords)
	}
	if len(result.Config.Lexicon.GenericLinkText) != 1 || result.Config.Lexicon.GenericLinkText[0] != "see more" {
		t.Errorf("expected generic link text from config, got %v", result.Config.Lexicon.GenericLinkText)
	}
}

func TestFindProjectConfig_SearchesUpward(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", "severity_default: error\n")

	nested := filepath.Join(tmpDir, "docs", "guides")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), nested)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}

	if found != filepath.Join(tmpDir, ".doclint.yml") {
		t.Errorf("expected config at repo root, got %q", found)
	}
}

func TestFindProjectConfig_StopsAtVCSRoot(t *testing.T) {
	t.Parallel()

	tmpDir := t.TempDir()
	writeConfigFile(t, tmpDir, ".doclint.yml", "severity_default: error\n")

	// A nested repo boundary hides configs above it.
	repo := filepath.Join(tmpDir, "other-repo")
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, err := FindProjectConfig(context.Background(), repo)
	if err != nil {
		t.Fatalf("FindProjectConfig() error = %v", err)
	}

	if found != "" {
		t.Errorf("expected no config past VCS root, got %q", found)
	}
}

func TestLoadFromEnv_InvalidValues(t *testing.T) {
	t.Setenv("DOCLINT_JOBS", "many")

	cfg := config.NewConfig()
	if err := LoadFromEnv(cfg); err == nil {
		t.Fatal("expected error for non-integer DOCLINT_JOBS")
	}
}

func TestValidate_Findings(t *testing.T) {
	t.Parallel()

	badSeverity := "catastrophic"
	cfg := &config.Config{
		Format: "xml",
		Jobs:   -1,
		Linters: map[string]config.LinterConfig{
			"vale": {},
		},
		Rules: map[string]config.RuleConfig{
			"GS001": {Severity: &badSeverity},
		},
		Ignore: []string{"[unclosed"},
	}

	result := Validate(cfg)

	if result.Valid() {
		t.Fatal("expected validation errors")
	}
	if len(result.Errors) != 3 {
		t.Errorf("expected 3 errors (format, jobs, rule severity), got %d: %v", len(result.Errors), result.AllMessages())
	}
	if !result.HasWarnings() {
		t.Error("expected unknown-linter warning")
	}
}

func TestValidate_IgnoreGlobError(t *testing.T) {
	t.Parallel()

	cfg := &config.Config{Ignore: []string{"docs/**", "[bad"}}

	result := Validate(cfg)
	if result.Valid() {
		t.Fatal("expected error for malformed glob")
	}
	if !strings.Contains(result.Errors[0].Error(), "ignore[1]") {
		t.Errorf("unexpected error field: %v", result.Errors[0].Error())
	}
}

func TestMergeAll_Precedence(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	mid := &config.Config{SeverityDefault: "error"}
	top := &config.Config{Jobs: 8}

	merged := MergeAll(base, mid, top)

	if merged.SeverityDefault != "error" {
		t.Errorf("expected severity_default from mid layer, got %q", merged.SeverityDefault)
	}
	if merged.Jobs != 8 {
		t.Errorf("expected jobs from top layer, got %d", merged.Jobs)
	}
	if merged.Format != config.FormatText {
		t.Errorf("expected default format preserved, got %q", merged.Format)
	}
}
