package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/yaklabco/doclint/internal/configloader"
	"github.com/yaklabco/doclint/internal/logging"
	"github.com/yaklabco/doclint/pkg/config"
	"github.com/yaklabco/doclint/pkg/lexicon"
	"github.com/yaklabco/doclint/pkg/lint"
	"github.com/yaklabco/doclint/pkg/lint/diataxis"
	"github.com/yaklabco/doclint/pkg/lint/style"
	"github.com/yaklabco/doclint/pkg/reporter"
	"github.com/yaklabco/doclint/pkg/runner"
)

// ErrLintIssuesFound is returned when lint issues are found.
var ErrLintIssuesFound = errors.New("lint issues found")

type lintFlags struct {
	format         string
	linters        []string
	ignore         []string
	enable         []string
	disable        []string
	strict         bool
	noContext      bool
	compact        bool
	followSymlinks bool
	ruleFormat     string
}

func newLintCommand() *cobra.Command {
	var cfg config.Config
	flags := &lintFlags{}

	cmd := &cobra.Command{
		Use:   "lint [paths...]",
		Short: "Lint documentation files",
		Long:  lintLongDescription,
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLint(cmd, args, &cfg, flags)
		},
	}

	addLintFlags(cmd, &cfg, flags)

	return cmd
}

const lintLongDescription = `Lint Markdown documentation for structural and prose issues.

By default, lints all .md and .markdown files in the current directory
and subdirectories. Specify paths to lint specific files or directories.

Examples:
  doclint lint                          # Lint current directory
  doclint lint docs/                    # Lint docs directory
  doclint lint README.md                # Lint single file
  doclint lint --linters diataxis       # Run only the structural linter
  doclint lint --format json            # Output as JSON for CI
  doclint lint --format sarif           # Output as SARIF for code scanning
  doclint lint --strict                 # Treat warnings as errors`

func runLint(cmd *cobra.Command, args []string, cfg *config.Config, flags *lintFlags) error {
	logger := logging.Default()

	// Map string flags to typed config values.
	// Only set values that were explicitly provided via CLI flags.
	if cmd.Flags().Changed("format") {
		cfg.Format = config.OutputFormat(flags.format)
	}
	if cmd.Flags().Changed("rule-format") {
		cfg.RuleFormat = config.RuleFormat(flags.ruleFormat)
	}
	cfg.Ignore = flags.ignore
	cfg.EnableRules = flags.enable
	cfg.DisableRules = flags.disable
	cfg.Strict = flags.strict

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	// Get the explicit config path from the root command's persistent flag.
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return &exitError{code: ExitInvalidUsage, err: fmt.Errorf("get config flag: %w", err)}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return &exitError{code: ExitIOError, err: fmt.Errorf("get working directory: %w", err)}
	}

	loadOpts := configloader.LoadOptions{
		WorkingDir:   workDir,
		ExplicitPath: configPath,
		CLIConfig:    cfg,
	}

	loadResult, err := configloader.Load(ctx, loadOpts)
	if err != nil {
		return &exitError{code: ExitConfigError, err: fmt.Errorf("load configuration: %w", err)}
	}

	finalCfg := loadResult.Config

	for _, warning := range loadResult.Warnings {
		logger.Warn(warning)
	}

	if len(loadResult.LoadedFrom) > 0 {
		logger.Debug("loaded configuration from", logging.FieldConfig, loadResult.LoadedFrom)
	}

	// Build the lexicon, extended with entries from configuration.
	lex := lexicon.Default()
	lex.AddForbiddenWords(finalCfg.Lexicon.ForbiddenWords)
	lex.AddGenericLinkText(finalCfg.Lexicon.GenericLinkText)

	linters, err := selectLinters(finalCfg, flags.linters, lex)
	if err != nil {
		return &exitError{code: ExitInvalidUsage, err: err}
	}
	if len(linters) == 0 {
		return &exitError{code: ExitInvalidUsage, err: errors.New("no linters enabled")}
	}

	engine := lint.NewEngine(linters...)
	lintRunner := runner.New(engine)

	runOpts := runner.Options{
		Paths:          args,
		WorkingDir:     workDir,
		Extensions:     runner.DefaultExtensions(),
		ExcludeGlobs:   finalCfg.Ignore,
		FollowSymlinks: flags.followSymlinks,
		Jobs:           finalCfg.Jobs,
		Config:         finalCfg,
		Lexicon:        lex,
	}

	logger.Debug("starting lint run",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, runOpts.WorkingDir,
		logging.FieldJobs, runOpts.Jobs,
	)

	result, err := lintRunner.Run(ctx, runOpts)
	if err != nil {
		return &exitError{code: ExitIOError, err: fmt.Errorf("lint run: %w", err)}
	}

	// Get color mode from persistent flag.
	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	format, err := reporter.ParseFormat(string(finalCfg.Format))
	if err != nil {
		return &exitError{code: ExitInvalidUsage, err: fmt.Errorf("invalid format: %w", err)}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		ErrorWriter: cmd.ErrOrStderr(),
		Format:      format,
		Color:       colorMode,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		GroupByFile: true,
		Compact:     flags.compact,
		RuleFormat:  finalCfg.RuleFormat,
		WorkingDir:  workDir,
	})
	if err != nil {
		return &exitError{code: ExitInternalError, err: fmt.Errorf("create reporter: %w", err)}
	}

	if _, err := rep.Report(ctx, result); err != nil {
		return &exitError{code: ExitIOError, err: fmt.Errorf("report results: %w", err)}
	}

	exitCode := ExitCodeFromResult(result, finalCfg.Strict)
	if exitCode != ExitSuccess {
		return &exitError{code: exitCode, err: ErrLintIssuesFound}
	}

	return nil
}

// selectLinters builds the linter set from configuration and the --linters flag.
// An explicit --linters list wins over per-linter config.
func selectLinters(cfg *config.Config, requested []string, lex *lexicon.Lexicon) ([]lint.Linter, error) {
	enabled := func(name string) bool {
		if len(requested) > 0 {
			return slices.Contains(requested, name)
		}
		return cfg.LinterEnabled(name)
	}

	for _, name := range requested {
		if !configloader.IsKnownLinter(name) {
			return nil, fmt.Errorf("unknown linter %q; available: diataxis, google-style", name)
		}
	}

	var linters []lint.Linter
	if enabled(diataxis.LinterName) {
		linters = append(linters, diataxis.NewLinter(cfg, lex))
	}
	if enabled(style.LinterName) {
		linters = append(linters, style.NewLinter(cfg, lex))
	}

	return linters, nil
}

func addLintFlags(cmd *cobra.Command, cfg *config.Config, flags *lintFlags) {
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, sarif, summary")
	cmd.Flags().StringSliceVar(&flags.linters, "linters", nil,
		"linters to run: diataxis, google-style (default: all enabled)")
	cmd.Flags().IntVar(&cfg.Jobs, "jobs", 0, "number of parallel workers (0 = auto)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns to ignore")
	cmd.Flags().StringSliceVar(&flags.enable, "enable", nil, "rule IDs or names to enable")
	cmd.Flags().StringSliceVar(&flags.disable, "disable", nil, "rule IDs or names to disable")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "treat warnings as errors for exit code")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.followSymlinks, "follow-symlinks", false, "follow directory symlinks during discovery")
	cmd.Flags().StringVar(&flags.ruleFormat, "rule-format", "name",
		"rule identifier format in output: name, id, or combined")
}
