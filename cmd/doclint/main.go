// Package main is the entry point for the doclint CLI.
package main

import (
	"errors"
	"os"

	"github.com/yaklabco/doclint/internal/cli"
	"github.com/yaklabco/doclint/internal/logging"

	// Import linter packages to register built-in rules via init().
	_ "github.com/yaklabco/doclint/pkg/lint/diataxis"
	_ "github.com/yaklabco/doclint/pkg/lint/style"
)

// Build-time variables set by GoReleaser via ldflags.
//
//nolint:gochecknoglobals // Version variables must be package-level for ldflags injection
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	info := cli.BuildInfo{
		Version: version,
		Commit:  commit,
		Date:    date,
	}

	rootCmd := cli.NewRootCommand(info)

	if err := rootCmd.Execute(); err != nil {
		// Don't log ErrLintIssuesFound - it's just a signal for the exit code.
		if !errors.Is(err, cli.ErrLintIssuesFound) {
			logger := logging.Default()
			logger.Error("command failed", logging.FieldError, err)
		}
		return cli.ExitCode(err)
	}

	return cli.ExitSuccess
}
