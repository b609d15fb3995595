package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/doclint/pkg/lint"
	"github.com/yaklabco/doclint/pkg/lint/diataxis"
	"github.com/yaklabco/doclint/pkg/lint/style"
)

func newTestRunner() *Runner {
	return New(lint.NewEngine(
		diataxis.NewLinter(nil, nil),
		style.NewLinter(nil, nil),
	))
}

func TestRunnerRun(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "clean.md", "# Release notes\n\nBug fixes only.\n")
	writeFile(t, dir, "bad.md", "# Guide\n\nFor details, [click here](https://example.com).\n")

	result, err := newTestRunner().Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.Stats.FilesDiscovered)
	assert.Equal(t, 2, result.Stats.FilesProcessed)
	assert.Equal(t, 1, result.Stats.FilesWithIssues)
	assert.True(t, result.HasFailures(), "generic link text is an error")

	// Outcomes come back in discovery (path) order, not completion order.
	require.Len(t, result.Files, 2)
	assert.Equal(t, "bad.md", filepath.Base(result.Files[0].Path))
	assert.Equal(t, "clean.md", filepath.Base(result.Files[1].Path))
}

func TestRunnerEmptyDiscovery(t *testing.T) {
	result, err := newTestRunner().Run(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: t.TempDir(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, result.Stats.FilesDiscovered)
	assert.Empty(t, result.Files)
	assert.False(t, result.HasFailures())
	assert.False(t, result.HasIssues())
}

func TestRunnerUnreadableFileCountsAsErrored(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "locked.md", "# Locked\n")
	require.NoError(t, os.Chmod(path, 0o000))
	t.Cleanup(func() { _ = os.Chmod(path, 0o644) })

	if os.Getuid() == 0 {
		t.Skip("permission bits are advisory for root")
	}

	result, err := newTestRunner().Run(context.Background(), Options{
		Paths:      []string{path},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Stats.FilesErrored)
	assert.True(t, result.HasFailures())
	require.Len(t, result.Files, 1)
	assert.Error(t, result.Files[0].Error)
}

func TestRunnerDeterministicAcrossJobCounts(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.md", "b.md", "c.md", "d.md", "e.md"} {
		writeFile(t, dir, name, "# Guide\n\nSimply run it.\n")
	}

	run := func(jobs int) *Result {
		result, err := newTestRunner().Run(context.Background(), Options{
			Paths:      []string{"."},
			WorkingDir: dir,
			Jobs:       jobs,
		})
		require.NoError(t, err)
		return result
	}

	serial := run(1)
	parallel := run(4)

	require.Len(t, serial.Files, 5)
	for i := range serial.Files {
		assert.Equal(t, serial.Files[i].Path, parallel.Files[i].Path)
		assert.Equal(t, serial.Files[i].Result.Issues(), parallel.Files[i].Result.Issues())
	}
	assert.Equal(t, serial.Stats, parallel.Stats)
}

func TestRunnerCancelledContext(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "doc.md", "# Doc\n")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRunner().Run(ctx, Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	assert.Error(t, err)
}
