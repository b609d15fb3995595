package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDiscoverDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "readme.md", "# Readme\n")
	writeFile(t, dir, "guide.markdown", "# Guide\n")
	writeFile(t, dir, "notes.txt", "not markdown\n")
	writeFile(t, dir, "sub/deep.md", "# Deep\n")

	files, err := Discover(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)

	var names []string
	for _, f := range files {
		rel, relErr := filepath.Rel(dir, f)
		require.NoError(t, relErr)
		names = append(names, filepath.ToSlash(rel))
	}
	assert.Equal(t, []string{"guide.markdown", "readme.md", "sub/deep.md"}, names)
}

func TestDiscoverExplicitFileIgnoresExtension(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "notes.txt", "plain\n")

	files, err := Discover(context.Background(), Options{
		Paths:      []string{path},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestDiscoverMissingPathFails(t *testing.T) {
	_, err := Discover(context.Background(), Options{
		Paths:      []string{"no-such-file.md"},
		WorkingDir: t.TempDir(),
	})
	assert.Error(t, err)
}

func TestDiscoverExcludeGlobs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.md", "# Keep\n")
	writeFile(t, dir, "vendor/dep.md", "# Dep\n")
	writeFile(t, dir, "docs/draft.md", "# Draft\n")

	tests := []struct {
		name     string
		excludes []string
		want     []string
	}{
		{
			name:     "directory subtree",
			excludes: []string{"vendor/**"},
			want:     []string{"docs/draft.md", "keep.md"},
		},
		{
			name:     "anywhere pattern",
			excludes: []string{"**/draft.md"},
			want:     []string{"keep.md", "vendor/dep.md"},
		},
		{
			name:     "filename glob",
			excludes: []string{"*.md"},
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files, err := Discover(context.Background(), Options{
				Paths:        []string{"."},
				WorkingDir:   dir,
				ExcludeGlobs: tt.excludes,
			})
			require.NoError(t, err)

			names := make([]string, 0, len(files))
			for _, f := range files {
				rel, relErr := filepath.Rel(dir, f)
				require.NoError(t, relErr)
				names = append(names, filepath.ToSlash(rel))
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestDiscoverSkipsHiddenEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "visible.md", "# Visible\n")
	writeFile(t, dir, ".hidden.md", "# Hidden\n")
	writeFile(t, dir, ".git/objects.md", "# Git\n")

	files, err := Discover(context.Background(), Options{
		Paths:      []string{"."},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "visible.md", filepath.Base(files[0]))
}

func TestDiscoverDeduplicatesOverlappingPaths(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "doc.md", "# Doc\n")

	files, err := Discover(context.Background(), Options{
		Paths:      []string{".", path, "doc.md"},
		WorkingDir: dir,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestMatchGlob(t *testing.T) {
	tests := []struct {
		path    string
		pattern string
		want    bool
	}{
		{path: "readme.md", pattern: "*.md", want: true},
		{path: "docs/readme.md", pattern: "*.md", want: true}, // basename fallback
		{path: "vendor/a/b.md", pattern: "vendor/**", want: true},
		{path: "vendored.md", pattern: "vendor/**", want: false},
		{path: "a/node_modules/b.md", pattern: "**/node_modules", want: true},
		{path: "docs/api/v1.md", pattern: "docs/**/v1.md", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" vs "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchGlob(tt.path, tt.pattern))
		})
	}
}
