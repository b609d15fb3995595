package reporter

import "path/filepath"

// relativePath converts an absolute path to a path relative to workDir.
// If workDir is empty or conversion fails, the original path is returned.
func relativePath(path, workDir string) string {
	if workDir == "" {
		return path
	}
	rel, err := filepath.Rel(workDir, path)
	if err != nil {
		return path
	}
	return rel
}
