package platform

import (
	"os"
	"path/filepath"
	"strings"
)

// IsDevRun checks if the current process is running via `go run` or `go test`.
// It relies on the fact that these commands build binaries in temporary directories.
func IsDevRun() bool {
	exe, err := os.Executable()
	if err != nil {
		return false
	}

	if strings.HasPrefix(strings.ToLower(exe), strings.ToLower(os.TempDir())) {
		return true
	}

	return strings.HasSuffix(exe, ".test") || strings.HasSuffix(exe, ".test.exe")
}

// ResolveNotesPath determines the notes file actually used. With forceTemp,
// a path outside the temp dir is re-rooted into <temp>/notia-dev so that
// development runs never overwrite real annotations.
func ResolveNotesPath(userPath string, forceTemp bool) string {
	if !forceTemp {
		return userPath
	}

	// Paths already under the temp dir (t.TempDir()) are trusted as is.
	clean := filepath.Clean(userPath)
	rel, err := filepath.Rel(os.TempDir(), clean)
	if err == nil && !strings.HasPrefix(rel, "..") && filepath.IsAbs(clean) {
		return clean
	}

	name := filepath.Base(clean)
	if name == "." || name == string(os.PathSeparator) || name == "" {
		name = NotesFileName
	}
	return filepath.Join(os.TempDir(), "notia-dev", name)
}
