package platform

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// NotesFileName is the default annotations file inside the home directory.
const NotesFileName = ".notia_notes.json"

// Localized folder names checked next to the English ones.
var (
	pictureFolders  = []string{"Pictures", "Resimler"}
	downloadFolders = []string{"Downloads", "İndirilenler"}
)

// HomeDir returns the user's home directory, or "." when it is unknown.
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return home
}

// WellKnownDirectories returns the candidate photo directories for home in
// scan order: the pictures dir, its localized variants, then the downloads
// dir and its variants. Entries may not exist and may repeat.
func WellKnownDirectories(home string) []string {
	var dirs []string

	if d := xdgUserDir(home, "PICTURES"); d != "" {
		dirs = append(dirs, d)
	}
	for _, name := range pictureFolders {
		dirs = append(dirs, filepath.Join(home, name))
	}

	if d := xdgUserDir(home, "DOWNLOAD"); d != "" {
		dirs = append(dirs, d)
	}
	for _, name := range downloadFolders {
		dirs = append(dirs, filepath.Join(home, name))
	}

	return dirs
}

// xdgUserDir resolves XDG_<kind>_DIR from the environment or from
// user-dirs.dirs. Returns "" when unset.
func xdgUserDir(home, kind string) string {
	key := "XDG_" + kind + "_DIR"
	if v := os.Getenv(key); v != "" {
		return expandHome(v, home)
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = filepath.Join(home, ".config")
	}

	f, err := os.Open(filepath.Join(configHome, "user-dirs.dirs"))
	if err != nil {
		return ""
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if strings.HasPrefix(line, "#") {
			continue
		}
		k, v, ok := strings.Cut(line, "=")
		if !ok || strings.TrimSpace(k) != key {
			continue
		}
		v = strings.Trim(strings.TrimSpace(v), `"`)
		v = strings.ReplaceAll(v, "$HOME", home)
		// xdg-user-dirs points unset dirs at $HOME itself
		if filepath.Clean(v) == filepath.Clean(home) {
			return ""
		}
		return v
	}
	return ""
}

// expandHome replaces a leading "~" or "$HOME".
func expandHome(path, home string) string {
	switch {
	case path == "~":
		return home
	case strings.HasPrefix(path, "~/"):
		return filepath.Join(home, path[2:])
	case strings.HasPrefix(path, "$HOME"):
		return home + path[len("$HOME"):]
	}
	return path
}
