// Package discovery finds photo files in a fixed list of directories and
// reports changes to them.
package discovery

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExtensions are the photo file extensions recognized when no
// override is configured.
var DefaultExtensions = []string{"jpg", "jpeg", "png", "gif", "bmp", "webp"}

// Scanner lists photo files found directly inside its directories.
// It never recurses and never fails: unreadable directories are skipped.
type Scanner struct {
	dirs       []string
	extensions []string
	pattern    string
	sorted     bool
	logger     *slog.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithExtensions replaces the recognized extensions. Leading dots and case
// are ignored. An empty list keeps the defaults.
func WithExtensions(exts ...string) Option {
	return func(s *Scanner) {
		var clean []string
		for _, e := range exts {
			e = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(e), "."))
			if e != "" && !slices.Contains(clean, e) {
				clean = append(clean, e)
			}
		}
		if len(clean) > 0 {
			s.extensions = clean
		}
	}
}

// WithSorted makes Scan return paths in lexical order instead of directory
// order.
func WithSorted(sorted bool) Option {
	return func(s *Scanner) {
		s.sorted = sorted
	}
}

// WithLogger sets the logger used for skipped directories.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewScanner creates a Scanner over dirs. Directories are made absolute and
// duplicates are dropped, keeping the first occurrence.
func NewScanner(dirs []string, opts ...Option) *Scanner {
	s := &Scanner{
		extensions: DefaultExtensions,
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}

	for _, d := range dirs {
		if d == "" {
			continue
		}
		if abs, err := filepath.Abs(d); err == nil {
			d = abs
		}
		d = filepath.Clean(d)
		if !slices.Contains(s.dirs, d) {
			s.dirs = append(s.dirs, d)
		}
	}

	s.pattern = extensionPattern(s.extensions)
	if !doublestar.ValidatePattern(s.pattern) {
		s.logger.Warn("invalid extension list, using defaults", "pattern", s.pattern)
		s.extensions = DefaultExtensions
		s.pattern = extensionPattern(DefaultExtensions)
	}
	return s
}

// extensionPattern matches names with a non-empty stem and one of exts, so
// a bare ".jpg" is not a photo.
func extensionPattern(exts []string) string {
	return "?*.{" + strings.Join(exts, ",") + "}"
}

// Dirs returns the candidate directories in scan order.
func (s *Scanner) Dirs() []string {
	return slices.Clone(s.dirs)
}

// Extensions returns the recognized extensions.
func (s *Scanner) Extensions() []string {
	return slices.Clone(s.extensions)
}

// Match reports whether name has a photo extension, ignoring case.
func (s *Scanner) Match(name string) bool {
	ok, err := doublestar.Match(s.pattern, strings.ToLower(filepath.Base(name)))
	return err == nil && ok
}

// Scan returns the absolute paths of all photo files currently present.
func (s *Scanner) Scan() []string {
	photos := []string{}

	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			if !os.IsNotExist(err) {
				s.logger.Debug("skipping unreadable directory", "dir", dir, "error", err)
			}
			continue
		}

		for _, entry := range entries {
			if !s.Match(entry.Name()) {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			if !isRegular(path, entry) {
				continue
			}
			photos = append(photos, path)
		}
	}

	if s.sorted {
		slices.Sort(photos)
	}
	return photos
}

// isRegular follows symlinks so a link to a photo counts as a photo.
func isRegular(path string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
