package notia

import (
	"log/slog"

	"github.com/aretw0/notia/internal/platform"
	"github.com/aretw0/notia/pkg/core"
	"github.com/aretw0/notia/pkg/discovery"
)

// --- Types ---

// Annotation is a public alias for the core annotation model.
type Annotation = core.Annotation

// Store is a public alias for the annotation store.
type Store = core.Store

// Outcome is a public alias for the store's load/save outcome.
type Outcome = core.Outcome

// Scanner is a public alias for photo discovery.
type Scanner = discovery.Scanner

// App bundles the store, its repository and the scanner.
type App = platform.App

// Settings is the effective configuration.
type Settings = platform.Settings

// --- Configuration ---

// Option defines a functional option for configuring notia.
type Option = platform.Option

// WithNotesFile sets the annotations file (default ~/.notia_notes.json).
func WithNotesFile(path string) Option {
	return platform.WithNotesFile(path)
}

// WithConfigFile sets the YAML config file location.
func WithConfigFile(path string) Option {
	return platform.WithConfigFile(path)
}

// WithoutConfigFile ignores any config file on disk.
func WithoutConfigFile() Option {
	return platform.WithoutConfigFile()
}

// WithDirectories adds photo directories after the well-known ones.
func WithDirectories(dirs ...string) Option {
	return platform.WithDirectories(dirs...)
}

// WithOnlyDirectories scans exactly the given directories.
func WithOnlyDirectories(dirs ...string) Option {
	return platform.WithOnlyDirectories(dirs...)
}

// WithExtensions overrides the recognized photo extensions.
func WithExtensions(exts ...string) Option {
	return platform.WithExtensions(exts...)
}

// WithSorted makes scans return paths in lexical order.
func WithSorted(sorted bool) Option {
	return platform.WithSorted(sorted)
}

// WithHome overrides the home directory used for default paths.
func WithHome(home string) Option {
	return platform.WithHome(home)
}

// WithDevSafety controls re-rooting of the notes file during `go run`/`go test`.
func WithDevSafety(enabled bool) Option {
	return platform.WithDevSafety(enabled)
}

// WithForceTemp always re-roots the notes file into the temp dir.
func WithForceTemp(force bool) Option {
	return platform.WithForceTemp(force)
}

// WithLogger sets the logger for every component.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithRepository injects a custom storage adapter.
func WithRepository(repo core.Repository) Option {
	return platform.WithRepository(repo)
}

// WithoutLoad skips reading persisted state on open.
func WithoutLoad() Option {
	return platform.WithoutLoad()
}

// --- Factory ---

// Open builds the store and scanner and loads persisted annotations.
func Open(opts ...Option) (*App, error) {
	return platform.Open(opts...)
}

// New returns a loaded Store.
func New(opts ...Option) (*core.Store, error) {
	return platform.New(opts...)
}

// NewScanner returns a Scanner over the configured directories.
func NewScanner(opts ...Option) (*discovery.Scanner, error) {
	return platform.NewScanner(opts...)
}

// Resolve returns the effective settings without opening anything.
func Resolve(opts ...Option) (Settings, error) {
	return platform.Resolve(opts...)
}
