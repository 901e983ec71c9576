package platform

import (
	"log/slog"
	"slices"

	"github.com/aretw0/notia/pkg/core"
)

// options holds the internal configuration for the notia store and scanner.
type options struct {
	notesFile    string
	configFile   string
	skipConfig   bool
	directories  []string
	replaceDirs  bool
	extensions   []string
	sorted       *bool
	devSafety    bool
	forceTemp    bool
	home         string
	logger       *slog.Logger
	repository   core.Repository
	skipAutoLoad bool
}

// Option defines a functional option for configuring notia.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		devSafety: true,
	}
}

// WithNotesFile sets the annotations file. Defaults to ~/.notia_notes.json.
func WithNotesFile(path string) Option {
	return func(o *options) {
		o.notesFile = path
	}
}

// WithConfigFile sets the YAML config file location.
// Defaults to <user config dir>/notia/config.yaml.
func WithConfigFile(path string) Option {
	return func(o *options) {
		o.configFile = path
	}
}

// WithoutConfigFile ignores any config file on disk.
func WithoutConfigFile() Option {
	return func(o *options) {
		o.skipConfig = true
	}
}

// WithDirectories adds photo directories after the well-known ones.
func WithDirectories(dirs ...string) Option {
	return func(o *options) {
		o.directories = append(o.directories, dirs...)
	}
}

// WithOnlyDirectories scans exactly dirs, skipping the well-known ones and
// any configured directories.
func WithOnlyDirectories(dirs ...string) Option {
	return func(o *options) {
		o.directories = slices.Clone(dirs)
		o.replaceDirs = true
	}
}

// WithExtensions overrides the recognized photo extensions.
func WithExtensions(exts ...string) Option {
	return func(o *options) {
		o.extensions = slices.Clone(exts)
	}
}

// WithSorted makes scans return paths in lexical order.
func WithSorted(sorted bool) Option {
	return func(o *options) {
		o.sorted = &sorted
	}
}

// WithHome overrides the home directory used to resolve default paths.
func WithHome(home string) Option {
	return func(o *options) {
		o.home = home
	}
}

// WithDevSafety controls the sandbox used when running via `go run` or
// `go test`: the notes file is re-rooted into the temp dir so development
// never touches the real annotations. Enabled by default.
func WithDevSafety(enabled bool) Option {
	return func(o *options) {
		o.devSafety = enabled
	}
}

// WithForceTemp always re-roots the notes file into the temp dir.
func WithForceTemp(force bool) Option {
	return func(o *options) {
		o.forceTemp = force
	}
}

// WithLogger sets the logger shared by the store, repository and scanner.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithRepository injects a custom storage adapter. The notes file option is
// ignored when set.
func WithRepository(repo core.Repository) Option {
	return func(o *options) {
		o.repository = repo
	}
}

// WithoutLoad returns the store without reading persisted state.
func WithoutLoad() Option {
	return func(o *options) {
		o.skipAutoLoad = true
	}
}
