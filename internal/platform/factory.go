package platform

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aretw0/notia/pkg/adapters/fs"
	"github.com/aretw0/notia/pkg/core"
	"github.com/aretw0/notia/pkg/discovery"
)

// Settings is the effective configuration after merging defaults, the
// config file and options. Options win over the file.
type Settings struct {
	NotesFile   string   `yaml:"notes_file" json:"notes_file"`
	ConfigFile  string   `yaml:"config_file" json:"config_file"`
	Directories []string `yaml:"directories" json:"directories"`
	Extensions  []string `yaml:"extensions" json:"extensions"`
	Sorted      bool     `yaml:"sorted" json:"sorted"`
}

// App bundles the components a presentation layer needs.
type App struct {
	Settings   Settings
	Store      *core.Store
	Repository core.Repository
	Scanner    *discovery.Scanner
	Logger     *slog.Logger
}

// Resolve computes the effective settings for opts. An unreadable config
// file is an error only when it was named with WithConfigFile.
func Resolve(opts ...Option) (Settings, error) {
	s, _, err := resolve(opts)
	return s, err
}

func resolve(opts []Option) (Settings, *options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}

	home := o.home
	if home == "" {
		home = HomeDir()
	}

	s := Settings{ConfigFile: o.configFile}
	if s.ConfigFile == "" {
		s.ConfigFile = DefaultConfigPath()
	}

	cfg := &Config{}
	if !o.skipConfig {
		loaded, err := LoadConfig(s.ConfigFile)
		switch {
		case err != nil && o.configFile != "":
			return Settings{}, nil, err
		case err != nil:
			// An unreadable default config must not block startup.
			o.logger.Warn("ignoring unreadable config file", "path", s.ConfigFile, "error", err)
		default:
			cfg = loaded
		}
	}

	s.NotesFile = o.notesFile
	if s.NotesFile == "" {
		s.NotesFile = cfg.NotesFile
	}
	if s.NotesFile == "" {
		s.NotesFile = filepath.Join(home, NotesFileName)
	}
	s.NotesFile = expandHome(s.NotesFile, home)
	if abs, err := filepath.Abs(s.NotesFile); err == nil {
		s.NotesFile = abs
	}
	s.NotesFile = ResolveNotesPath(s.NotesFile, o.forceTemp || (o.devSafety && IsDevRun()))

	if o.replaceDirs {
		s.Directories = o.directories
	} else {
		s.Directories = WellKnownDirectories(home)
		s.Directories = append(s.Directories, cfg.Directories...)
		s.Directories = append(s.Directories, o.directories...)
	}
	for i, d := range s.Directories {
		s.Directories[i] = expandHome(d, home)
	}

	s.Extensions = cfg.Extensions
	if len(o.extensions) > 0 {
		s.Extensions = o.extensions
	}
	if len(s.Extensions) == 0 {
		s.Extensions = discovery.DefaultExtensions
	}

	s.Sorted = cfg.Sort
	if o.sorted != nil {
		s.Sorted = *o.sorted
	}

	return s, o, nil
}

// Open resolves settings, builds every component and loads the store.
// Loading never fails; see core.Store.Load.
func Open(opts ...Option) (*App, error) {
	s, o, err := resolve(opts)
	if err != nil {
		return nil, err
	}

	repo := o.repository
	if repo == nil {
		// The re-rooted dev path may not exist yet.
		if err := os.MkdirAll(filepath.Dir(s.NotesFile), 0755); err != nil {
			o.logger.Warn("cannot create notes directory", "path", s.NotesFile, "error", err)
		}
		repo = fs.NewRepository(fs.Config{
			Path:   s.NotesFile,
			Logger: o.logger,
		})
	}

	store := core.NewStore(repo, o.logger)
	if !o.skipAutoLoad {
		store.Load(context.Background())
	}

	scanner := discovery.NewScanner(s.Directories,
		discovery.WithExtensions(s.Extensions...),
		discovery.WithSorted(s.Sorted),
		discovery.WithLogger(o.logger),
	)

	return &App{
		Settings:   s,
		Store:      store,
		Repository: repo,
		Scanner:    scanner,
		Logger:     o.logger,
	}, nil
}

// New returns a loaded Store.
func New(opts ...Option) (*core.Store, error) {
	app, err := Open(opts...)
	if err != nil {
		return nil, err
	}
	return app.Store, nil
}

// NewScanner returns a Scanner over the configured directories.
func NewScanner(opts ...Option) (*discovery.Scanner, error) {
	s, o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return discovery.NewScanner(s.Directories,
		discovery.WithExtensions(s.Extensions...),
		discovery.WithSorted(s.Sorted),
		discovery.WithLogger(o.logger),
	), nil
}
