package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/notia"
)

// cli carries the persistent flags and the lazily opened application.
type cli struct {
	verbose    bool
	notesFile  string
	configFile string
	dirs       []string
	sorted     bool

	// extra options, set by tests
	opts []notia.Option

	logger *slog.Logger
	app    *notia.App
}

// open builds the application on first use so that flags are parsed first.
func (c *cli) open() (*notia.App, error) {
	if c.app != nil {
		return c.app, nil
	}

	opts := []notia.Option{notia.WithLogger(c.logger)}
	if c.notesFile != "" {
		opts = append(opts, notia.WithNotesFile(c.notesFile))
	}
	if c.configFile != "" {
		opts = append(opts, notia.WithConfigFile(c.configFile))
	}
	if len(c.dirs) > 0 {
		opts = append(opts, notia.WithDirectories(c.dirs...))
	}
	if c.sorted {
		opts = append(opts, notia.WithSorted(true))
	}
	opts = append(opts, c.opts...)

	app, err := notia.Open(opts...)
	if err != nil {
		return nil, err
	}
	c.app = app
	return app, nil
}

// NewRootCmd builds the notia command tree.
func NewRootCmd(version string, opts ...notia.Option) *cobra.Command {
	c := &cli{opts: opts, logger: slog.Default()}

	rootCmd := &cobra.Command{
		Use:   "notia",
		Short: "Attach notes and tags to the photos on your disk",
		Long: `notia finds photos in your pictures and downloads folders and keeps
free-text notes and tags for them in a single JSON file.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if c.verbose {
				level = slog.LevelDebug
			}

			opts := &slog.HandlerOptions{
				Level: level,
			}
			c.logger = slog.New(slog.NewTextHandler(os.Stderr, opts))
			slog.SetDefault(c.logger)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")
	flags.StringVar(&c.notesFile, "notes-file", "", "Annotations file (default ~/.notia_notes.json)")
	flags.StringVar(&c.configFile, "config", "", "Config file (default <config dir>/notia/config.yaml)")
	flags.StringSliceVar(&c.dirs, "dir", nil, "Additional photo directory (repeatable)")
	flags.BoolVar(&c.sorted, "sorted", false, "List photos in lexical order")

	rootCmd.AddCommand(
		newScanCmd(c),
		newNoteCmd(c),
		newTagCmd(c),
		newListCmd(c),
		newClearCmd(c),
		newWatchCmd(c),
		newStateCmd(c),
		newConfigCmd(c),
		newVersionCmd(version),
	)

	return rootCmd
}
