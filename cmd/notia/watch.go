package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/aretw0/notia/pkg/discovery"
)

func newWatchCmd(c *cli) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print photo changes as they happen",
		Long: `Watch the picture directories and print every photo that appears, changes
or disappears, followed by the new photo count. Stops on Ctrl+C.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			w := discovery.NewWatcher(app.Scanner,
				discovery.WithDebounce(debounce),
				discovery.WithWatchLogger(app.Logger),
			)
			events, err := w.Watch(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Watching %d directories (%d photos)...\n", len(app.Scanner.Dirs()), len(app.Scanner.Scan()))

			for e := range events {
				mark := ""
				if _, ok := app.Store.GetNote(e.Path); ok {
					mark = " *"
				}
				fmt.Fprintf(out, "%s%s (%d photos)\n", e, mark, len(app.Scanner.Scan()))
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", discovery.DefaultDebounce, "Quiet period before reporting a change")
	return cmd
}
