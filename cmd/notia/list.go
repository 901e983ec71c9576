package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every annotated photo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			all := app.Store.All()
			out := cmd.OutOrStdout()

			if asJSON {
				views := make([]annotationView, 0, len(all))
				for _, a := range all {
					views = append(views, viewOf(a))
				}
				return writeJSON(out, views)
			}

			for _, a := range all {
				fmt.Fprintf(out, "%s %s\n", a.Path, formatTags(a.Tags))
				if a.Note != "" {
					fmt.Fprintf(out, "    %s\n", a.Note)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
