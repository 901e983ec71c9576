package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClearCmd(c *cli) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every note and tag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to delete all notes without --yes")
			}

			app, err := c.open()
			if err != nil {
				return err
			}

			n := app.Store.Len()
			if err := checkSaved(app.Store.ClearAll(cmd.Context())); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d annotations.\n", n)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Confirm deletion")
	return cmd
}
