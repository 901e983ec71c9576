package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aretw0/notia/pkg/core"
)

func newTagCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage photo tags",
	}
	cmd.AddCommand(newTagAddCmd(c), newTagRmCmd(c), newTagLsCmd(c))
	return cmd
}

func newTagAddCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "add <photo> <tag>...",
		Short: "Add tags to a photo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			path := absPath(args[0])
			out := app.Store.Batch(cmd.Context(), func(b *core.Batch) {
				for _, tag := range args[1:] {
					b.AddTag(path, tag)
				}
			})
			if err := checkSaved(out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", path, formatTags(app.Store.GetTags(path)))
			return nil
		},
	}
}

func newTagRmCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <photo> <tag>...",
		Short: "Remove tags from a photo",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			path := absPath(args[0])
			out := app.Store.Batch(cmd.Context(), func(b *core.Batch) {
				for _, tag := range args[1:] {
					b.RemoveTag(path, tag)
				}
			})
			if err := checkSaved(out); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", path, formatTags(app.Store.GetTags(path)))
			return nil
		},
	}
}

func newTagLsCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "ls <photo>",
		Short: "List the tags of a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			for _, tag := range app.Store.GetTags(absPath(args[0])) {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}
