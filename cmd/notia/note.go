package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newNoteCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Read and write photo notes",
	}
	cmd.AddCommand(newNoteSetCmd(c), newNoteGetCmd(c), newNoteRmCmd(c))
	return cmd
}

func newNoteSetCmd(c *cli) *cobra.Command {
	var tags []string

	cmd := &cobra.Command{
		Use:   "set <photo> <text>...",
		Short: "Create or replace the note of a photo",
		Long: `Create or replace the note of a photo. Existing tags are kept.
With --tag, the whole record is replaced and the given tags become the tag set.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args[1:], " ")
			if strings.TrimSpace(text) == "" {
				return fmt.Errorf("note text is empty; use 'notia note rm' to delete a note")
			}

			app, err := c.open()
			if err != nil {
				return err
			}

			path := absPath(args[0])
			if cmd.Flags().Changed("tag") {
				rec, _ := app.Store.GetNote(path)
				rec.Path = path
				rec.Note = text
				rec.Tags = tags
				rec.Timestamp = time.Time{}
				if err := checkSaved(app.Store.ReplaceRecord(cmd.Context(), rec)); err != nil {
					return err
				}
			} else if err := checkSaved(app.Store.AddOrUpdateNote(cmd.Context(), path, text)); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Note saved for %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&tags, "tag", nil, "Replace the tag set (repeatable)")
	return cmd
}

func newNoteGetCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <photo>",
		Short: "Show the note and tags of a photo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			path := absPath(args[0])
			out := cmd.OutOrStdout()
			a, ok := app.Store.GetNote(path)

			if asJSON {
				if !ok {
					return writeJSON(out, nil)
				}
				return writeJSON(out, viewOf(a))
			}

			if !ok {
				fmt.Fprintln(out, "No note yet.")
				return nil
			}
			fmt.Fprintf(out, "Note: %s\n", a.Timestamp.Format(time.RFC3339))
			if len(a.Tags) > 0 {
				fmt.Fprintf(out, "Tags: %s\n", strings.Join(a.Tags, ", "))
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, a.Note)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}

func newNoteRmCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <photo>",
		Aliases: []string{"delete"},
		Short:   "Delete the note and tags of a photo",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			path := absPath(args[0])
			if err := checkSaved(app.Store.RemoveNote(cmd.Context(), path)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Note removed for %s\n", path)
			return nil
		},
	}
}
