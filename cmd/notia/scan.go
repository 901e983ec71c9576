package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

type scanEntry struct {
	Path      string   `json:"path"`
	Annotated bool     `json:"annotated"`
	Note      string   `json:"note,omitempty"`
	Tags      []string `json:"tags,omitempty"`
}

func newScanCmd(c *cli) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List photos found in the picture directories",
		Long: `List image files (jpg, jpeg, png, gif, bmp, webp) found directly inside the
pictures and downloads folders. Annotated photos are marked with '*'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			photos := app.Scanner.Scan()
			entries := make([]scanEntry, 0, len(photos))
			for _, p := range photos {
				e := scanEntry{Path: p}
				if a, ok := app.Store.GetNote(p); ok {
					e.Annotated = true
					e.Note = a.Note
					e.Tags = a.Tags
				}
				entries = append(entries, e)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, entries)
			}

			if len(entries) == 0 {
				fmt.Fprintln(out, "No photos found.")
				return nil
			}
			for _, e := range entries {
				mark := " "
				if e.Annotated {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s %s\n", mark, e.Path, formatTags(e.Tags))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
