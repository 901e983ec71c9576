package main

import (
	"github.com/aretw0/introspection"
	"github.com/spf13/cobra"
)

type stateView struct {
	Store      any `json:"store"`
	Repository any `json:"repository,omitempty"`
}

func newStateCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "state",
		Short: "Print internal store state as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := c.open()
			if err != nil {
				return err
			}

			v := stateView{Store: app.Store.State()}
			if intro, ok := app.Repository.(introspection.Introspectable); ok {
				v.Repository = intro.State()
			}
			return writeJSON(cmd.OutOrStdout(), v)
		},
	}
}
