package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/internal/tui"
)

func newBrowseCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "browse [color]",
		Short: "Browse palettes and interface ramps interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !render.IsTerminal(cmd.OutOrStdout()) {
				return newCommandError("browse", "starting the browser", fmt.Errorf("standard output is not a terminal"), "Run browse from an interactive terminal, or use generate and theme for scripted output.")
			}

			seed := ""
			if len(args) == 1 {
				seed = args[0]
			}
			if err := tui.Run(cmd.Context(), seed, app.Composer); err != nil {
				return newCommandError("browse", "running the browser", err, "Run the command with --verbose for more detail.")
			}
			return nil
		},
	}
}
