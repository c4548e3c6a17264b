package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
)

type rootFlags struct {
	verbose  bool
	logLevel string
	output   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "palettekit",
		Short:         "palettekit generates colour palettes and design-system ramps from a seed colour",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.init(cmd, flags)
		},
	}

	formats := make([]string, 0, len(render.Formats()))
	for _, f := range render.Formats() {
		formats = append(formats, string(f))
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVarP(&flags.output, "output", "o", string(render.FormatText), "Output format ("+strings.Join(formats, ", ")+")")

	cmd.AddCommand(newGenerateCmd(app))
	cmd.AddCommand(newRGBStrCmd(app))
	cmd.AddCommand(newLinearCmd(app))
	cmd.AddCommand(newGrayCmd(app))
	cmd.AddCommand(newMonoCmd(app))
	cmd.AddCommand(newHCTCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newPresetsCmd(app))
	cmd.AddCommand(newExtractCmd(app))
	cmd.AddCommand(newBrowseCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
