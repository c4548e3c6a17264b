package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/logger"
	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/pkg/theme"
)

// AppContext bundles the services every command shares. It is filled in by
// the root command before any subcommand runs.
type AppContext struct {
	Log      *logger.Logger
	Composer *theme.Composer
	Output   render.Format
}

func (a *AppContext) init(cmd *cobra.Command, flags *rootFlags) error {
	level := flags.logLevel
	if flags.verbose {
		level = "debug"
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("start", "configuring logging", err, "Use one of debug, info, warn or error for --log-level.")
	}

	output, err := render.ParseFormat(flags.output)
	if err != nil {
		return newCommandError("start", "selecting output format", err, "Use one of text, table, json or yaml for --output.")
	}

	a.Log = log.WithFields(map[string]any{"command": cmd.Name()})
	a.Composer = theme.New(theme.WithLogger(a.Log.Zerolog()))
	a.Output = output
	return nil
}

// Renderer returns a renderer for the command's standard output.
func (a *AppContext) Renderer(cmd *cobra.Command) *render.Renderer {
	return render.New(cmd.OutOrStdout(), a.Output)
}
