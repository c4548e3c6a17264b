package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
)

type rgbStrPayload struct {
	Color string `json:"color" yaml:"color"`
	RGB   string `json:"rgb" yaml:"rgb"`
}

func newRGBStrCmd(app *AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rgbstr <color>",
		Short: "Print a colour as comma-separated RGB channels",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rgb, err := colormodel.RGBStr(args[0])
			if err != nil {
				return newCommandError("convert colour", fmt.Sprintf("reading %q", args[0]), err, suggestFor(err))
			}
			return app.Renderer(cmd).Render(rgbStrPayload{Color: args[0], RGB: rgb}, render.Values("", []string{rgb}))
		},
	}
}
