package render

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
)

// Label colours drawn on top of swatches.
const (
	darkLabel  = "#000000"
	lightLabel = "#ffffff"
)

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// LabelColor returns black or white, whichever reads better on top of the
// given colour. Unparseable colours get a dark label.
func LabelColor(value string) string {
	c, err := colormodel.Parse(value)
	if err != nil {
		return darkLabel
	}
	cf, err := colorful.Hex(c.Hex())
	if err != nil {
		return darkLabel
	}
	l, _, _ := cf.Lab()
	if l > 0.6 {
		return darkLabel
	}
	return lightLabel
}

// Swatch renders value as a filled block labelled with its text. The
// renderer decides whether colour escape sequences are emitted.
func Swatch(r *lipgloss.Renderer, value string) string {
	c, err := colormodel.Parse(value)
	if err != nil {
		return ""
	}
	return r.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(LabelColor(value))).
		Padding(0, 1).
		Render(value)
}
