package palette

import (
	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
)

// Preset is a named brand colour.
type Preset struct {
	Name  string
	Color string
}

// PresetPalette holds the light and dark ramps generated for a preset.
type PresetPalette struct {
	Name    string   `json:"name" yaml:"name"`
	Primary string   `json:"primary" yaml:"primary"`
	Light   []string `json:"light" yaml:"light"`
	Dark    []string `json:"dark" yaml:"dark"`
}

// GrayName is the key of the fixed neutral palette appended by PresetPalettes.
const GrayName = "gray"

// DefaultPresets returns the built-in brand colours in display order. Each
// call returns a fresh slice.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "red", Color: "#F53F3F"},
		{Name: "orangered", Color: "#F77234"},
		{Name: "orange", Color: "#FF7D00"},
		{Name: "gold", Color: "#F7BA1E"},
		{Name: "yellow", Color: "#FADC19"},
		{Name: "lime", Color: "#9FDB1D"},
		{Name: "green", Color: "#00B42A"},
		{Name: "cyan", Color: "#14C9C9"},
		{Name: "blue", Color: "#3491FA"},
		{Name: "arcoblue", Color: "#165DFF"},
		{Name: "purple", Color: "#722ED1"},
		{Name: "pinkpurple", Color: "#D91AD9"},
		{Name: "magenta", Color: "#F5319D"},
	}
}

// GrayPalette returns the fixed neutral ramps.
func GrayPalette() PresetPalette {
	light := []string{
		"#f7f8fa", "#f2f3f5", "#e5e6eb", "#c9cdd4", "#a9aeb8",
		"#86909c", "#6b7785", "#4e5969", "#272e3b", "#1d2129",
	}
	dark := []string{
		"#17171a", "#2e2e30", "#484849", "#5f5f60", "#78787a",
		"#929293", "#ababac", "#c5c5c5", "#dfdfdf", "#f6f6f6",
	}
	return PresetPalette{
		Name:    GrayName,
		Primary: light[6],
		Light:   light,
		Dark:    dark,
	}
}

// PresetPalettes expands every preset into its light and dark ramps and
// appends the neutral gray palette. Presets whose colour does not parse are
// reported as an error.
func PresetPalettes(presets []Preset) ([]PresetPalette, error) {
	out := make([]PresetPalette, 0, len(presets)+1)
	for _, p := range presets {
		seed, err := colormodel.Parse(p.Color)
		if err != nil {
			return nil, err
		}
		out = append(out, PresetPalette{
			Name:    p.Name,
			Primary: p.Color,
			Light:   FormatRamp(seed, false, colormodel.FormatHex),
			Dark:    FormatRamp(seed, true, colormodel.FormatHex),
		})
	}
	return append(out, GrayPalette()), nil
}
