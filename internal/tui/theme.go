package tui

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettekit/pkg/palette"
)

// Shade is a 1-based position in a 10-step preset ramp. Shade6 is the preset
// colour itself in the light ramp.
type Shade int

const (
	Shade1 Shade = iota + 1
	Shade2
	Shade3
	Shade4
	Shade5
	Shade6
	Shade7
	Shade8
	Shade9
	Shade10
)

const shadeCount = int(Shade10)

// Families the browser chrome draws from.
const (
	FamilyPrimary = "arcoblue"
	FamilySection = "cyan"
	FamilyAccent  = "magenta"
	FamilyDanger  = "red"
	FamilyNeutral = palette.GrayName
)

type shades [shadeCount]lipgloss.Color

func shadesOf(colors []string) shades {
	var s shades
	for i := 0; i < shadeCount && i < len(colors); i++ {
		s[i] = lipgloss.Color(colors[i])
	}
	return s
}

type presetShades struct {
	light map[string]shades
	dark  map[string]shades
}

var loadPresetShades = sync.OnceValue(func() presetShades {
	out := presetShades{light: map[string]shades{}, dark: map[string]shades{}}
	palettes, err := palette.PresetPalettes(palette.DefaultPresets())
	if err != nil {
		palettes = []palette.PresetPalette{palette.GrayPalette()}
	}
	for _, p := range palettes {
		out.light[p.Name] = shadesOf(p.Light)
		out.dark[p.Name] = shadesOf(p.Dark)
	}
	return out
})

// Theme colours the browser with the preset palettes, using their dark ramps
// when dark is set.
type Theme struct {
	families map[string]shades
}

// NewTheme returns the light or dark chrome theme.
func NewTheme(dark bool) Theme {
	loaded := loadPresetShades()
	if dark {
		return Theme{families: loaded.dark}
	}
	return Theme{families: loaded.light}
}

// Color returns one shade of a family. Unknown families and out-of-range
// shades return the empty colour, which lipgloss treats as unset.
func (t Theme) Color(family string, shade Shade) lipgloss.Color {
	s, ok := t.families[family]
	if !ok || shade < Shade1 || shade > Shade10 {
		return ""
	}
	return s[shade-1]
}

type styles struct {
	title   lipgloss.Style
	section lipgloss.Style
	cursor  lipgloss.Style
	key     lipgloss.Style
	err     lipgloss.Style
	muted   lipgloss.Style
	help    lipgloss.Style
}

func (t Theme) styles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true).Foreground(t.Color(FamilyPrimary, Shade6)),
		section: lipgloss.NewStyle().Bold(true).Foreground(t.Color(FamilySection, Shade7)).MarginTop(1),
		cursor:  lipgloss.NewStyle().Bold(true).Foreground(t.Color(FamilyAccent, Shade6)),
		key:     lipgloss.NewStyle().Foreground(t.Color(FamilyNeutral, Shade7)),
		err:     lipgloss.NewStyle().Bold(true).Foreground(t.Color(FamilyDanger, Shade6)),
		muted:   lipgloss.NewStyle().Foreground(t.Color(FamilyNeutral, Shade6)),
		help:    lipgloss.NewStyle().MarginTop(1),
	}
}
