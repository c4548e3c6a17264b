package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/palettekit/pkg/palette"
)

func TestThemeUsesPresetRamps(t *testing.T) {
	t.Parallel()

	light := NewTheme(false)
	require.Equal(t, lipgloss.Color("#165dff"), light.Color(FamilyPrimary, Shade6))
	require.Equal(t, lipgloss.Color("#f7f8fa"), light.Color(FamilyNeutral, Shade1))
	require.Equal(t, lipgloss.Color("#1d2129"), light.Color(FamilyNeutral, Shade10))
	require.Equal(t, lipgloss.Color(palette.GrayPalette().Primary), light.Color(FamilyNeutral, Shade7))

	dark := NewTheme(true)
	require.Equal(t, lipgloss.Color("#17171a"), dark.Color(FamilyNeutral, Shade1))
	require.Equal(t, lipgloss.Color("#f6f6f6"), dark.Color(FamilyNeutral, Shade10))
	require.NotEqual(t, light.Color(FamilyDanger, Shade6), dark.Color(FamilyDanger, Shade6))
}

func TestThemeSeedShadeMatchesPreset(t *testing.T) {
	t.Parallel()

	th := NewTheme(false)
	for _, p := range palette.DefaultPresets() {
		require.Equal(t, lipgloss.Color(strings.ToLower(p.Color)), th.Color(p.Name, Shade6), p.Name)
	}
}

func TestThemeUnknownLookups(t *testing.T) {
	t.Parallel()

	th := NewTheme(false)
	require.Equal(t, lipgloss.Color(""), th.Color("chartreuse", Shade5))
	require.Equal(t, lipgloss.Color(""), th.Color(FamilyPrimary, Shade(0)))
	require.Equal(t, lipgloss.Color(""), th.Color(FamilyPrimary, Shade10+1))
}

func TestChromeStylesUseSeedShades(t *testing.T) {
	t.Parallel()

	st := NewTheme(false).styles()
	require.Equal(t, lipgloss.Color("#165dff"), st.title.GetForeground())
	require.Equal(t, lipgloss.Color(palette.GrayPalette().Primary), st.key.GetForeground())
}

func TestDarkToggleSwitchesChrome(t *testing.T) {
	t.Parallel()

	m := NewModel("#3491fa", nil)
	require.Equal(t, NewTheme(false).styles().title.GetForeground(), m.styles.title.GetForeground())

	dm := press(t, m, runes("d"))
	require.True(t, dm.Dark())
	require.Equal(t, NewTheme(true).styles().title.GetForeground(), dm.styles.title.GetForeground())
}
