package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const seed = "#3491fa"

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		updated, _ := m.Update(msg)
		m = updated.(Model)
	}
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelListsPalette(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	require.NoError(t, m.Err())
	require.Equal(t, ViewPalette, m.Mode())

	rows := m.Rows()
	require.Len(t, rows, 10)
	require.Equal(t, "1", rows[0].Key)
	require.Equal(t, "#e5f6fe", rows[0].Value)
	require.Equal(t, seed, rows[5].Value)
}

func TestCursorMovement(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	m = press(t, m, tea.KeyMsg{Type: tea.KeyUp})
	require.Equal(t, 0, m.Cursor())

	m = press(t, m, runes("j"), runes("j"), tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, 3, m.Cursor())

	for i := 0; i < 20; i++ {
		m = press(t, m, runes("j"))
	}
	require.Equal(t, 9, m.Cursor())

	m = press(t, m, runes("k"))
	require.Equal(t, 8, m.Cursor())
}

func TestToggleModeAndDark(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	m = press(t, m, runes("d"))
	require.True(t, m.Dark())
	require.Equal(t, "#00174d", m.Rows()[0].Value)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, ViewTheme, m.Mode())
	require.Equal(t, "theme-1", m.Rows()[0].Key)
	require.Len(t, m.Rows(), 10+12+4*10)
	require.Equal(t, "#022e60", m.Rows()[0].Value)

	m = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, ViewPalette, m.Mode())
}

func TestEditSeed(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	m = press(t, m, runes("/"))
	require.True(t, m.Editing())

	for i := 0; i < len(seed); i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	}
	m = press(t, m, runes("#f53f3f"), tea.KeyMsg{Type: tea.KeyEnter})
	require.False(t, m.Editing())
	require.Equal(t, "#f53f3f", m.Seed())
	require.Equal(t, "#fde7e4", m.Rows()[0].Value)
}

func TestEditCancelKeepsSeed(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	m = press(t, m, runes("/"), runes("zz"), tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Editing())
	require.Equal(t, seed, m.Seed())
}

func TestInvalidSeedKeepsRows(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	m = press(t, m, SeedMsg{Seed: "not-a-color"})
	require.Error(t, m.Err())
	require.Len(t, m.Rows(), 10)
	require.Contains(t, m.View(), "not-a-color")

	m = press(t, m, SeedMsg{Seed: "#00b42a"})
	require.NoError(t, m.Err())
}

func TestEmptySeed(t *testing.T) {
	t.Parallel()

	m := NewModel("", nil)
	require.Empty(t, m.Rows())
	require.Contains(t, m.View(), "press / to enter one")
}

func TestQuit(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	updated, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Empty(t, updated.(Model).View())
}

func TestViewShowsRows(t *testing.T) {
	t.Parallel()

	m := NewModel(seed, nil)
	m = press(t, m, tea.WindowSizeMsg{Width: 80, Height: 40})

	view := m.View()
	require.Contains(t, view, "palettekit")
	require.Contains(t, view, "light")
	require.Contains(t, view, "#02184d")
	require.Contains(t, view, "> ")
}
