package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SeedMsg:
		m.seed = strings.TrimSpace(msg.Seed)
		m.cursor = 0
		m.refresh()
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.input.Focused() {
			return m.updateInput(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyCtrlC:
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Apply):
		m.input.Blur()
		if value := strings.TrimSpace(m.input.Value()); value != "" {
			m.seed = value
			m.cursor = 0
			m.refresh()
		}
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.input.Blur()
		m.input.SetValue(m.seed)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Cancel):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.Rows())-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Edit):
		m.input.SetValue(m.seed)
		m.input.CursorEnd()
		return m, m.input.Focus()
	case key.Matches(msg, m.keys.Mode):
		if m.mode == ViewPalette {
			m.mode = ViewTheme
		} else {
			m.mode = ViewPalette
		}
		m.cursor = 0
		m.refresh()
	case key.Matches(msg, m.keys.Dark):
		m.dark = !m.dark
		m.styles = NewTheme(m.dark).styles()
		m.refresh()
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}
