package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var sections []string

	header := fmt.Sprintf("palettekit • %s", m.mode)
	if m.dark {
		header += " (dark)"
	}
	sections = append(sections, m.styles.title.Render(header))

	if m.input.Focused() {
		sections = append(sections, m.input.View())
	} else if m.seed == "" {
		sections = append(sections, m.styles.muted.Render("no seed colour, press / to enter one"))
	} else {
		sections = append(sections, m.styles.key.Render("seed ")+m.seed)
	}

	if m.err != nil {
		sections = append(sections, m.styles.err.Render(m.err.Error()))
	}

	row := 0
	for _, section := range m.sections {
		sections = append(sections, m.styles.section.Render(section.Title))
		lines := make([]string, 0, len(section.Entries))
		for _, entry := range section.Entries {
			lines = append(lines, m.renderRow(entry, row == m.cursor))
			row++
		}
		sections = append(sections, strings.Join(lines, "\n"))
	}

	sections = append(sections, m.styles.help.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderRow(entry render.Entry, selected bool) string {
	marker := "  "
	if selected {
		marker = m.styles.cursor.Render("> ")
	}
	return fmt.Sprintf("%s%s %s %s",
		marker,
		m.styles.key.Render(fmt.Sprintf("%-12s", entry.Key)),
		render.Swatch(lipgloss.DefaultRenderer(), entry.Value),
		entry.Value,
	)
}
