// Package tui is an interactive ramp browser: type a seed colour and step
// through its palette or its interface colour system.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/palettekit/internal/render"
	"github.com/alexisbeaulieu97/palettekit/pkg/palette"
	"github.com/alexisbeaulieu97/palettekit/pkg/theme"
)

// ViewMode selects what the browser shows for the seed.
type ViewMode int

const (
	// ViewPalette lists the 10-step palette of the seed.
	ViewPalette ViewMode = iota
	// ViewTheme lists the controls, semantic and theme ramps.
	ViewTheme
)

func (v ViewMode) String() string {
	if v == ViewTheme {
		return "theme"
	}
	return "palette"
}

// SeedMsg replaces the seed colour.
type SeedMsg struct {
	Seed string
}

// Model is the bubbletea state of the browser.
type Model struct {
	generator *palette.Generator
	composer  *theme.Composer

	input textinput.Model
	help  help.Model
	keys  keyMap

	styles styles

	seed     string
	mode     ViewMode
	dark     bool
	sections []render.Section
	cursor   int
	err      error
	quitting bool

	width int
}

// NewModel returns a browser showing seed. A nil composer uses theme.New().
func NewModel(seed string, composer *theme.Composer) Model {
	if composer == nil {
		composer = theme.New()
	}

	input := textinput.New()
	input.Placeholder = "#3491fa"
	input.Prompt = "seed> "
	input.CharLimit = 64

	m := Model{
		generator: palette.NewGenerator(nil),
		composer:  composer,
		input:     input,
		help:      help.New(),
		keys:      defaultKeyMap(),
		styles:    NewTheme(false).styles(),
		seed:      strings.TrimSpace(seed),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Seed returns the current seed colour.
func (m Model) Seed() string {
	return m.seed
}

// Mode returns the current view mode.
func (m Model) Mode() ViewMode {
	return m.mode
}

// Dark reports whether dark ramps are shown.
func (m Model) Dark() bool {
	return m.dark
}

// Cursor returns the index of the highlighted row.
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the error of the last seed, if any.
func (m Model) Err() error {
	return m.err
}

// Rows returns the flattened rows currently listed.
func (m Model) Rows() []render.Entry {
	var rows []render.Entry
	for _, section := range m.sections {
		rows = append(rows, section.Entries...)
	}
	return rows
}

// Editing reports whether the seed input has focus.
func (m Model) Editing() bool {
	return m.input.Focused()
}

// refresh recomputes the sections for the current seed, mode and dark flag.
// A failing seed keeps the previous sections and records the error.
func (m *Model) refresh() {
	if m.seed == "" {
		m.sections = nil
		m.err = nil
		return
	}

	sections, err := m.compute()
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.sections = sections
	if rows := len(m.Rows()); m.cursor >= rows {
		m.cursor = max(0, rows-1)
	}
}

func (m *Model) compute() ([]render.Section, error) {
	if m.mode == ViewTheme {
		system, err := m.composer.Interface(m.seed, theme.InterfaceOptions{Dark: m.dark})
		if err != nil {
			return nil, err
		}
		sections := []render.Section{render.RampSection(system.Theme), render.RampSection(system.Controls)}
		for _, ramp := range system.Semantic {
			sections = append(sections, render.RampSection(ramp))
		}
		return sections, nil
	}

	colors, err := m.generator.List(m.seed, palette.Options{Dark: m.dark})
	if err != nil {
		return nil, err
	}
	title := "light"
	if m.dark {
		title = "dark"
	}
	return []render.Section{render.Indexed(title, colors)}, nil
}

// Run starts the browser on the terminal and blocks until it exits or ctx is
// cancelled.
func Run(ctx context.Context, seed string, composer *theme.Composer) error {
	program := tea.NewProgram(NewModel(seed, composer), tea.WithContext(ctx), tea.WithAltScreen())
	_, err := program.Run()
	return err
}
