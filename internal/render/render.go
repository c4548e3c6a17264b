// Package render writes command results as plain text, aligned tables, JSON
// or YAML. Text and table output can carry colour swatches.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/palettekit/pkg/theme"
)

// Entry is one labelled value of a section. Entries without a key print the
// value alone.
type Entry struct {
	Key   string
	Value string
}

// Section groups entries under an optional title.
type Section struct {
	Title   string
	Entries []Entry
}

// Values builds a section of unkeyed values.
func Values(title string, values []string) Section {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Value: v}
	}
	return Section{Title: title, Entries: entries}
}

// Indexed builds a section whose keys are the 1-based positions.
func Indexed(title string, values []string) Section {
	entries := make([]Entry, len(values))
	for i, v := range values {
		entries[i] = Entry{Key: strconv.Itoa(i + 1), Value: v}
	}
	return Section{Title: title, Entries: entries}
}

// Named builds a section from an ordered colour map.
func Named(title string, colors theme.NamedColors) Section {
	entries := make([]Entry, len(colors))
	for i, c := range colors {
		entries[i] = Entry{Key: c.Name, Value: c.Color}
	}
	return Section{Title: title, Entries: entries}
}

// RampSection builds a section titled with the ramp name and keyed
// "<name>-i".
func RampSection(r theme.Ramp) Section {
	return Named(r.Name, r.Named())
}

// Renderer writes results to one writer in one format.
type Renderer struct {
	out      io.Writer
	format   Format
	swatches bool
	style    *lipgloss.Renderer
}

// New returns a Renderer. Swatches are enabled when out is a terminal.
func New(out io.Writer, format Format) *Renderer {
	return &Renderer{
		out:      out,
		format:   format,
		swatches: IsTerminal(out),
		style:    lipgloss.NewRenderer(out),
	}
}

// WithSwatches forces swatches on or off.
func (r *Renderer) WithSwatches(enabled bool) *Renderer {
	r.swatches = enabled
	return r
}

// Format returns the output format.
func (r *Renderer) Format() Format {
	return r.format
}

// Render writes payload for structured formats and sections otherwise.
func (r *Renderer) Render(payload any, sections ...Section) error {
	switch r.format {
	case FormatJSON:
		encoder := json.NewEncoder(r.out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	case FormatYAML:
		encoder := yaml.NewEncoder(r.out)
		encoder.SetIndent(2)
		if err := encoder.Encode(payload); err != nil {
			return err
		}
		return encoder.Close()
	case FormatTable:
		return r.table(sections)
	default:
		return r.text(sections)
	}
}

func (r *Renderer) text(sections []Section) error {
	titled := len(sections) > 1
	for i, section := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return err
			}
		}
		indent := ""
		if titled && section.Title != "" {
			if _, err := fmt.Fprintln(r.out, r.title(section.Title)); err != nil {
				return err
			}
			indent = "  "
		}
		for _, entry := range section.Entries {
			line := entry.Value
			if entry.Key != "" {
				line = entry.Key + ": " + entry.Value
			}
			if swatch := r.swatch(entry.Value); swatch != "" {
				line += " " + swatch
			}
			if _, err := fmt.Fprintln(r.out, indent+line); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Renderer) table(sections []Section) error {
	writer := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)

	header := "GROUP\tKEY\tVALUE"
	if r.swatches {
		header += "\tSWATCH"
	}
	fmt.Fprintln(writer, header)

	for _, section := range sections {
		for i, entry := range section.Entries {
			key := entry.Key
			if key == "" {
				key = strconv.Itoa(i + 1)
			}
			row := fmt.Sprintf("%s\t%s\t%s", valueOrDash(section.Title), key, entry.Value)
			if r.swatches {
				row += "\t" + r.swatch(entry.Value)
			}
			fmt.Fprintln(writer, row)
		}
	}

	return writer.Flush()
}

func (r *Renderer) title(s string) string {
	return r.style.NewStyle().Bold(true).Render(s + ":")
}

func (r *Renderer) swatch(value string) string {
	if !r.swatches {
		return ""
	}
	return Swatch(r.style, value)
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
