package render

import (
	"fmt"
	"strings"
)

// Format selects how results are written.
type Format string

// Supported output formats.
const (
	FormatText  Format = "text"
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every supported format in help order.
func Formats() []Format {
	return []Format{FormatText, FormatTable, FormatJSON, FormatYAML}
}

// ParseFormat resolves a format name. An empty name selects text.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatText:
		return FormatText, nil
	case FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, table, json or yaml)", name)
	}
}

// Structured reports whether the format encodes the payload instead of
// sections.
func (f Format) Structured() bool {
	return f == FormatJSON || f == FormatYAML
}
