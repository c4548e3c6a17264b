package colormodel

import (
	"fmt"
	"strings"
)

// Format selects the string representation of emitted colours.
type Format int

const (
	FormatHex Format = iota
	FormatRGB
	FormatHSL
)

var formatNames = map[Format]string{
	FormatHex: "hex",
	FormatRGB: "rgb",
	FormatHSL: "hsl",
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a format name to a Format. Unknown or empty names fall
// back to FormatHex so that callers passing user input always get a usable
// format.
func ParseFormat(name string) Format {
	f, err := ParseFormatStrict(name)
	if err != nil {
		return FormatHex
	}
	return f
}

// ParseFormatStrict maps a format name to a Format and rejects unknown names.
func ParseFormatStrict(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "hex":
		return FormatHex, nil
	case "rgb":
		return FormatRGB, nil
	case "hsl":
		return FormatHSL, nil
	default:
		return FormatHex, fmt.Errorf("unknown color format %q (expected hex, rgb or hsl)", name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, which lets YAML
// documents spell formats by name.
func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormatStrict(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
