package palette

import (
	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
)

// Options controls a palette request.
type Options struct {
	// Index is the 1-based ramp position. Zero selects the seed position.
	Index int
	// Dark selects the dark-mode ramp.
	Dark bool
	// Format is the output representation.
	Format colormodel.Format
}

// Generator produces palette colours from string seeds using an injected
// colour parser.
type Generator struct {
	parser colormodel.Parser
}

// NewGenerator returns a Generator. A nil parser selects the CSS parser.
func NewGenerator(parser colormodel.Parser) *Generator {
	if parser == nil {
		parser = colormodel.CSSParser{}
	}
	return &Generator{parser: parser}
}

// Color returns the single colour at opts.Index formatted as opts.Format.
func (g *Generator) Color(seed string, opts Options) (string, error) {
	c, err := g.parser.Parse(seed)
	if err != nil {
		return "", err
	}

	index := opts.Index
	if index == 0 {
		index = SeedIndex
	}

	if opts.Dark {
		return FormatDark(c, index, opts.Format), nil
	}
	return FormatLight(c, index, opts.Format), nil
}

// List returns the full ten-colour ramp formatted as opts.Format. Index is
// ignored.
func (g *Generator) List(seed string, opts Options) ([]string, error) {
	c, err := g.parser.Parse(seed)
	if err != nil {
		return nil, err
	}

	return FormatRamp(c, opts.Dark, opts.Format), nil
}

var defaultGenerator = NewGenerator(nil)

// Generate returns one palette colour using the CSS parser.
func Generate(seed string, opts Options) (string, error) {
	return defaultGenerator.Color(seed, opts)
}

// GenerateList returns a full ramp using the CSS parser.
func GenerateList(seed string, opts Options) ([]string, error) {
	return defaultGenerator.List(seed, opts)
}
