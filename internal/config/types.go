package config

import (
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/palettekit/pkg/colormodel"
	"github.com/alexisbeaulieu97/palettekit/pkg/theme"
)

// Modes a theme document can request.
const (
	ModeInterface = "interface"
	ModePalette   = "palette"
)

// Document is a YAML theme document. Top-level colour tables and dark mode
// apply to both modes; the interface and palette sections tune their own
// ramps.
type Document struct {
	Theme          string                 `yaml:"theme" validate:"required,csscolor"`
	Mode           string                 `yaml:"mode" validate:"omitempty,oneof=interface palette"`
	Dark           bool                   `yaml:"dark"`
	Format         colormodel.Format      `yaml:"format"`
	SemanticColors theme.NamedColors      `yaml:"semantic_colors"`
	UIColors       theme.NamedColors      `yaml:"ui_colors"`
	Interface      theme.InterfaceOptions `yaml:"interface"`
	Palette        theme.PaletteOptions   `yaml:"palette"`
}

// UnmarshalYAML applies document defaults before decoding.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	type rawDocument Document
	temp := rawDocument{Mode: ModeInterface}
	if err := value.Decode(&temp); err != nil {
		return err
	}
	*d = Document(temp)
	if d.Mode == "" {
		d.Mode = ModeInterface
	}
	return nil
}

// ComposerOptions returns the composer options implied by the document's
// colour tables.
func (d *Document) ComposerOptions() []theme.Option {
	var opts []theme.Option
	if d.SemanticColors != nil {
		opts = append(opts, theme.WithSemanticColors(d.SemanticColors))
	}
	if d.UIColors != nil {
		opts = append(opts, theme.WithUIColors(d.UIColors))
	}
	return opts
}

// InterfaceOptions returns the interface section with document-wide dark
// mode applied.
func (d *Document) InterfaceOptions() theme.InterfaceOptions {
	opts := d.Interface
	opts.Dark = opts.Dark || d.Dark
	return opts
}

// PaletteOptions returns the palette section with document-wide dark mode
// applied.
func (d *Document) PaletteOptions() theme.PaletteOptions {
	opts := d.Palette
	opts.Dark = opts.Dark || d.Dark
	return opts
}
