package config

import (
	"github.com/alexisbeaulieu97/palettekit/internal/validation"
	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// Validate performs schema and cross-field validation on a theme document.
func Validate(doc *Document) error {
	if doc == nil {
		return palerrors.NewValidationError("document", "document is nil", nil)
	}

	if err := validation.Struct(doc); err != nil {
		return err
	}

	if err := validation.CheckUniqueNames("semantic_colors", doc.SemanticColors.Names()); err != nil {
		return err
	}
	if err := validation.CheckUniqueNames("ui_colors", doc.UIColors.Names()); err != nil {
		return err
	}
	if err := validation.CheckUniqueNames("interface.semantic_colors", doc.Interface.SemanticColors.Names()); err != nil {
		return err
	}

	bounds := []struct {
		prefix   string
		min, max *float64
	}{
		{"interface.controls.", doc.Interface.Controls.MinLightness, doc.Interface.Controls.MaxLightness},
		{"interface.semantic.", doc.Interface.Semantic.MinLightness, doc.Interface.Semantic.MaxLightness},
		{"interface.theme.", doc.Interface.Theme.MinLightness, doc.Interface.Theme.MaxLightness},
	}
	for _, b := range bounds {
		if err := validation.CheckLightnessBounds(b.prefix, b.min, b.max); err != nil {
			return err
		}
	}

	return nil
}
