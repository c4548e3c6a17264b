package validation

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

// CheckFileExists verifies a regular file exists at the given path.
func CheckFileExists(path string) error {
	if path == "" {
		return fmt.Errorf("path is required")
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("path %s does not exist", path)
		}
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("path %s is a directory", path)
	}

	return nil
}

// CheckLightnessBounds verifies an optional explicit lightness range. The
// bounds only count when both are present; then both must be finite and min
// must not exceed max. prefix is prepended to the reported field names.
func CheckLightnessBounds(prefix string, minL, maxL *float64) error {
	if minL == nil || maxL == nil {
		return nil
	}

	minField, maxField := prefix+"min_lightness", prefix+"max_lightness"
	if math.IsNaN(*minL) || math.IsInf(*minL, 0) {
		return palerrors.NewValidationError(minField, minField+" must be a finite number", nil)
	}
	if math.IsNaN(*maxL) || math.IsInf(*maxL, 0) {
		return palerrors.NewValidationError(maxField, maxField+" must be a finite number", nil)
	}
	if *minL > *maxL {
		return palerrors.NewValidationError(minField,
			fmt.Sprintf("%s (%g) must not exceed %s (%g)", minField, *minL, maxField, *maxL), nil)
	}
	return nil
}

// CheckUniqueNames verifies every name is non-empty and appears once.
func CheckUniqueNames(field string, names []string) error {
	seen := make(map[string]struct{}, len(names))
	for i, name := range names {
		if name == "" {
			return palerrors.NewValidationError(fmt.Sprintf("%s[%d]", field, i), "name is required", nil)
		}
		if _, dup := seen[name]; dup {
			return palerrors.NewValidationError(fmt.Sprintf("%s.%s", field, name), "duplicate name", nil)
		}
		seen[name] = struct{}{}
	}
	return nil
}
