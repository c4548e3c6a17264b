package errors

import (
	stdErrors "errors"
	"fmt"
)

// Sentinels for the three caller-correctable error classes. Typed errors in
// this package report them through Is, so callers can write
// errors.Is(err, ErrInvalidColor) without caring about the concrete type.
var (
	ErrInvalidColor     = stdErrors.New("invalid color")
	ErrInvalidConfig    = stdErrors.New("invalid config")
	ErrInvalidStepCount = stdErrors.New("invalid step count")
)

// ColorError reports a colour token that could not be parsed.
type ColorError struct {
	Token string
	Err   error
}

// NewColorError constructs a ColorError for the given token.
func NewColorError(token string, err error) error {
	return &ColorError{Token: token, Err: err}
}

func (e *ColorError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("invalid color %q: %v", e.Token, e.Err)
	}
	return fmt.Sprintf("invalid color %q", e.Token)
}

// Unwrap exposes the underlying error.
func (e *ColorError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches ErrInvalidColor.
func (e *ColorError) Is(target error) bool {
	return target == ErrInvalidColor
}

// ParseError represents a YAML parsing failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches ErrInvalidConfig; a theme document that does not parse is a
// malformed configuration.
func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// ValidationError captures option and configuration validation issues.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches ErrInvalidConfig.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidConfig
}

// StepCountError reports a ramp request with fewer than two samples.
type StepCountError struct {
	Steps int
}

// NewStepCountError constructs a StepCountError.
func NewStepCountError(steps int) error {
	return &StepCountError{Steps: steps}
}

func (e *StepCountError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("step count must be at least 2, got %d", e.Steps)
}

// Is matches ErrInvalidStepCount.
func (e *StepCountError) Is(target error) bool {
	return target == ErrInvalidStepCount
}

// EntryError ties a failure to one named entry of a colour map, such as the
// "warning" semantic colour or the "border" UI colour.
type EntryError struct {
	Key string
	Err error
}

// NewEntryError constructs an EntryError for the given key.
func NewEntryError(key string, err error) error {
	return &EntryError{Key: key, Err: err}
}

func (e *EntryError) Error() string {
	if e == nil {
		return ""
	}
	if e.Key != "" {
		return fmt.Sprintf("entry %s: %v", e.Key, e.Err)
	}
	return fmt.Sprintf("entry error: %v", e.Err)
}

// Unwrap exposes the root error.
func (e *EntryError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
