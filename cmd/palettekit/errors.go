package main

import (
	"errors"
	"fmt"

	palerrors "github.com/alexisbeaulieu97/palettekit/pkg/errors"
)

const colorSuggestion = "Use a CSS colour such as #3491fa, rgb(52, 145, 250), hsl(212, 95%, 59%) or a colour name."

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}

func newCommandError(operation, context string, err error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: err, suggestion: suggestion}
}

// suggestFor picks a suggestion from the class of err.
func suggestFor(err error) string {
	switch {
	case errors.Is(err, palerrors.ErrInvalidColor):
		return colorSuggestion
	case errors.Is(err, palerrors.ErrInvalidStepCount):
		return "Ask for at least 2 steps."
	case errors.Is(err, palerrors.ErrInvalidConfig):
		return "Fix the option reported above and try again."
	default:
		return "Run the command with --verbose for more detail."
	}
}
