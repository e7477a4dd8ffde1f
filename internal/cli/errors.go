package cli

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is returned when user input cannot be coerced to the expected type.
	ErrParse = errors.New("invalid input")

	// ErrUnknownCommand is returned when input matches no menu command.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrAmbiguousCommand is returned when input is a prefix of several commands.
	ErrAmbiguousCommand = errors.New("ambiguous command")
)

// ParseError indicates malformed user input for a field.
type ParseError struct {
	Field string // what was being read, e.g. "hours"
	Input string // the raw input
	Want  string // description of the accepted form
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("invalid %s %q", e.Field, e.Input)
	if e.Want != "" {
		msg += ": expected " + e.Want
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return ErrParse
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
