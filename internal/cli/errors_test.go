package cli

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	err := &ParseError{Field: "hours", Input: "ten", Want: "a whole number"}
	assert.Equal(t, `invalid hours "ten": expected a whole number`, err.Error())
	assert.ErrorIs(t, err, ErrParse)

	err = &ParseError{Field: "rate", Input: ""}
	assert.Equal(t, `invalid rate ""`, err.Error())
}

func TestParseErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("reading menu choice: %w", &ParseError{Field: "index", Input: "x"})
	assert.ErrorIs(t, wrapped, ErrParse)

	var pe *ParseError
	assert.True(t, errors.As(wrapped, &pe))
	assert.Equal(t, "index", pe.Field)
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))
	assert.Equal(t, "error: something went wrong", FormatError(errors.New("something went wrong")))

	err := &ParseError{Field: "index", Input: "abc", Want: "a project number"}
	assert.Equal(t, `error: invalid index "abc": expected a project number`, FormatError(err))
}
