// Package cli provides terminal input and output helpers for pcat.
package cli

import (
	"fmt"
	"strings"
)

// MatchCommand finds a unique command from a prefix.
// Exact matches win over prefix matches. Matching is case-insensitive.
func MatchCommand(input string, commands []string) (string, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return "", fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	var matches []string
	for _, cmd := range commands {
		lower := strings.ToLower(cmd)
		if lower == input {
			return cmd, nil
		}
		if strings.HasPrefix(lower, input) {
			matches = append(matches, cmd)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("%w %q", ErrUnknownCommand, input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("%w %q matches: %s", ErrAmbiguousCommand, input, strings.Join(matches, ", "))
	}
}
