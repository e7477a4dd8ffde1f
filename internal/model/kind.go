package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned when a project kind cannot be resolved.
var ErrUnknownKind = errors.New("unknown project kind")

// Kinds lists every known kind in menu order.
var Kinds = []Kind{KindWeb, KindMobile}

// ParseKind resolves user input to a Kind.
// Accepts the kind name ("web", "Mobile") or its 1-based menu number ("1", "2").
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, k := range Kinds {
		if s == string(k) || s == fmt.Sprintf("%d", i+1) {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q (expected web or mobile)", ErrUnknownKind, s)
}

// ElementName returns the discriminator used for a kind in XML files.
func (k Kind) ElementName() string {
	switch k {
	case KindWeb:
		return "WebProject"
	case KindMobile:
		return "MobileProject"
	default:
		return ""
	}
}

// KindFromElement is the inverse of Kind.ElementName.
func KindFromElement(name string) (Kind, error) {
	for _, k := range Kinds {
		if k.ElementName() == name {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: element <%s>", ErrUnknownKind, name)
}
