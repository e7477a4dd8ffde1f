package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a position is outside the catalog.
	ErrNotFound = errors.New("project not found")

	// ErrCapabilityUnsupported is returned when a project lacks the
	// capability an operation needs.
	ErrCapabilityUnsupported = errors.New("capability not supported")
)

// Capability names used in CapabilityError.
const (
	CapabilityTasks = "tasks"
	CapabilityCost  = "cost"
)

// NotFoundError reports a 1-based index outside [1, Size].
type NotFoundError struct {
	Index int
	Size  int
}

func (e *NotFoundError) Error() string {
	if e.Size == 0 {
		return fmt.Sprintf("project %d not found (catalog is empty)", e.Index)
	}
	return fmt.Sprintf("project %d not found (expected 1-%d)", e.Index, e.Size)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// CapabilityError reports an operation on a project that does not support it.
type CapabilityError struct {
	Index      int
	Label      string // display label of the project's variant
	Capability string // CapabilityTasks or CapabilityCost
}

func (e *CapabilityError) Error() string {
	return fmt.Sprintf("project %d (%s) does not support %s", e.Index, e.Label, e.Capability)
}

func (e *CapabilityError) Unwrap() error {
	return ErrCapabilityUnsupported
}
