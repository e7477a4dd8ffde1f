// Package model defines the project types managed by pcat.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind identifies the concrete variant of a project.
type Kind string

const (
	KindWeb    Kind = "web"
	KindMobile Kind = "mobile"
)

// Project is the shape shared by every project variant.
type Project interface {
	Title() string
	EstimatedHours() int
	Kind() Kind
	// DisplayLabel returns the human-readable variant name.
	DisplayLabel() string
	// Describe returns a one-line summary prefixed by the display label.
	Describe() string
}

// Taskable is implemented by projects that keep a task list.
type Taskable interface {
	AddTask(task string)
	// Tasks returns a copy of the task list in insertion order.
	Tasks() []string
}

// Costed is implemented by projects that can price their estimate.
type Costed interface {
	CalculateCost(rate decimal.Decimal) decimal.Decimal
}

// base holds the attributes common to all variants.
type base struct {
	title string
	hours int
	tasks []string
}

func (b *base) Title() string {
	return b.title
}

func (b *base) EstimatedHours() int {
	return b.hours
}

func (b *base) AddTask(task string) {
	b.tasks = append(b.tasks, task)
}

func (b *base) Tasks() []string {
	out := make([]string, len(b.tasks))
	copy(out, b.tasks)
	return out
}

func (b *base) CalculateCost(rate decimal.Decimal) decimal.Decimal {
	return decimal.NewFromInt(int64(b.hours)).Mul(rate)
}

func (b *base) describe(label string) string {
	return fmt.Sprintf("[%s] Title: %s, Hours: %d, Tasks: %d", label, b.title, b.hours, len(b.tasks))
}

// WebProject is a web development project.
type WebProject struct {
	base
}

// NewWebProject creates a web project with an empty task list.
// Title and hours are stored as given.
func NewWebProject(title string, estimatedHours int) *WebProject {
	return &WebProject{base: base{title: title, hours: estimatedHours}}
}

func (p *WebProject) Kind() Kind {
	return KindWeb
}

func (p *WebProject) DisplayLabel() string {
	return "Web Development"
}

func (p *WebProject) Describe() string {
	return p.describe(p.DisplayLabel())
}

// MobileProject is a mobile development project.
type MobileProject struct {
	base
}

// NewMobileProject creates a mobile project with an empty task list.
func NewMobileProject(title string, estimatedHours int) *MobileProject {
	return &MobileProject{base: base{title: title, hours: estimatedHours}}
}

func (p *MobileProject) Kind() Kind {
	return KindMobile
}

func (p *MobileProject) DisplayLabel() string {
	return "Mobile Development"
}

func (p *MobileProject) Describe() string {
	return p.describe(p.DisplayLabel())
}

// New creates a project of the given kind.
// Returns ErrUnknownKind for anything other than KindWeb or KindMobile.
func New(kind Kind, title string, estimatedHours int) (Project, error) {
	switch kind {
	case KindWeb:
		return NewWebProject(title, estimatedHours), nil
	case KindMobile:
		return NewMobileProject(title, estimatedHours), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}
