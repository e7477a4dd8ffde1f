// Package catalog holds the ordered, in-memory collection of projects.
package catalog

import (
	"github.com/jacksmith/pcat/internal/model"
	"github.com/shopspring/decimal"
)

// Entry pairs a project with its 1-based position.
type Entry struct {
	Index   int
	Project model.Project
}

// Catalog is an ordered list of projects addressed by 1-based position.
// The zero value is an empty catalog.
type Catalog struct {
	projects []model.Project
}

// New returns a catalog holding projects in the given order.
func New(projects ...model.Project) *Catalog {
	c := &Catalog{}
	c.Replace(projects)
	return c
}

// Add appends a project to the end of the catalog.
func (c *Catalog) Add(p model.Project) {
	c.projects = append(c.projects, p)
}

// Len returns the number of projects.
func (c *Catalog) Len() int {
	return len(c.projects)
}

// List returns every project with its 1-based position.
func (c *Catalog) List() []Entry {
	entries := make([]Entry, len(c.projects))
	for i, p := range c.projects {
		entries[i] = Entry{Index: i + 1, Project: p}
	}
	return entries
}

// Projects returns the projects in order. The slice is a copy.
func (c *Catalog) Projects() []model.Project {
	out := make([]model.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Replace discards the current contents and takes projects in order.
func (c *Catalog) Replace(projects []model.Project) {
	c.projects = make([]model.Project, len(projects))
	copy(c.projects, projects)
}

// Get returns the project at a 1-based index.
func (c *Catalog) Get(index int) (model.Project, error) {
	if index < 1 || index > len(c.projects) {
		return nil, &NotFoundError{Index: index, Size: len(c.projects)}
	}
	return c.projects[index-1], nil
}

// AddTaskTo appends a task to the project at index.
// Fails if the index is out of range or the project is not Taskable.
func (c *Catalog) AddTaskTo(index int, task string) error {
	p, err := c.Get(index)
	if err != nil {
		return err
	}
	t, ok := p.(model.Taskable)
	if !ok {
		return &CapabilityError{Index: index, Label: p.DisplayLabel(), Capability: CapabilityTasks}
	}
	t.AddTask(task)
	return nil
}

// TasksOf returns the task list of the project at index.
func (c *Catalog) TasksOf(index int) ([]string, error) {
	p, err := c.Get(index)
	if err != nil {
		return nil, err
	}
	t, ok := p.(model.Taskable)
	if !ok {
		return nil, &CapabilityError{Index: index, Label: p.DisplayLabel(), Capability: CapabilityTasks}
	}
	return t.Tasks(), nil
}

// CostedAt returns the project at index if it can price its estimate.
func (c *Catalog) CostedAt(index int) (model.Costed, error) {
	p, err := c.Get(index)
	if err != nil {
		return nil, err
	}
	cp, ok := p.(model.Costed)
	if !ok {
		return nil, &CapabilityError{Index: index, Label: p.DisplayLabel(), Capability: CapabilityCost}
	}
	return cp, nil
}

// CostOf prices the project at index with the given hourly rate.
func (c *Catalog) CostOf(index int, rate decimal.Decimal) (decimal.Decimal, error) {
	cp, err := c.CostedAt(index)
	if err != nil {
		return decimal.Zero, err
	}
	return cp.CalculateCost(rate), nil
}
