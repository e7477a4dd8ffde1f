package model

import "fmt"

// Record is the flat, format-neutral form of a project used by the codecs.
type Record struct {
	Kind           Kind     `yaml:"kind"`
	Title          string   `yaml:"title"`
	EstimatedHours int      `yaml:"estimated_hours"`
	Tasks          []string `yaml:"tasks,omitempty"`
}

// ToRecord flattens a project. Tasks are only read from Taskable projects.
func ToRecord(p Project) Record {
	r := Record{
		Kind:           p.Kind(),
		Title:          p.Title(),
		EstimatedHours: p.EstimatedHours(),
	}
	if t, ok := p.(Taskable); ok {
		r.Tasks = t.Tasks()
	}
	return r
}

// FromRecord rebuilds the concrete project a record describes.
// Tasks are replayed in order; a record with tasks for a kind that is not
// Taskable is rejected rather than silently dropping them.
func FromRecord(r Record) (Project, error) {
	p, err := New(r.Kind, r.Title, r.EstimatedHours)
	if err != nil {
		return nil, err
	}
	if len(r.Tasks) == 0 {
		return p, nil
	}
	t, ok := p.(Taskable)
	if !ok {
		return nil, fmt.Errorf("%s project %q cannot hold tasks", r.Kind, r.Title)
	}
	for _, task := range r.Tasks {
		t.AddTask(task)
	}
	return p, nil
}

// ToRecords flattens projects in order.
func ToRecords(projects []Project) []Record {
	records := make([]Record, 0, len(projects))
	for _, p := range projects {
		records = append(records, ToRecord(p))
	}
	return records
}

// FromRecords rebuilds projects in order, stopping at the first bad record.
func FromRecords(records []Record) ([]Project, error) {
	projects := make([]Project, 0, len(records))
	for i, r := range records {
		p, err := FromRecord(r)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		projects = append(projects, p)
	}
	return projects, nil
}
