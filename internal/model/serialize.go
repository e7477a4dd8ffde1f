package model

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// yamlDocument is the decoded form of a YAML catalog file.
type yamlDocument struct {
	Projects []Record `yaml:"projects"`
}

// ReadYAML decodes a YAML catalog. An empty document is an empty catalog.
func ReadYAML(r io.Reader) ([]Project, error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return []Project{}, nil
		}
		return nil, err
	}
	for i, rec := range doc.Projects {
		if rec.Kind == "" {
			return nil, fmt.Errorf("entry %d: missing kind", i+1)
		}
	}
	return FromRecords(doc.Projects)
}

// WriteYAML encodes projects as a YAML catalog.
// Field order is fixed, empty task lists are omitted and
// multi-line tasks use block scalar style.
func WriteYAML(w io.Writer, projects []Project) error {
	node := buildCatalogNode(ToRecords(projects))

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	return enc.Close()
}

// buildCatalogNode creates a yaml.Node tree for the whole catalog.
func buildCatalogNode(records []Record) *yaml.Node {
	doc := &yaml.Node{Kind: yaml.MappingNode}

	seq := &yaml.Node{Kind: yaml.SequenceNode}
	if len(records) == 0 {
		seq.Style = yaml.FlowStyle
	}
	for i := range records {
		seq.Content = append(seq.Content, buildRecordNode(&records[i]))
	}
	doc.Content = append(doc.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: "projects"},
		seq,
	)
	return doc
}

// buildRecordNode creates a yaml.Node for one project.
func buildRecordNode(r *Record) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode}

	addStringField(node, "kind", string(r.Kind))
	addStringField(node, "title", r.Title)
	addIntField(node, "estimated_hours", r.EstimatedHours)

	if len(r.Tasks) > 0 {
		seq := &yaml.Node{Kind: yaml.SequenceNode}
		for _, task := range r.Tasks {
			seq.Content = append(seq.Content, stringNode(task))
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "tasks"},
			seq,
		)
	}

	return node
}

// Helper functions for building yaml.Node

// stringNode tags values as strings so titles like "123" or "null"
// are quoted on output and read back unchanged.
func stringNode(value string) *yaml.Node {
	n := &yaml.Node{Kind: yaml.ScalarNode, Value: value, Tag: "!!str"}
	switch {
	case strings.HasPrefix(value, "\n") || strings.Contains(value, "\r"):
		// A block scalar drops leading line breaks and folds CR
		n.Style = yaml.DoubleQuotedStyle
	case strings.Contains(value, "\n"):
		n.Style = yaml.LiteralStyle
	}
	return n
}

func addStringField(node *yaml.Node, key, value string) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		stringNode(value),
	)
}

func addIntField(node *yaml.Node, key string, value int) {
	node.Content = append(node.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Value: fmt.Sprintf("%d", value), Tag: "!!int"},
	)
}
