// Package dataset loads socio-technical network models from YAML files and
// turns them into validated graphs.
//
// A model file looks like:
//
//	name: plant-north
//	nodes:
//	  - id: SCADA_Server
//	    category: technical
//	  - id: Steve
//	    category: human
//	edges:
//	  - from: Steve
//	    to: SCADA_Server
package dataset

import (
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/dd0wney/sociograph/pkg/graph"
)

var (
	// validate is a singleton validator instance
	validate *validator.Validate

	// MaxNodes caps the size of a single model file.
	MaxNodes = 10000
	// MaxEdges caps the edge list of a single model file.
	MaxEdges = 100000

	idPattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)
)

func init() {
	validate = validator.New()
}

// NodeDef is one node entry in a model file.
type NodeDef struct {
	ID       string `yaml:"id" validate:"required,min=1,max=100"`
	Category string `yaml:"category" validate:"omitempty,oneof=technical human process Technical Human Process TECHNICAL HUMAN PROCESS"`
}

// EdgeDef is one undirected edge entry in a model file.
type EdgeDef struct {
	From string `yaml:"from" validate:"required,min=1,max=100"`
	To   string `yaml:"to" validate:"required,min=1,max=100"`
}

// File is the on-disk shape of a model.
type File struct {
	Name  string    `yaml:"name" validate:"required,min=1,max=100"`
	Nodes []NodeDef `yaml:"nodes" validate:"required,min=1,dive"`
	Edges []EdgeDef `yaml:"edges" validate:"omitempty,dive"`
}

// Model is a parsed, validated model ready to be built into a graph.
type Model struct {
	Name  string
	Nodes []graph.Node
	Edges []graph.Edge
}

// Parse decodes and validates a YAML model document.
func Parse(data []byte) (*Model, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to decode model: %w", err)
	}

	if err := validate.Struct(&file); err != nil {
		return nil, formatValidationError(err)
	}
	if len(file.Nodes) > MaxNodes {
		return nil, fmt.Errorf("Nodes: maximum %d nodes allowed, got %d", MaxNodes, len(file.Nodes))
	}
	if len(file.Edges) > MaxEdges {
		return nil, fmt.Errorf("Edges: maximum %d edges allowed, got %d", MaxEdges, len(file.Edges))
	}

	model := &Model{
		Name:  file.Name,
		Nodes: make([]graph.Node, 0, len(file.Nodes)),
		Edges: make([]graph.Edge, 0, len(file.Edges)),
	}

	for i, def := range file.Nodes {
		if !idPattern.MatchString(def.ID) {
			return nil, fmt.Errorf("Nodes[%d]: id %q contains invalid characters (only alphanumeric, underscore, dot and dash allowed)", i, def.ID)
		}
		category, err := graph.ParseCategory(def.Category)
		if err != nil {
			return nil, fmt.Errorf("Nodes[%d]: %w", i, err)
		}
		model.Nodes = append(model.Nodes, graph.Node{ID: graph.NodeID(def.ID), Category: category})
	}

	for _, def := range file.Edges {
		model.Edges = append(model.Edges, graph.Edge{A: graph.NodeID(def.From), B: graph.NodeID(def.To)})
	}

	return model, nil
}

// Load reads and parses a model file from disk.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}
	return Parse(data)
}

// Build assembles the model into a validated graph. Construction errors
// (duplicate nodes, unknown endpoints, self loops, duplicate edges) abort the
// build; no partial graph is returned.
func (m *Model) Build() (*graph.Graph, error) {
	g, err := graph.BuildGraph(m.Nodes, m.Edges)
	if err != nil {
		return nil, fmt.Errorf("model %q: %w", m.Name, err)
	}
	return g, nil
}

// formatValidationError converts validator errors into readable messages.
func formatValidationError(err error) error {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) && len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%s: failed %q validation", first.Namespace(), first.Tag())
	}
	return err
}
