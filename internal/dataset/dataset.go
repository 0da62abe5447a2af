// Package dataset supplies the triples a graph is built from: the built-in example,
// or a YAML/JSON file of hand-written statements.
package dataset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/persistorai/graphrag/internal/models"
)

// Default returns the built-in example graph. Real systems would extract these
// triples from documents with a model.
func Default() []models.Triple {
	return []models.Triple{
		{Source: "Alice", Relation: "reports_to", Target: "Bob"},
		{Source: "Bob", Relation: "leads", Target: "Project_X"},
		{Source: "Bob", Relation: "leads", Target: "Project_Y"},
	}
}

type file struct {
	Triples []models.Triple `yaml:"triples"`
}

// Load reads triples from a YAML document of the form
//
//	triples:
//	  - {source: Alice, relation: reports_to, target: Bob}
//
// JSON with the same shape is accepted as well.
func Load(path string) ([]models.Triple, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is operator-supplied.
	if err != nil {
		return nil, fmt.Errorf("reading triples file: %w", err)
	}

	return Parse(data)
}

// Parse decodes and validates a triples document.
func Parse(data []byte) ([]models.Triple, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing triples: %w", err)
	}

	for i := range f.Triples {
		if err := f.Triples[i].Validate(); err != nil {
			return nil, fmt.Errorf("triple %d: %w", i, err)
		}
	}

	if f.Triples == nil {
		f.Triples = []models.Triple{}
	}

	return f.Triples, nil
}

// Resolve loads path when set and falls back to Default otherwise.
func Resolve(path string) ([]models.Triple, error) {
	if path == "" {
		return Default(), nil
	}

	return Load(path)
}
