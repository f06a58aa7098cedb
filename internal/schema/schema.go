// Package schema loads model definitions from YAML files for offline generation.
package schema

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/atinyakov/fakeforge/internal/models"
)

// File is the on-disk shape of a model definition.
type File struct {
	Name       string            `yaml:"name"`
	Properties []models.Property `yaml:"properties"`
}

// Load reads and parses a schema file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}
	return Parse(data)
}

// Parse decodes a schema document. Property positions follow document
// order; duplicate property names are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}
	f.Name = strings.TrimSpace(f.Name)
	if f.Name == "" {
		return nil, errors.New("schema: name is required")
	}

	seen := make(map[string]bool, len(f.Properties))
	for i := range f.Properties {
		p := &f.Properties[i]
		if p.PropName == "" {
			return nil, fmt.Errorf("schema: property #%d has no propName", i+1)
		}
		if seen[p.PropName] {
			return nil, fmt.Errorf("schema: duplicate property %q", p.PropName)
		}
		seen[p.PropName] = true
		p.Position = i + 1
	}
	return &f, nil
}
