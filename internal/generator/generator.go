// Package generator builds synthetic records from a model's properties and
// serializes them as a downloadable JSON file.
package generator

import (
	"encoding/json"
	"fmt"

	"github.com/atinyakov/fakeforge/internal/faker"
	"github.com/atinyakov/fakeforge/internal/models"
)

const (
	// DefaultCount is used when no count is requested.
	DefaultCount = 10
	// MaxCount bounds the work done by a single request.
	MaxCount = 1000
	// ContentType of the generated file.
	ContentType = "application/json"
)

// aliases maps renamed provider functions to their current name.
var aliases = map[string]string{
	"fullName": "findName",
}

// File is the serialized output of one generation request.
type File struct {
	// Name is the suggested filename, the model display name verbatim.
	Name        string
	ContentType string
	Data        []byte
}

// Generator produces records using a fake-value provider.
type Generator struct {
	provider faker.Provider
}

// New returns a Generator backed by provider.
func New(provider faker.Provider) *Generator {
	return &Generator{provider: provider}
}

// ClampCount maps a requested record count into [1, MaxCount], the range
// the amount input accepts.
func ClampCount(n int) int {
	switch {
	case n < 1:
		return 1
	case n > MaxCount:
		return MaxCount
	}
	return n
}

// Validate checks that properties can be used for generation. The model
// name only feeds the error message.
func Validate(name string, properties []models.Property) error {
	if len(properties) == 0 {
		return &NoPropertiesError{Model: name}
	}

	var missing []string
	for _, p := range properties {
		if !p.Configured() {
			missing = append(missing, p.PropName)
		}
	}
	if len(missing) > 0 {
		return &UnconfiguredPropertiesError{Names: missing}
	}
	return nil
}

// Records validates properties and builds count records, count clamped
// by ClampCount. Every value is freshly produced; duplicates across
// records are possible.
func (g *Generator) Records(name string, properties []models.Property, count int) ([]models.Record, error) {
	if err := Validate(name, properties); err != nil {
		return nil, err
	}
	count = ClampCount(count)

	records := make([]models.Record, 0, count)
	for i := 0; i < count; i++ {
		rec := make(models.Record, len(properties))
		for _, p := range properties {
			v, err := g.provider.Invoke(p.GroupName, ResolveFunc(p.Func))
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", p.PropName, err)
			}
			rec[p.PropName] = v
		}
		records = append(records, rec)
	}
	return records, nil
}

// Generate builds count records and wraps them as a JSON file named after
// the model.
func (g *Generator) Generate(name string, properties []models.Property, count int) (*File, error) {
	records, err := g.Records(name, properties, count)
	if err != nil {
		return nil, err
	}

	data, err := Encode(records)
	if err != nil {
		return nil, err
	}
	return &File{Name: name, ContentType: ContentType, Data: data}, nil
}

// Encode serializes records as 2-space indented JSON.
func Encode(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode records: %w", err)
	}
	return data, nil
}

// ResolveFunc maps a renamed provider function to its current name.
func ResolveFunc(fn string) string {
	if alias, ok := aliases[fn]; ok {
		return alias
	}
	return fn
}
