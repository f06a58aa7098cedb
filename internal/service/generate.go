package service

import (
	"context"

	"github.com/atinyakov/fakeforge/internal/generator"
	"github.com/atinyakov/fakeforge/internal/models"
)

// PropertyReader is the read-only view of the property store used for generation.
type PropertyReader interface {
	ListProperties(ctx context.Context, modelID string) ([]models.Property, error)
}

// GenerateService turns a stored model into a file of synthetic records.
// It never writes to the store.
type GenerateService struct {
	models ModelGetter
	props  PropertyReader
	gen    *generator.Generator
}

// NewGenerateService constructs a GenerateService.
func NewGenerateService(models ModelGetter, props PropertyReader, gen *generator.Generator) *GenerateService {
	return &GenerateService{models: models, props: props, gen: gen}
}

// Generate produces count records for the model; count is clamped to the
// accepted range first.
func (s *GenerateService) Generate(ctx context.Context, modelID string, count int) (*generator.File, error) {
	m, err := s.models.GetModel(ctx, modelID)
	if err != nil {
		return nil, err
	}
	props, err := s.props.ListProperties(ctx, modelID)
	if err != nil {
		return nil, err
	}
	return s.gen.Generate(m.Name, props, generator.ClampCount(count))
}
