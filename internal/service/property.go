package service

import (
	"context"
	"strings"

	"github.com/atinyakov/fakeforge/internal/faker"
	"github.com/atinyakov/fakeforge/internal/generator"
	"github.com/atinyakov/fakeforge/internal/models"
)

// PropertyRepository defines the persistence operations needed by the PropertyService.
type PropertyRepository interface {
	PropertyReader
	AddProperty(ctx context.Context, modelID, propName string) (*models.Property, error)
	ConfigureProperty(ctx context.Context, modelID, propName, group, fn string) error
	RemoveProperty(ctx context.Context, modelID, propName string) error
	CountProperties(ctx context.Context, modelID string) (int, error)
}

// ModelGetter looks up a model by ID.
type ModelGetter interface {
	GetModel(ctx context.Context, id string) (*models.Model, error)
}

// OperationChecker tells whether a provider operation exists.
type OperationChecker interface {
	Has(group, fn string) bool
}

// PropertyService manages the properties of a model.
type PropertyService struct {
	repo   PropertyRepository
	models ModelGetter
	ops    OperationChecker
}

// NewPropertyService constructs a PropertyService.
func NewPropertyService(repo PropertyRepository, models ModelGetter, ops OperationChecker) *PropertyService {
	return &PropertyService{repo: repo, models: models, ops: ops}
}

// Add appends an unconfigured property to an existing model.
func (s *PropertyService) Add(ctx context.Context, modelID, propName string) (*models.Property, error) {
	propName = strings.TrimSpace(propName)
	if propName == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.models.GetModel(ctx, modelID); err != nil {
		return nil, err
	}
	return s.repo.AddProperty(ctx, modelID, propName)
}

// Configure binds a property to a provider operation. Unknown operations
// are rejected up front; aliased names are checked under their current name.
func (s *PropertyService) Configure(ctx context.Context, modelID, propName, group, fn string) error {
	if !s.ops.Has(group, generator.ResolveFunc(fn)) {
		return &faker.UnknownOperationError{Group: group, Func: fn}
	}
	return s.repo.ConfigureProperty(ctx, modelID, propName, group, fn)
}

// Remove deletes a property.
func (s *PropertyService) Remove(ctx context.Context, modelID, propName string) error {
	return s.repo.RemoveProperty(ctx, modelID, propName)
}

// List returns a model's properties in order.
func (s *PropertyService) List(ctx context.Context, modelID string) ([]models.Property, error) {
	if _, err := s.models.GetModel(ctx, modelID); err != nil {
		return nil, err
	}
	return s.repo.ListProperties(ctx, modelID)
}

// Count returns the number of properties of an existing model.
func (s *PropertyService) Count(ctx context.Context, modelID string) (int, error) {
	if _, err := s.models.GetModel(ctx, modelID); err != nil {
		return 0, err
	}
	return s.repo.CountProperties(ctx, modelID)
}
