// Package service provides business logic for models, properties and record
// generation, delegating persistence to repository interfaces.
package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atinyakov/fakeforge/internal/models"
)

// ErrEmptyName is returned when a model or property name is blank.
var ErrEmptyName = errors.New("name must not be empty")

// ModelRepository defines the persistence operations needed by the ModelService.
type ModelRepository interface {
	CreateModel(ctx context.Context, m models.Model) error
	GetModel(ctx context.Context, id string) (*models.Model, error)
	ListModels(ctx context.Context) ([]models.Model, error)
	// DeleteModel removes the model's properties, then the model, atomically.
	DeleteModel(ctx context.Context, id string) error
}

// ModelService implements model lifecycle operations.
type ModelService struct {
	repo ModelRepository
	now  func() time.Time
}

// NewModelService constructs a ModelService.
func NewModelService(repo ModelRepository) *ModelService {
	return &ModelService{repo: repo, now: time.Now}
}

// Create stores a new model with a fresh ID.
func (s *ModelService) Create(ctx context.Context, name string) (*models.Model, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	m := models.Model{
		ID:        uuid.NewString(),
		Name:      name,
		CreatedAt: s.now().UTC(),
	}
	if err := s.repo.CreateModel(ctx, m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Get returns a model by ID.
func (s *ModelService) Get(ctx context.Context, id string) (*models.Model, error) {
	return s.repo.GetModel(ctx, id)
}

// List returns all live models.
func (s *ModelService) List(ctx context.Context) ([]models.Model, error) {
	return s.repo.ListModels(ctx)
}

// Delete removes the model and all of its properties.
func (s *ModelService) Delete(ctx context.Context, id string) error {
	return s.repo.DeleteModel(ctx, id)
}
