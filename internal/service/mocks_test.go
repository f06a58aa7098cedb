package service_test

import (
	"context"

	"github.com/atinyakov/fakeforge/internal/models"
)

type mockModelRepo struct {
	CreateModelFunc func(ctx context.Context, m models.Model) error
	GetModelFunc    func(ctx context.Context, id string) (*models.Model, error)
	ListModelsFunc  func(ctx context.Context) ([]models.Model, error)
	DeleteModelFunc func(ctx context.Context, id string) error
}

func (m *mockModelRepo) CreateModel(ctx context.Context, model models.Model) error {
	return m.CreateModelFunc(ctx, model)
}
func (m *mockModelRepo) GetModel(ctx context.Context, id string) (*models.Model, error) {
	return m.GetModelFunc(ctx, id)
}
func (m *mockModelRepo) ListModels(ctx context.Context) ([]models.Model, error) {
	return m.ListModelsFunc(ctx)
}
func (m *mockModelRepo) DeleteModel(ctx context.Context, id string) error {
	return m.DeleteModelFunc(ctx, id)
}

type mockPropertyRepo struct {
	AddPropertyFunc       func(ctx context.Context, modelID, propName string) (*models.Property, error)
	ConfigurePropertyFunc func(ctx context.Context, modelID, propName, group, fn string) error
	RemovePropertyFunc    func(ctx context.Context, modelID, propName string) error
	ListPropertiesFunc    func(ctx context.Context, modelID string) ([]models.Property, error)
	CountPropertiesFunc   func(ctx context.Context, modelID string) (int, error)
}

func (m *mockPropertyRepo) AddProperty(ctx context.Context, modelID, propName string) (*models.Property, error) {
	return m.AddPropertyFunc(ctx, modelID, propName)
}
func (m *mockPropertyRepo) ConfigureProperty(ctx context.Context, modelID, propName, group, fn string) error {
	return m.ConfigurePropertyFunc(ctx, modelID, propName, group, fn)
}
func (m *mockPropertyRepo) RemoveProperty(ctx context.Context, modelID, propName string) error {
	return m.RemovePropertyFunc(ctx, modelID, propName)
}
func (m *mockPropertyRepo) ListProperties(ctx context.Context, modelID string) ([]models.Property, error) {
	return m.ListPropertiesFunc(ctx, modelID)
}
func (m *mockPropertyRepo) CountProperties(ctx context.Context, modelID string) (int, error) {
	return m.CountPropertiesFunc(ctx, modelID)
}

func modelFound(name string) func(context.Context, string) (*models.Model, error) {
	return func(_ context.Context, id string) (*models.Model, error) {
		return &models.Model{ID: id, Name: name}, nil
	}
}
