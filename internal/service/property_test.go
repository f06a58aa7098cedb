package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/fakeforge/internal/faker"
	"github.com/atinyakov/fakeforge/internal/models"
	"github.com/atinyakov/fakeforge/internal/repository"
	"github.com/atinyakov/fakeforge/internal/service"
)

func newRegistry() *faker.Registry {
	r := faker.NewRegistry()
	r.Register("name", "findName", func() any { return "Grace Hopper" })
	r.Register("internet", "email", func() any { return "grace@example.com" })
	return r
}

func TestPropertyAdd(t *testing.T) {
	repo := &mockPropertyRepo{
		AddPropertyFunc: func(_ context.Context, modelID, propName string) (*models.Property, error) {
			return &models.Property{ModelID: modelID, PropName: propName, Position: 1}, nil
		},
	}
	svc := service.NewPropertyService(repo, &mockModelRepo{GetModelFunc: modelFound("user")}, newRegistry())

	p, err := svc.Add(context.Background(), "m1", " email ")
	require.NoError(t, err)
	assert.Equal(t, "email", p.PropName)
	assert.Equal(t, "m1", p.ModelID)
}

func TestPropertyAdd_Validation(t *testing.T) {
	missing := &mockModelRepo{
		GetModelFunc: func(context.Context, string) (*models.Model, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := service.NewPropertyService(&mockPropertyRepo{}, missing, newRegistry())

	_, err := svc.Add(context.Background(), "m1", "")
	assert.ErrorIs(t, err, service.ErrEmptyName)

	_, err = svc.Add(context.Background(), "ghost", "email")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestPropertyAdd_Duplicate(t *testing.T) {
	repo := &mockPropertyRepo{
		AddPropertyFunc: func(context.Context, string, string) (*models.Property, error) {
			return nil, repository.ErrDuplicateProperty
		},
	}
	svc := service.NewPropertyService(repo, &mockModelRepo{GetModelFunc: modelFound("user")}, newRegistry())

	_, err := svc.Add(context.Background(), "m1", "email")
	assert.ErrorIs(t, err, repository.ErrDuplicateProperty)
}

func TestPropertyConfigure(t *testing.T) {
	var got []string
	repo := &mockPropertyRepo{
		ConfigurePropertyFunc: func(_ context.Context, modelID, propName, group, fn string) error {
			got = []string{modelID, propName, group, fn}
			return nil
		},
	}
	svc := service.NewPropertyService(repo, &mockModelRepo{}, newRegistry())

	require.NoError(t, svc.Configure(context.Background(), "m1", "email", "internet", "email"))
	assert.Equal(t, []string{"m1", "email", "internet", "email"}, got)

	// The alias is stored as written and validated under its current name.
	require.NoError(t, svc.Configure(context.Background(), "m1", "who", "name", "fullName"))
	assert.Equal(t, []string{"m1", "who", "name", "fullName"}, got)
}

func TestPropertyConfigure_UnknownOperation(t *testing.T) {
	repo := &mockPropertyRepo{
		ConfigurePropertyFunc: func(context.Context, string, string, string, string) error {
			t.Error("repository must not be called for unknown operations")
			return nil
		},
	}
	svc := service.NewPropertyService(repo, &mockModelRepo{}, newRegistry())

	err := svc.Configure(context.Background(), "m1", "email", "internet", "carrierPigeon")
	assert.True(t, errors.Is(err, faker.ErrUnknownOperation))
}

func TestPropertyListCountRemove(t *testing.T) {
	props := []models.Property{{ModelID: "m1", PropName: "email", Position: 1}}
	removed := ""
	repo := &mockPropertyRepo{
		ListPropertiesFunc:  func(context.Context, string) ([]models.Property, error) { return props, nil },
		CountPropertiesFunc: func(context.Context, string) (int, error) { return len(props), nil },
		RemovePropertyFunc: func(_ context.Context, _ string, name string) error {
			removed = name
			return nil
		},
	}
	svc := service.NewPropertyService(repo, &mockModelRepo{GetModelFunc: modelFound("user")}, newRegistry())

	list, err := svc.List(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, props, list)

	n, err := svc.Count(context.Background(), "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	require.NoError(t, svc.Remove(context.Background(), "m1", "email"))
	assert.Equal(t, "email", removed)
}

func TestPropertyCount_MissingModel(t *testing.T) {
	repo := &mockPropertyRepo{
		CountPropertiesFunc: func(context.Context, string) (int, error) {
			t.Error("count must not run for a missing model")
			return 0, nil
		},
	}
	lookup := &mockModelRepo{
		GetModelFunc: func(context.Context, string) (*models.Model, error) {
			return nil, repository.ErrNotFound
		},
	}
	svc := service.NewPropertyService(repo, lookup, newRegistry())

	_, err := svc.Count(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
