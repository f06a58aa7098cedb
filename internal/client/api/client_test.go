package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/fakeforge/internal/models"
)

func TestCreateAndListModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/models":
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Model{ID: "m1", Name: body["name"]})
		case r.Method == http.MethodGet && r.URL.Path == "/api/models":
			_ = json.NewEncoder(w).Encode([]models.Model{{ID: "m1", Name: "user", PropsCount: 2}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	m, err := c.CreateModel(context.Background(), "user")
	require.NoError(t, err)
	assert.Equal(t, "m1", m.ID)

	list, err := c.ListModels(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].PropsCount)
}

func TestPropertyCalls(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.EscapedPath())
		switch r.Method {
		case http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode(models.Property{ModelID: "m1", PropName: "first name"})
		case http.MethodPut:
			var body map[string]string
			_ = json.NewDecoder(r.Body).Decode(&body)
			assert.Equal(t, map[string]string{"groupName": "name", "func": "firstName"}, body)
			_ = json.NewEncoder(w).Encode(models.Property{})
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]int{"count": 4})
		case http.MethodDelete:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()
	_, err := c.AddProperty(ctx, "m1", "first name")
	require.NoError(t, err)
	require.NoError(t, c.ConfigureProperty(ctx, "m1", "first name", "name", "firstName"))
	require.NoError(t, c.RemoveProperty(ctx, "m1", "first name"))
	n, err := c.CountProperties(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	assert.Equal(t, []string{
		"POST /api/models/m1/properties",
		"PUT /api/models/m1/properties/first%20name",
		"DELETE /api/models/m1/properties/first%20name",
		"GET /api/models/m1/properties/count",
	}, seen)
}

func TestGenerate_File(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("count"))
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Content-Disposition", `attachment; filename="my users"`)
		_, _ = w.Write([]byte(`[{"a":1}]`))
	}))
	defer srv.Close()

	file, err := New(srv.URL).Generate(context.Background(), "m1", 7)
	require.NoError(t, err)
	assert.Equal(t, "my users", file.Name)
	assert.Equal(t, "application/json", file.ContentType)
	assert.Equal(t, `[{"a":1}]`, string(file.Data))
}

func TestGenerate_Warning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"warning":"There is 1 property without function age"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Generate(context.Background(), "m1", 10)
	var warn *WarningError
	require.True(t, errors.As(err, &warn))
	assert.Equal(t, "There is 1 property without function age", warn.Message)
}

func TestErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/models/ghost" {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetModel(context.Background(), "ghost")
	assert.ErrorIs(t, err, ErrNotFound)

	err = c.DeleteModel(context.Background(), "m1")
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusInternalServerError, se.Code)
	assert.Equal(t, "internal error", se.Body)
}

func TestNewTLS_BadCA(t *testing.T) {
	_, err := NewTLS("https://localhost", "/nonexistent/ca.crt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read CA cert")
}
