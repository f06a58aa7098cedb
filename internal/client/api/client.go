// Package api is a typed HTTP client for the fakeforge server.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atinyakov/fakeforge/internal/generator"
	"github.com/atinyakov/fakeforge/internal/models"
)

// ErrNotFound is returned for 404 responses.
var ErrNotFound = errors.New("not found")

// WarningError is a user-facing warning returned by the server, e.g. a
// model without properties.
type WarningError struct {
	Message string
}

func (e *WarningError) Error() string { return e.Message }

// StatusError is any other non-success response.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Body)
}

// Client talks to the fakeforge API.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client with a default timeout.
func New(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 30 * time.Second},
	}
}

// NewTLS returns a client that trusts the CA certificate at caFile.
func NewTLS(baseURL, caFile string) (*Client, error) {
	caCert, err := os.ReadFile(caFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read CA cert: %w", err)
	}
	caPool := x509.NewCertPool()
	if !caPool.AppendCertsFromPEM(caCert) {
		return nil, errors.New("failed to parse CA cert")
	}

	c := New(baseURL)
	c.HTTP.Transport = &http.Transport{
		TLSClientConfig: &tls.Config{RootCAs: caPool, MinVersion: tls.VersionTLS12},
	}
	return c, nil
}

// ListModels returns every model with its property count.
func (c *Client) ListModels(ctx context.Context) ([]models.Model, error) {
	var out []models.Model
	if err := c.do(ctx, http.MethodGet, "/api/models", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetModel returns one model.
func (c *Client) GetModel(ctx context.Context, id string) (*models.Model, error) {
	var out models.Model
	if err := c.do(ctx, http.MethodGet, "/api/models/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateModel creates a model named name.
func (c *Client) CreateModel(ctx context.Context, name string) (*models.Model, error) {
	var out models.Model
	if err := c.do(ctx, http.MethodPost, "/api/models", map[string]string{"name": name}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteModel deletes a model and its properties.
func (c *Client) DeleteModel(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/models/"+url.PathEscape(id), nil, nil)
}

// ListProperties returns a model's properties in order.
func (c *Client) ListProperties(ctx context.Context, modelID string) ([]models.Property, error) {
	var out []models.Property
	if err := c.do(ctx, http.MethodGet, propsPath(modelID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CountProperties returns how many properties a model has.
func (c *Client) CountProperties(ctx context.Context, modelID string) (int, error) {
	var out struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, propsPath(modelID)+"/count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// AddProperty adds an unconfigured property.
func (c *Client) AddProperty(ctx context.Context, modelID, propName string) (*models.Property, error) {
	var out models.Property
	if err := c.do(ctx, http.MethodPost, propsPath(modelID), map[string]string{"propName": propName}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ConfigureProperty binds a property to group.fn.
func (c *Client) ConfigureProperty(ctx context.Context, modelID, propName, group, fn string) error {
	body := map[string]string{"groupName": group, "func": fn}
	return c.do(ctx, http.MethodPut, propsPath(modelID)+"/"+url.PathEscape(propName), body, nil)
}

// RemoveProperty deletes a property.
func (c *Client) RemoveProperty(ctx context.Context, modelID, propName string) error {
	return c.do(ctx, http.MethodDelete, propsPath(modelID)+"/"+url.PathEscape(propName), nil, nil)
}

// Providers returns the available operations by group.
func (c *Client) Providers(ctx context.Context) (map[string][]string, error) {
	var out map[string][]string
	if err := c.do(ctx, http.MethodGet, "/api/providers", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Generate downloads count generated records for a model.
func (c *Client) Generate(ctx context.Context, modelID string, count int) (*generator.File, error) {
	path := "/api/models/" + url.PathEscape(modelID) + "/generate?count=" + strconv.Itoa(count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generate failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read generated file: %w", err)
	}

	name := modelID
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil && params["filename"] != "" {
		name = params["filename"]
	}
	return &generator.File{Name: name, ContentType: resp.Header.Get("Content-Type"), Data: data}, nil
}

func propsPath(modelID string) string {
	return "/api/models/" + url.PathEscape(modelID) + "/properties"
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode < 300 {
		return nil
	}
	data, _ := io.ReadAll(resp.Body)
	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnprocessableEntity:
		var w struct {
			Warning string `json:"warning"`
		}
		if json.Unmarshal(data, &w) == nil && w.Warning != "" {
			return &WarningError{Message: w.Warning}
		}
	}
	return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(data))}
}
