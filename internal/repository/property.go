package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/atinyakov/fakeforge/internal/models"
)

// PostgresPropertyRepository stores model properties in PostgreSQL.
type PostgresPropertyRepository struct {
	DB *sql.DB
}

// NewPostgresPropertyRepository creates a PostgresPropertyRepository using the provided *sql.DB.
func NewPostgresPropertyRepository(db *sql.DB) *PostgresPropertyRepository {
	return &PostgresPropertyRepository{DB: db}
}

// AddProperty appends an unconfigured property to the model. The new
// property takes the next position. A name already used in the model
// yields ErrDuplicateProperty.
func (r *PostgresPropertyRepository) AddProperty(ctx context.Context, modelID, propName string) (*models.Property, error) {
	p := models.Property{ModelID: modelID, PropName: propName}
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO properties (model_id, prop_name, position)
		SELECT $1, $2, COALESCE(MAX(position), 0) + 1 FROM properties WHERE model_id = $1
		RETURNING position
	`, modelID, propName).Scan(&p.Position)
	if isUniqueViolation(err) {
		return nil, ErrDuplicateProperty
	}
	if err != nil {
		return nil, fmt.Errorf("AddProperty: %w", err)
	}
	return &p, nil
}

// ConfigureProperty binds a property to a provider group and function.
func (r *PostgresPropertyRepository) ConfigureProperty(ctx context.Context, modelID, propName, group, fn string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE properties SET group_name = $3, func = $4 WHERE model_id = $1 AND prop_name = $2
	`, modelID, propName, group, fn)
	if err != nil {
		return fmt.Errorf("ConfigureProperty: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// RemoveProperty deletes one property from a model.
func (r *PostgresPropertyRepository) RemoveProperty(ctx context.Context, modelID, propName string) error {
	res, err := r.DB.ExecContext(ctx, `
		DELETE FROM properties WHERE model_id = $1 AND prop_name = $2
	`, modelID, propName)
	if err != nil {
		return fmt.Errorf("RemoveProperty: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ListProperties returns the properties of a model in insertion order.
func (r *PostgresPropertyRepository) ListProperties(ctx context.Context, modelID string) ([]models.Property, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT model_id, prop_name, group_name, func, position
		  FROM properties WHERE model_id = $1 ORDER BY position
	`, modelID)
	if err != nil {
		return nil, fmt.Errorf("ListProperties: %w", err)
	}
	defer rows.Close()

	var props []models.Property
	for rows.Next() {
		var p models.Property
		if err := rows.Scan(&p.ModelID, &p.PropName, &p.GroupName, &p.Func, &p.Position); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		props = append(props, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListProperties: %w", err)
	}
	return props, nil
}

// CountProperties returns how many properties a model has.
func (r *PostgresPropertyRepository) CountProperties(ctx context.Context, modelID string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM properties WHERE model_id = $1
	`, modelID).Scan(&n)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("CountProperties: %w", err)
	}
	return n, nil
}
