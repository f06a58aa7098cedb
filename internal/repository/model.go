// Package repository provides PostgreSQL persistence for models and their
// properties.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/atinyakov/fakeforge/internal/models"
)

// PostgresModelRepository stores models in PostgreSQL.
type PostgresModelRepository struct {
	// DB is the database handle for executing queries and transactions.
	DB *sql.DB
}

// NewPostgresModelRepository creates a PostgresModelRepository using the provided *sql.DB.
func NewPostgresModelRepository(db *sql.DB) *PostgresModelRepository {
	return &PostgresModelRepository{DB: db}
}

// CreateModel inserts a new model row.
func (r *PostgresModelRepository) CreateModel(ctx context.Context, m models.Model) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO models (id, name, created_at) VALUES ($1, $2, $3)
	`, m.ID, m.Name, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("CreateModel: %w", err)
	}
	return nil
}

// GetModel fetches a live model with its property count.
func (r *PostgresModelRepository) GetModel(ctx context.Context, id string) (*models.Model, error) {
	var m models.Model
	err := r.DB.QueryRowContext(ctx, `
		SELECT m.id, m.name, m.created_at,
		       (SELECT COUNT(*) FROM properties p WHERE p.model_id = m.id)
		  FROM models m
		 WHERE m.id = $1 AND m.deleted = false
	`, id).Scan(&m.ID, &m.Name, &m.CreatedAt, &m.PropsCount)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("GetModel: %w", err)
	}
	return &m, nil
}

// ListModels returns all live models ordered by creation time.
func (r *PostgresModelRepository) ListModels(ctx context.Context) ([]models.Model, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT m.id, m.name, m.created_at,
		       (SELECT COUNT(*) FROM properties p WHERE p.model_id = m.id)
		  FROM models m
		 WHERE m.deleted = false
		 ORDER BY m.created_at, m.id
	`)
	if err != nil {
		return nil, fmt.Errorf("ListModels: %w", err)
	}
	defer rows.Close()

	list := make([]models.Model, 0)
	for rows.Next() {
		var m models.Model
		if err := rows.Scan(&m.ID, &m.Name, &m.CreatedAt, &m.PropsCount); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		list = append(list, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListModels: %w", err)
	}
	return list, nil
}

// DeleteModel removes a model's properties and soft-deletes the model in
// one transaction. The cleaner purges the model row later.
func (r *PostgresModelRepository) DeleteModel(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("DeleteModel: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM properties WHERE model_id = $1`, id); err != nil {
		return fmt.Errorf("DeleteModel: remove properties: %w", err)
	}
	res, err := tx.ExecContext(ctx, `
		UPDATE models SET deleted = true, deleted_at = $2 WHERE id = $1 AND deleted = false
	`, id, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("DeleteModel: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("DeleteModel: commit: %w", err)
	}
	return nil
}
