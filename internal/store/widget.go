// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database repositories of the widget
// configuration subsystem: the widget instance table, the generic typed
// key/value settings table, and one specialized store per widget
// collection shape. Specialized stores follow a single contract —
// ReplaceAll deletes and reinserts inside the caller's transaction,
// ListOrdered/Find reads back in stored order.
package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"newschools/internal/models"
)

// WidgetStore handles widget instance database operations.
type WidgetStore struct {
	db *sql.DB
}

// NewWidgetStore creates a new WidgetStore with the given database connection.
func NewWidgetStore(db *sql.DB) *WidgetStore {
	return &WidgetStore{db: db}
}

const widgetColumns = `id, site_id, variant, position_slug, name, sort_order,
	       is_active, is_visible, created_at, updated_at, deleted_at`

func scanWidget(row interface{ Scan(...any) error }, w *models.WidgetInstance) error {
	return row.Scan(
		&w.ID, &w.SiteID, &w.Variant, &w.Position, &w.Name, &w.SortOrder,
		&w.IsActive, &w.IsVisible, &w.CreatedAt, &w.UpdatedAt, &w.DeletedAt,
	)
}

// Create inserts a new widget instance and returns it with generated fields.
func (s *WidgetStore) Create(w *models.WidgetInstance) (*models.WidgetInstance, error) {
	created := &models.WidgetInstance{}
	row := s.db.QueryRow(`
		INSERT INTO site_widgets (site_id, variant, position_slug, name, sort_order, is_active, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+widgetColumns+`
	`, w.SiteID, w.Variant, w.Position, w.Name, w.SortOrder, w.IsActive, w.IsVisible)
	if err := scanWidget(row, created); err != nil {
		return nil, fmt.Errorf("create widget: %w", err)
	}
	return created, nil
}

// FindByID retrieves a widget instance by its UUID, excluding soft-deleted
// instances. Returns nil if not found.
func (s *WidgetStore) FindByID(id uuid.UUID) (*models.WidgetInstance, error) {
	w := &models.WidgetInstance{}
	row := s.db.QueryRow(`
		SELECT `+widgetColumns+`
		FROM site_widgets WHERE id = $1 AND deleted_at IS NULL
	`, id)
	err := scanWidget(row, w)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find widget by id: %w", err)
	}
	return w, nil
}

// ListBySite returns all live widget instances of a site ordered by their
// sort index. Inactive instances are included — the resolver filters for
// rendering, the editor needs them all.
func (s *WidgetStore) ListBySite(siteID uuid.UUID) ([]models.WidgetInstance, error) {
	rows, err := s.db.Query(`
		SELECT `+widgetColumns+`
		FROM site_widgets
		WHERE site_id = $1 AND deleted_at IS NULL
		ORDER BY sort_order, created_at
	`, siteID)
	if err != nil {
		return nil, fmt.Errorf("list widgets by site: %w", err)
	}
	defer rows.Close()

	var widgets []models.WidgetInstance
	for rows.Next() {
		var w models.WidgetInstance
		if err := scanWidget(rows, &w); err != nil {
			return nil, fmt.Errorf("scan widget: %w", err)
		}
		widgets = append(widgets, w)
	}
	return widgets, rows.Err()
}

// UpdateMeta updates the editor-controlled instance fields: display name,
// ordering, and the active/visible flags. Configuration contents are
// untouched. Returns the updated instance, nil when not found.
func (s *WidgetStore) UpdateMeta(id uuid.UUID, name string, sortOrder int, isActive, isVisible bool) (*models.WidgetInstance, error) {
	w := &models.WidgetInstance{}
	row := s.db.QueryRow(`
		UPDATE site_widgets
		SET name = $2, sort_order = $3, is_active = $4, is_visible = $5, updated_at = $6
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING `+widgetColumns+`
	`, id, name, sortOrder, isActive, isVisible, time.Now())
	err := scanWidget(row, w)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update widget meta: %w", err)
	}
	return w, nil
}

// Touch bumps the instance's updated_at after a configuration sync.
func (s *WidgetStore) Touch(tx *sql.Tx, id uuid.UUID) error {
	if _, err := tx.Exec(`UPDATE site_widgets SET updated_at = $2 WHERE id = $1`, id, time.Now()); err != nil {
		return fmt.Errorf("touch widget: %w", err)
	}
	return nil
}

// SoftDelete marks the instance as removed from its site. Its settings and
// specialized rows stay on disk until a hard delete cascades them away;
// every read path filters on deleted_at.
func (s *WidgetStore) SoftDelete(id uuid.UUID) error {
	res, err := s.db.Exec(`
		UPDATE site_widgets SET deleted_at = $2, updated_at = $2
		WHERE id = $1 AND deleted_at IS NULL
	`, id, time.Now())
	if err != nil {
		return fmt.Errorf("soft delete widget: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
