// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"newschools/internal/models"
)

// FormFieldStore manages the field collections of form widgets. Select
// options travel as a jsonb column.
type FormFieldStore struct {
	db *sql.DB
}

// NewFormFieldStore returns a new FormFieldStore backed by the given database.
func NewFormFieldStore(db *sql.DB) *FormFieldStore {
	return &FormFieldStore{db: db}
}

// ReplaceAll swaps the widget's entire field set inside the caller's
// transaction, reassigning dense 1-based sort indices from input order.
func (s *FormFieldStore) ReplaceAll(tx *sql.Tx, widgetID uuid.UUID, fields []models.FormField) error {
	if _, err := tx.Exec(`DELETE FROM widget_form_fields WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete widget form fields: %w", err)
	}

	if len(fields) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO widget_form_fields
			(widget_id, label, name, field_type, placeholder, is_required, options, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return fmt.Errorf("prepare form field insert: %w", err)
	}
	defer stmt.Close()

	for i, field := range fields {
		options := field.Options
		if options == nil {
			options = []string{}
		}
		optionsJSON, err := json.Marshal(options)
		if err != nil {
			return fmt.Errorf("marshal options for field %q: %w", field.Name, err)
		}
		_, err = stmt.Exec(
			widgetID, field.Label, field.Name, field.FieldType,
			field.Placeholder, field.IsRequired, optionsJSON, i+1,
		)
		if err != nil {
			return fmt.Errorf("insert form field %d: %w", i+1, err)
		}
	}
	return nil
}

// ListOrdered returns the widget's fields sorted by their stored sort index.
func (s *FormFieldStore) ListOrdered(widgetID uuid.UUID) ([]models.FormField, error) {
	rows, err := s.db.Query(`
		SELECT id, widget_id, label, name, field_type, placeholder, is_required, options, sort_order
		FROM widget_form_fields
		WHERE widget_id = $1
		ORDER BY sort_order
	`, widgetID)
	if err != nil {
		return nil, fmt.Errorf("list widget form fields: %w", err)
	}
	defer rows.Close()

	var fields []models.FormField
	for rows.Next() {
		var field models.FormField
		var optionsJSON []byte
		err := rows.Scan(
			&field.ID, &field.WidgetID, &field.Label, &field.Name,
			&field.FieldType, &field.Placeholder, &field.IsRequired,
			&optionsJSON, &field.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scan form field: %w", err)
		}
		if err := json.Unmarshal(optionsJSON, &field.Options); err != nil {
			return nil, fmt.Errorf("unmarshal options for field %q: %w", field.Name, err)
		}
		fields = append(fields, field)
	}
	return fields, rows.Err()
}
