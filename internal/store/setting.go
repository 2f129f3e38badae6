// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"newschools/internal/models"
)

// SettingStore manages generic widget configuration entries: the typed
// key/value rows holding every field that is not part of the widget
// variant's specialized shape.
type SettingStore struct {
	db *sql.DB
}

// NewSettingStore returns a new SettingStore backed by the given database.
func NewSettingStore(db *sql.DB) *SettingStore {
	return &SettingStore{db: db}
}

// ReplaceAll swaps the widget's entire setting set inside the caller's
// transaction: all prior entries are deleted, then the new set is inserted.
// Settings are never partially updated — sync semantics are full replace.
func (s *SettingStore) ReplaceAll(tx *sql.Tx, widgetID uuid.UUID, settings []models.WidgetSetting) error {
	if _, err := tx.Exec(`DELETE FROM widget_settings WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete widget settings: %w", err)
	}

	if len(settings) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO widget_settings (widget_id, key, value, type)
		VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("prepare widget settings insert: %w", err)
	}
	defer stmt.Close()

	for _, entry := range settings {
		if _, err := stmt.Exec(widgetID, entry.Key, entry.Value, entry.Type); err != nil {
			return fmt.Errorf("insert widget setting %q: %w", entry.Key, err)
		}
	}
	return nil
}

// ListByWidget returns every setting of a widget, ordered by key for
// deterministic output.
func (s *SettingStore) ListByWidget(widgetID uuid.UUID) ([]models.WidgetSetting, error) {
	rows, err := s.db.Query(`
		SELECT widget_id, key, value, type
		FROM widget_settings
		WHERE widget_id = $1
		ORDER BY key
	`, widgetID)
	if err != nil {
		return nil, fmt.Errorf("list widget settings: %w", err)
	}
	defer rows.Close()

	var settings []models.WidgetSetting
	for rows.Next() {
		var entry models.WidgetSetting
		if err := rows.Scan(&entry.WidgetID, &entry.Key, &entry.Value, &entry.Type); err != nil {
			return nil, fmt.Errorf("scan widget setting: %w", err)
		}
		settings = append(settings, entry)
	}
	return settings, rows.Err()
}
