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

// ImageSettingsStore manages the single settings row of image widgets.
// Image fields are scalars, but they live in their own table rather than
// the generic store so placements stay queryable by path.
type ImageSettingsStore struct {
	db *sql.DB
}

// NewImageSettingsStore returns a new ImageSettingsStore backed by the given database.
func NewImageSettingsStore(db *sql.DB) *ImageSettingsStore {
	return &ImageSettingsStore{db: db}
}

// Replace swaps the widget's image settings row inside the caller's transaction.
func (s *ImageSettingsStore) Replace(tx *sql.Tx, widgetID uuid.UUID, i models.ImageSettings) error {
	if _, err := tx.Exec(`DELETE FROM widget_image_settings WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete image settings: %w", err)
	}

	_, err := tx.Exec(`
		INSERT INTO widget_image_settings
			(widget_id, url, alt_text, caption, link_url, fit, rounded)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, widgetID, i.URL, i.AltText, i.Caption, i.LinkURL, i.Fit, i.Rounded)
	if err != nil {
		return fmt.Errorf("insert image settings: %w", err)
	}
	return nil
}

// Find returns the widget's image settings, or nil when none are stored.
func (s *ImageSettingsStore) Find(widgetID uuid.UUID) (*models.ImageSettings, error) {
	i := &models.ImageSettings{}
	err := s.db.QueryRow(`
		SELECT widget_id, url, alt_text, caption, link_url, fit, rounded
		FROM widget_image_settings WHERE widget_id = $1
	`, widgetID).Scan(&i.WidgetID, &i.URL, &i.AltText, &i.Caption, &i.LinkURL, &i.Fit, &i.Rounded)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find image settings: %w", err)
	}
	return i, nil
}
