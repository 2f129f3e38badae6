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

// RegionRatingStore manages the single settings row of region-rating widgets.
type RegionRatingStore struct {
	db *sql.DB
}

// NewRegionRatingStore returns a new RegionRatingStore backed by the given database.
func NewRegionRatingStore(db *sql.DB) *RegionRatingStore {
	return &RegionRatingStore{db: db}
}

// Replace swaps the widget's rating settings row inside the caller's transaction.
func (s *RegionRatingStore) Replace(tx *sql.Tx, widgetID uuid.UUID, r models.RegionRatingSettings) error {
	if _, err := tx.Exec(`DELETE FROM widget_region_ratings WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete region rating settings: %w", err)
	}

	_, err := tx.Exec(`
		INSERT INTO widget_region_ratings
			(widget_id, region_code, period, row_limit, show_amounts)
		VALUES ($1, $2, $3, $4, $5)
	`, widgetID, r.RegionCode, r.Period, r.Limit, r.ShowAmounts)
	if err != nil {
		return fmt.Errorf("insert region rating settings: %w", err)
	}
	return nil
}

// Find returns the widget's rating settings, or nil when none are stored.
func (s *RegionRatingStore) Find(widgetID uuid.UUID) (*models.RegionRatingSettings, error) {
	r := &models.RegionRatingSettings{}
	err := s.db.QueryRow(`
		SELECT widget_id, region_code, period, row_limit, show_amounts
		FROM widget_region_ratings WHERE widget_id = $1
	`, widgetID).Scan(&r.WidgetID, &r.RegionCode, &r.Period, &r.Limit, &r.ShowAmounts)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find region rating settings: %w", err)
	}
	return r, nil
}
