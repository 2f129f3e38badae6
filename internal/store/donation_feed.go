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

// DonationFeedStore manages the single settings row of donations-list widgets.
type DonationFeedStore struct {
	db *sql.DB
}

// NewDonationFeedStore returns a new DonationFeedStore backed by the given database.
func NewDonationFeedStore(db *sql.DB) *DonationFeedStore {
	return &DonationFeedStore{db: db}
}

// Replace swaps the widget's feed settings row inside the caller's transaction.
func (s *DonationFeedStore) Replace(tx *sql.Tx, widgetID uuid.UUID, d models.DonationFeedSettings) error {
	if _, err := tx.Exec(`DELETE FROM widget_donation_feeds WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete donation feed settings: %w", err)
	}

	_, err := tx.Exec(`
		INSERT INTO widget_donation_feeds
			(widget_id, row_limit, show_anonymous, show_amounts, period)
		VALUES ($1, $2, $3, $4, $5)
	`, widgetID, d.Limit, d.ShowAnonymous, d.ShowAmounts, d.Period)
	if err != nil {
		return fmt.Errorf("insert donation feed settings: %w", err)
	}
	return nil
}

// Find returns the widget's feed settings, or nil when none are stored.
func (s *DonationFeedStore) Find(widgetID uuid.UUID) (*models.DonationFeedSettings, error) {
	d := &models.DonationFeedSettings{}
	err := s.db.QueryRow(`
		SELECT widget_id, row_limit, show_anonymous, show_amounts, period
		FROM widget_donation_feeds WHERE widget_id = $1
	`, widgetID).Scan(&d.WidgetID, &d.Limit, &d.ShowAnonymous, &d.ShowAmounts, &d.Period)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find donation feed settings: %w", err)
	}
	return d, nil
}
