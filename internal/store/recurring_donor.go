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

// RecurringDonorStore manages the single settings row of recurring-donors
// widgets.
type RecurringDonorStore struct {
	db *sql.DB
}

// NewRecurringDonorStore returns a new RecurringDonorStore backed by the given database.
func NewRecurringDonorStore(db *sql.DB) *RecurringDonorStore {
	return &RecurringDonorStore{db: db}
}

// Replace swaps the widget's recurring-donor settings row inside the caller's transaction.
func (s *RecurringDonorStore) Replace(tx *sql.Tx, widgetID uuid.UUID, r models.RecurringDonorSettings) error {
	if _, err := tx.Exec(`DELETE FROM widget_recurring_donor_settings WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete recurring donor settings: %w", err)
	}

	_, err := tx.Exec(`
		INSERT INTO widget_recurring_donor_settings
			(widget_id, row_limit, period, show_amounts, title)
		VALUES ($1, $2, $3, $4, $5)
	`, widgetID, r.Limit, r.Period, r.ShowAmounts, r.Title)
	if err != nil {
		return fmt.Errorf("insert recurring donor settings: %w", err)
	}
	return nil
}

// Find returns the widget's recurring-donor settings, or nil when none are stored.
func (s *RecurringDonorStore) Find(widgetID uuid.UUID) (*models.RecurringDonorSettings, error) {
	r := &models.RecurringDonorSettings{}
	err := s.db.QueryRow(`
		SELECT widget_id, row_limit, period, show_amounts, title
		FROM widget_recurring_donor_settings WHERE widget_id = $1
	`, widgetID).Scan(&r.WidgetID, &r.Limit, &r.Period, &r.ShowAmounts, &r.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find recurring donor settings: %w", err)
	}
	return r, nil
}
