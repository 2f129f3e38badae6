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

// DonationStore manages the single settings row of donation widgets.
type DonationStore struct {
	db *sql.DB
}

// NewDonationStore returns a new DonationStore backed by the given database.
func NewDonationStore(db *sql.DB) *DonationStore {
	return &DonationStore{db: db}
}

// Replace swaps the widget's donation settings row inside the caller's
// transaction. Delete-then-insert keeps replace semantics identical to the
// multi-row stores.
func (s *DonationStore) Replace(tx *sql.Tx, widgetID uuid.UUID, d models.DonationSettings) error {
	if _, err := tx.Exec(`DELETE FROM widget_donation_settings WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete donation settings: %w", err)
	}

	amounts := d.SuggestedAmounts
	if amounts == nil {
		amounts = []int{}
	}
	amountsJSON, err := json.Marshal(amounts)
	if err != nil {
		return fmt.Errorf("marshal suggested amounts: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO widget_donation_settings
			(widget_id, min_amount, suggested_amounts, allow_custom_amount,
			 show_progress, target_amount, success_message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, widgetID, d.MinAmount, amountsJSON, d.AllowCustomAmount,
		d.ShowProgress, d.TargetAmount, d.SuccessMessage)
	if err != nil {
		return fmt.Errorf("insert donation settings: %w", err)
	}
	return nil
}

// Find returns the widget's donation settings, or nil when none are stored.
func (s *DonationStore) Find(widgetID uuid.UUID) (*models.DonationSettings, error) {
	d := &models.DonationSettings{}
	var amountsJSON []byte
	err := s.db.QueryRow(`
		SELECT widget_id, min_amount, suggested_amounts, allow_custom_amount,
		       show_progress, target_amount, success_message
		FROM widget_donation_settings WHERE widget_id = $1
	`, widgetID).Scan(
		&d.WidgetID, &d.MinAmount, &amountsJSON, &d.AllowCustomAmount,
		&d.ShowProgress, &d.TargetAmount, &d.SuccessMessage,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find donation settings: %w", err)
	}
	if err := json.Unmarshal(amountsJSON, &d.SuggestedAmounts); err != nil {
		return nil, fmt.Errorf("unmarshal suggested amounts: %w", err)
	}
	return d, nil
}
