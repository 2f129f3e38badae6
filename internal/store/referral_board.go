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

// ReferralBoardStore manages the single settings row of
// referral-leaderboard widgets.
type ReferralBoardStore struct {
	db *sql.DB
}

// NewReferralBoardStore returns a new ReferralBoardStore backed by the given database.
func NewReferralBoardStore(db *sql.DB) *ReferralBoardStore {
	return &ReferralBoardStore{db: db}
}

// Replace swaps the widget's leaderboard settings row inside the caller's transaction.
func (s *ReferralBoardStore) Replace(tx *sql.Tx, widgetID uuid.UUID, r models.ReferralBoardSettings) error {
	if _, err := tx.Exec(`DELETE FROM widget_referral_boards WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete referral board settings: %w", err)
	}

	_, err := tx.Exec(`
		INSERT INTO widget_referral_boards
			(widget_id, row_limit, period, show_totals, title)
		VALUES ($1, $2, $3, $4, $5)
	`, widgetID, r.Limit, r.Period, r.ShowTotals, r.Title)
	if err != nil {
		return fmt.Errorf("insert referral board settings: %w", err)
	}
	return nil
}

// Find returns the widget's leaderboard settings, or nil when none are stored.
func (s *ReferralBoardStore) Find(widgetID uuid.UUID) (*models.ReferralBoardSettings, error) {
	r := &models.ReferralBoardSettings{}
	err := s.db.QueryRow(`
		SELECT widget_id, row_limit, period, show_totals, title
		FROM widget_referral_boards WHERE widget_id = $1
	`, widgetID).Scan(&r.WidgetID, &r.Limit, &r.Period, &r.ShowTotals, &r.Title)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find referral board settings: %w", err)
	}
	return r, nil
}
