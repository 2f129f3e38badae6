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

// MenuItemStore manages the item collections of menu widgets.
type MenuItemStore struct {
	db *sql.DB
}

// NewMenuItemStore returns a new MenuItemStore backed by the given database.
func NewMenuItemStore(db *sql.DB) *MenuItemStore {
	return &MenuItemStore{db: db}
}

// ReplaceAll swaps the widget's entire item set inside the caller's
// transaction, reassigning dense 1-based sort indices from input order.
func (s *MenuItemStore) ReplaceAll(tx *sql.Tx, widgetID uuid.UUID, items []models.MenuItem) error {
	if _, err := tx.Exec(`DELETE FROM widget_menu_items WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete widget menu items: %w", err)
	}

	if len(items) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO widget_menu_items
			(widget_id, label, url, link_type, open_in_new_tab, parent_index, icon, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return fmt.Errorf("prepare menu item insert: %w", err)
	}
	defer stmt.Close()

	for i, item := range items {
		_, err := stmt.Exec(
			widgetID, item.Label, item.URL, item.LinkType,
			item.OpenInNewTab, item.ParentIndex, item.Icon, i+1,
		)
		if err != nil {
			return fmt.Errorf("insert menu item %d: %w", i+1, err)
		}
	}
	return nil
}

// ListOrdered returns the widget's items sorted by their stored sort index.
func (s *MenuItemStore) ListOrdered(widgetID uuid.UUID) ([]models.MenuItem, error) {
	rows, err := s.db.Query(`
		SELECT id, widget_id, label, url, link_type, open_in_new_tab, parent_index, icon, sort_order
		FROM widget_menu_items
		WHERE widget_id = $1
		ORDER BY sort_order
	`, widgetID)
	if err != nil {
		return nil, fmt.Errorf("list widget menu items: %w", err)
	}
	defer rows.Close()

	var items []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(
			&item.ID, &item.WidgetID, &item.Label, &item.URL, &item.LinkType,
			&item.OpenInNewTab, &item.ParentIndex, &item.Icon, &item.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scan menu item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}
