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

// SlideStore manages the slide collections of hero and slider widgets.
type SlideStore struct {
	db *sql.DB
}

// NewSlideStore returns a new SlideStore backed by the given database.
func NewSlideStore(db *sql.DB) *SlideStore {
	return &SlideStore{db: db}
}

// ReplaceAll swaps the widget's entire slide set inside the caller's
// transaction. Sort indices are reassigned from input order, 1-based, so
// they stay dense after every sync. Row IDs are not preserved across edits.
func (s *SlideStore) ReplaceAll(tx *sql.Tx, widgetID uuid.UUID, slides []models.Slide) error {
	if _, err := tx.Exec(`DELETE FROM widget_slides WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete widget slides: %w", err)
	}

	if len(slides) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO widget_slides
			(widget_id, title, subtitle, button_text, button_url, link_type,
			 open_in_new_tab, background_image, overlay_color, overlay_opacity,
			 gradient_direction, gradient_intensity, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`)
	if err != nil {
		return fmt.Errorf("prepare slide insert: %w", err)
	}
	defer stmt.Close()

	for i, slide := range slides {
		_, err := stmt.Exec(
			widgetID, slide.Title, slide.Subtitle, slide.ButtonText, slide.ButtonURL,
			slide.LinkType, slide.OpenInNewTab, slide.BackgroundImage,
			slide.OverlayColor, slide.OverlayOpacity,
			slide.GradientDirection, slide.GradientIntensity, i+1,
		)
		if err != nil {
			return fmt.Errorf("insert slide %d: %w", i+1, err)
		}
	}
	return nil
}

// ListOrdered returns the widget's slides sorted by their stored sort index.
func (s *SlideStore) ListOrdered(widgetID uuid.UUID) ([]models.Slide, error) {
	rows, err := s.db.Query(`
		SELECT id, widget_id, title, subtitle, button_text, button_url, link_type,
		       open_in_new_tab, background_image, overlay_color, overlay_opacity,
		       gradient_direction, gradient_intensity, sort_order
		FROM widget_slides
		WHERE widget_id = $1
		ORDER BY sort_order
	`, widgetID)
	if err != nil {
		return nil, fmt.Errorf("list widget slides: %w", err)
	}
	defer rows.Close()

	var slides []models.Slide
	for rows.Next() {
		var slide models.Slide
		err := rows.Scan(
			&slide.ID, &slide.WidgetID, &slide.Title, &slide.Subtitle,
			&slide.ButtonText, &slide.ButtonURL, &slide.LinkType,
			&slide.OpenInNewTab, &slide.BackgroundImage, &slide.OverlayColor,
			&slide.OverlayOpacity, &slide.GradientDirection,
			&slide.GradientIntensity, &slide.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scan slide: %w", err)
		}
		slides = append(slides, slide)
	}
	return slides, rows.Err()
}
