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

// GalleryImageStore manages the image collections of gallery widgets.
type GalleryImageStore struct {
	db *sql.DB
}

// NewGalleryImageStore returns a new GalleryImageStore backed by the given database.
func NewGalleryImageStore(db *sql.DB) *GalleryImageStore {
	return &GalleryImageStore{db: db}
}

// ReplaceAll swaps the widget's entire image set inside the caller's
// transaction, reassigning dense 1-based sort indices from input order.
func (s *GalleryImageStore) ReplaceAll(tx *sql.Tx, widgetID uuid.UUID, images []models.GalleryImage) error {
	if _, err := tx.Exec(`DELETE FROM widget_gallery_images WHERE widget_id = $1`, widgetID); err != nil {
		return fmt.Errorf("delete widget gallery images: %w", err)
	}

	if len(images) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(`
		INSERT INTO widget_gallery_images
			(widget_id, image, caption, alt_text, link_url, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return fmt.Errorf("prepare gallery image insert: %w", err)
	}
	defer stmt.Close()

	for i, img := range images {
		if _, err := stmt.Exec(widgetID, img.Image, img.Caption, img.AltText, img.LinkURL, i+1); err != nil {
			return fmt.Errorf("insert gallery image %d: %w", i+1, err)
		}
	}
	return nil
}

// ListOrdered returns the widget's images sorted by their stored sort index.
func (s *GalleryImageStore) ListOrdered(widgetID uuid.UUID) ([]models.GalleryImage, error) {
	rows, err := s.db.Query(`
		SELECT id, widget_id, image, caption, alt_text, link_url, sort_order
		FROM widget_gallery_images
		WHERE widget_id = $1
		ORDER BY sort_order
	`, widgetID)
	if err != nil {
		return nil, fmt.Errorf("list widget gallery images: %w", err)
	}
	defer rows.Close()

	var images []models.GalleryImage
	for rows.Next() {
		var img models.GalleryImage
		err := rows.Scan(
			&img.ID, &img.WidgetID, &img.Image, &img.Caption,
			&img.AltText, &img.LinkURL, &img.SortOrder,
		)
		if err != nil {
			return nil, fmt.Errorf("scan gallery image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
