package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
)

// DemoSiteID is the site the seeded widgets belong to, so the API is
// explorable right after first boot.
var DemoSiteID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

// Seed populates the database with initial development data: a hero and a
// donation widget on the demo site, each with a small starter
// configuration. It is a no-op when any widget already exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM site_widgets").Scan(&count); err != nil {
		return fmt.Errorf("seed check widgets: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	var heroID uuid.UUID
	err := db.QueryRow(`
		INSERT INTO site_widgets (site_id, variant, position_slug, name, sort_order)
		VALUES ($1, 'hero', 'header', 'Welcome hero', 1)
		RETURNING id
	`, DemoSiteID).Scan(&heroID)
	if err != nil {
		return fmt.Errorf("seed insert hero widget: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO widget_slides (widget_id, title, subtitle, background_image, sort_order)
		VALUES ($1, 'Welcome to our school', 'Help us grow', 'heroes/welcome.jpg', 1)
	`, heroID)
	if err != nil {
		return fmt.Errorf("seed insert slide: %w", err)
	}

	var donationID uuid.UUID
	err = db.QueryRow(`
		INSERT INTO site_widgets (site_id, variant, position_slug, name, sort_order)
		VALUES ($1, 'donation', 'content', 'Donation block', 2)
		RETURNING id
	`, DemoSiteID).Scan(&donationID)
	if err != nil {
		return fmt.Errorf("seed insert donation widget: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO widget_donation_settings (widget_id, target_amount, success_message)
		VALUES ($1, 500000, 'Thank you for supporting the school!')
	`, donationID)
	if err != nil {
		return fmt.Errorf("seed insert donation settings: %w", err)
	}

	slog.Info("database seeded with demo site widgets",
		"site_id", DemoSiteID,
		"widgets", 2,
	)

	return nil
}
