package store

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"

	"newschools/internal/models"
)

func TestWidgetStoreLifecycle(t *testing.T) {
	db := testDB(t)
	widgets := NewWidgetStore(db)

	w := testWidget(t, db, models.VariantHero)
	if w.ID == uuid.Nil {
		t.Fatal("expected generated widget ID")
	}
	if !w.IsActive || !w.IsVisible {
		t.Errorf("flags not stored: %+v", w)
	}

	found, err := widgets.FindByID(w.ID)
	if err != nil {
		t.Fatalf("FindByID: %v", err)
	}
	if found == nil || found.ID != w.ID || found.Variant != models.VariantHero {
		t.Errorf("FindByID = %+v", found)
	}

	updated, err := widgets.UpdateMeta(w.ID, "renamed", 7, false, true)
	if err != nil {
		t.Fatalf("UpdateMeta: %v", err)
	}
	if updated.Name != "renamed" || updated.SortOrder != 7 || updated.IsActive {
		t.Errorf("UpdateMeta = %+v", updated)
	}

	if err := widgets.SoftDelete(w.ID); err != nil {
		t.Fatalf("SoftDelete: %v", err)
	}

	// Soft-deleted instances disappear from every read path.
	gone, err := widgets.FindByID(w.ID)
	if err != nil {
		t.Fatalf("FindByID after delete: %v", err)
	}
	if gone != nil {
		t.Errorf("soft-deleted widget still findable: %+v", gone)
	}

	if err := widgets.SoftDelete(w.ID); !errors.Is(err, sql.ErrNoRows) {
		t.Errorf("second SoftDelete = %v, want sql.ErrNoRows", err)
	}
}

func TestWidgetStoreListBySite(t *testing.T) {
	db := testDB(t)
	widgets := NewWidgetStore(db)

	siteID := uuid.New()
	for i, variant := range []models.Variant{models.VariantMenu, models.VariantHero} {
		w, err := widgets.Create(&models.WidgetInstance{
			SiteID:    siteID,
			Variant:   variant,
			Position:  "content",
			Name:      string(variant),
			SortOrder: 2 - i, // insert out of order on purpose
			IsActive:  true,
			IsVisible: true,
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		t.Cleanup(func() { db.Exec("DELETE FROM site_widgets WHERE id = $1", w.ID) })
	}

	list, err := widgets.ListBySite(siteID)
	if err != nil {
		t.Fatalf("ListBySite: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("got %d widgets, want 2", len(list))
	}
	if list[0].Variant != models.VariantHero || list[1].Variant != models.VariantMenu {
		t.Errorf("ordering wrong: %q then %q", list[0].Variant, list[1].Variant)
	}
}

// TestWidgetCascadeDelete verifies a hard instance delete removes generic
// and specialized rows through the FK cascade.
func TestWidgetCascadeDelete(t *testing.T) {
	db := testDB(t)
	w := testWidget(t, db, models.VariantHero)

	slides := NewSlideStore(db)
	settings := NewSettingStore(db)
	inTx(t, db, func(tx *sql.Tx) error {
		if err := slides.ReplaceAll(tx, w.ID, []models.Slide{{Title: "A"}}); err != nil {
			return err
		}
		return settings.ReplaceAll(tx, w.ID, []models.WidgetSetting{
			{Key: "cta_enabled", Value: "1", Type: models.ValueBoolean},
		})
	})

	if _, err := db.Exec("DELETE FROM site_widgets WHERE id = $1", w.ID); err != nil {
		t.Fatalf("hard delete: %v", err)
	}

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM widget_slides WHERE widget_id = $1", w.ID).Scan(&n); err != nil {
		t.Fatalf("count slides: %v", err)
	}
	if n != 0 {
		t.Errorf("%d slides survived the cascade", n)
	}
	if err := db.QueryRow("SELECT COUNT(*) FROM widget_settings WHERE widget_id = $1", w.ID).Scan(&n); err != nil {
		t.Fatalf("count settings: %v", err)
	}
	if n != 0 {
		t.Errorf("%d settings survived the cascade", n)
	}
}
