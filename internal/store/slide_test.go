package store

import (
	"database/sql"
	"testing"

	"newschools/internal/models"
)

func TestSlideReplaceAllOrdering(t *testing.T) {
	db := testDB(t)
	w := testWidget(t, db, models.VariantHero)
	slides := NewSlideStore(db)

	inTx(t, db, func(tx *sql.Tx) error {
		return slides.ReplaceAll(tx, w.ID, []models.Slide{
			{Title: "A"}, {Title: "B"}, {Title: "C"},
		})
	})

	got, err := slides.ListOrdered(w.ID)
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d slides, want 3", len(got))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got[i].Title != want {
			t.Errorf("slide %d = %q, want %q", i, got[i].Title, want)
		}
		if got[i].SortOrder != i+1 {
			t.Errorf("slide %d sort_order = %d, want %d", i, got[i].SortOrder, i+1)
		}
	}

	// Shrinking resync: indices must be reassigned densely from the new
	// input order, and the table must hold exactly the new set.
	inTx(t, db, func(tx *sql.Tx) error {
		return slides.ReplaceAll(tx, w.ID, []models.Slide{
			{Title: "C"}, {Title: "A"},
		})
	})

	got, err = slides.ListOrdered(w.ID)
	if err != nil {
		t.Fatalf("ListOrdered after shrink: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d slides after shrink, want 2", len(got))
	}
	if got[0].Title != "C" || got[0].SortOrder != 1 {
		t.Errorf("first slide = %q/%d", got[0].Title, got[0].SortOrder)
	}
	if got[1].Title != "A" || got[1].SortOrder != 2 {
		t.Errorf("second slide = %q/%d", got[1].Title, got[1].SortOrder)
	}
}

// TestSlideReplaceAllIdempotent: replaying the same set must not grow the
// table.
func TestSlideReplaceAllIdempotent(t *testing.T) {
	db := testDB(t)
	w := testWidget(t, db, models.VariantHero)
	slides := NewSlideStore(db)

	set := []models.Slide{{Title: "One"}, {Title: "Two"}}
	for i := 0; i < 2; i++ {
		inTx(t, db, func(tx *sql.Tx) error {
			return slides.ReplaceAll(tx, w.ID, set)
		})
	}

	got, err := slides.ListOrdered(w.ID)
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d slides, want 2 — replace must not accumulate", len(got))
	}
}

func TestSlideFieldPersistence(t *testing.T) {
	db := testDB(t)
	w := testWidget(t, db, models.VariantSlider)
	slides := NewSlideStore(db)

	in := models.Slide{
		Title:             "Promo",
		Subtitle:          "sub",
		ButtonText:        "Donate",
		ButtonURL:         "/donate",
		LinkType:          models.LinkExternal,
		OpenInNewTab:      true,
		BackgroundImage:   "heroes/a.jpg",
		OverlayColor:      "#112233",
		OverlayOpacity:    65,
		GradientDirection: models.GradientTop,
		GradientIntensity: 20,
	}
	inTx(t, db, func(tx *sql.Tx) error {
		return slides.ReplaceAll(tx, w.ID, []models.Slide{in})
	})

	got, err := slides.ListOrdered(w.ID)
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d slides", len(got))
	}

	out := got[0]
	in.ID, in.WidgetID, in.SortOrder = out.ID, out.WidgetID, out.SortOrder
	if out != in {
		t.Errorf("slide fields mismatch:\n got %+v\nwant %+v", out, in)
	}
}

func TestSlideReplaceAllEmpty(t *testing.T) {
	db := testDB(t)
	w := testWidget(t, db, models.VariantHero)
	slides := NewSlideStore(db)

	inTx(t, db, func(tx *sql.Tx) error {
		return slides.ReplaceAll(tx, w.ID, []models.Slide{{Title: "A"}})
	})
	inTx(t, db, func(tx *sql.Tx) error {
		return slides.ReplaceAll(tx, w.ID, nil)
	})

	got, err := slides.ListOrdered(w.ID)
	if err != nil {
		t.Fatalf("ListOrdered: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d slides, want 0 after empty replace", len(got))
	}
}
