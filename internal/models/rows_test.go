package models

import (
	"reflect"
	"testing"
)

func TestFormFieldFromDoc(t *testing.T) {
	f, err := FormFieldFromDoc(map[string]any{
		"name":      "email",
		"fieldType": "email",
		"required":  true,
	})
	if err != nil {
		t.Fatalf("FormFieldFromDoc: %v", err)
	}
	if f.FieldType != FieldEmail || !f.IsRequired {
		t.Errorf("field = %+v", f)
	}
	if f.Label != "email" {
		t.Errorf("Label should default to name, got %q", f.Label)
	}

	if _, err := FormFieldFromDoc(map[string]any{"label": "No name"}); err == nil {
		t.Error("expected error for field without name")
	}
	if _, err := FormFieldFromDoc([]any{}); err == nil {
		t.Error("expected error for non-object field")
	}
}

func TestFormFieldOptions(t *testing.T) {
	f, err := FormFieldFromDoc(map[string]any{
		"name":      "grade",
		"fieldType": "select",
		"options":   []any{"1st", "2nd", 3},
	})
	if err != nil {
		t.Fatalf("FormFieldFromDoc: %v", err)
	}
	if !reflect.DeepEqual(f.Options, []string{"1st", "2nd"}) {
		t.Errorf("Options = %v", f.Options)
	}
	if got := f.Doc()["options"]; !reflect.DeepEqual(got, []string{"1st", "2nd"}) {
		t.Errorf("Doc options = %v", got)
	}
}

func TestMenuItemFromDoc(t *testing.T) {
	m, err := MenuItemFromDoc(map[string]any{
		"label":    "About",
		"url":      "/about",
		"linkType": "page",
	})
	if err != nil {
		t.Fatalf("MenuItemFromDoc: %v", err)
	}
	if m.ParentIndex != -1 {
		t.Errorf("ParentIndex default = %d, want -1", m.ParentIndex)
	}
	if m.LinkType != LinkPage {
		t.Errorf("LinkType = %q", m.LinkType)
	}

	if _, err := MenuItemFromDoc(map[string]any{"url": "/x"}); err == nil {
		t.Error("expected error for item without label")
	}
}

func TestGalleryImageFromDoc(t *testing.T) {
	g, err := GalleryImageFromDoc(map[string]any{
		"image":   "gallery/1.jpg",
		"altText": "First",
	})
	if err != nil {
		t.Fatalf("GalleryImageFromDoc: %v", err)
	}
	if g.AltText != "First" {
		t.Errorf("AltText = %q", g.AltText)
	}

	if _, err := GalleryImageFromDoc(map[string]any{"caption": "x"}); err == nil {
		t.Error("expected error for image row without path")
	}
}

func TestDonationSettingsFromDoc(t *testing.T) {
	d, err := DonationSettingsFromDoc(map[string]any{})
	if err != nil {
		t.Fatalf("DonationSettingsFromDoc: %v", err)
	}
	if d.MinAmount != 100 {
		t.Errorf("MinAmount default = %d", d.MinAmount)
	}
	if !reflect.DeepEqual(d.SuggestedAmounts, []int{300, 500, 1000}) {
		t.Errorf("SuggestedAmounts default = %v", d.SuggestedAmounts)
	}
	if !d.AllowCustomAmount || !d.ShowProgress {
		t.Errorf("boolean defaults = %+v", d)
	}

	d, err = DonationSettingsFromDoc(map[string]any{
		"minAmount":        float64(0),
		"suggestedAmounts": []any{float64(250), float64(900)},
		"targetAmount":     float64(100000),
	})
	if err != nil {
		t.Fatalf("DonationSettingsFromDoc: %v", err)
	}
	if d.MinAmount != 1 {
		t.Errorf("MinAmount floor = %d, want 1", d.MinAmount)
	}
	if !reflect.DeepEqual(d.SuggestedAmounts, []int{250, 900}) {
		t.Errorf("SuggestedAmounts = %v", d.SuggestedAmounts)
	}
	if d.TargetAmount != 100000 {
		t.Errorf("TargetAmount = %d", d.TargetAmount)
	}
}

func TestSingleRowDocRoundTrips(t *testing.T) {
	t.Run("region rating", func(t *testing.T) {
		orig := RegionRatingSettings{RegionCode: "77", Period: PeriodYear, Limit: 25, ShowAmounts: false}
		got, err := RegionRatingSettingsFromDoc(orig.Doc())
		if err != nil || got != orig {
			t.Errorf("round trip: got %+v, %v", got, err)
		}
	})
	t.Run("donation feed", func(t *testing.T) {
		orig := DonationFeedSettings{Limit: 5, ShowAnonymous: false, ShowAmounts: true, Period: PeriodMonth}
		got, err := DonationFeedSettingsFromDoc(orig.Doc())
		if err != nil || got != orig {
			t.Errorf("round trip: got %+v, %v", got, err)
		}
	})
	t.Run("referral board", func(t *testing.T) {
		orig := ReferralBoardSettings{Limit: 3, Period: PeriodQuarter, ShowTotals: false, Title: "Top"}
		got, err := ReferralBoardSettingsFromDoc(orig.Doc())
		if err != nil || got != orig {
			t.Errorf("round trip: got %+v, %v", got, err)
		}
	})
	t.Run("image", func(t *testing.T) {
		orig := ImageSettings{URL: "img/x.png", AltText: "x", Fit: FitContain, Rounded: true}
		got, err := ImageSettingsFromDoc(orig.Doc())
		if err != nil || got != orig {
			t.Errorf("round trip: got %+v, %v", got, err)
		}
	})
	t.Run("recurring donors", func(t *testing.T) {
		orig := RecurringDonorSettings{Limit: 8, Period: PeriodYear, ShowAmounts: true, Title: "Monthly"}
		got, err := RecurringDonorSettingsFromDoc(orig.Doc())
		if err != nil || got != orig {
			t.Errorf("round trip: got %+v, %v", got, err)
		}
	})
}
