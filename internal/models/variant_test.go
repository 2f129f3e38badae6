package models

import "testing"

// TestVariantCatalog checks the closed variant set: every catalogued
// variant claims its key(s) and knows its row multiplicity; anything else
// is unknown.
func TestVariantCatalog(t *testing.T) {
	wantClaimed := map[Variant][]string{
		VariantHero:            {"slides"},
		VariantSlider:          {"slides"},
		VariantForm:            {"fields"},
		VariantMenu:            {"items"},
		VariantGallery:         {"images"},
		VariantDonation:        {"donation"},
		VariantRegionRating:    {"rating"},
		VariantDonationsList:   {"list"},
		VariantReferralBoard:   {"leaderboard"},
		VariantImage:           {"url", "alt_text", "altText", "caption", "link_url", "linkUrl", "fit", "rounded"},
		VariantRecurringDonors: {"recurring"},
	}

	if len(Variants) != len(wantClaimed) {
		t.Fatalf("Variants has %d entries, want %d", len(Variants), len(wantClaimed))
	}

	for _, v := range Variants {
		if !v.Known() {
			t.Errorf("%q should be known", v)
		}
		got := v.ClaimedKeys()
		want := wantClaimed[v]
		if len(got) != len(want) {
			t.Errorf("%q claims %v, want %v", v, got, want)
			continue
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%q claims %v, want %v", v, got, want)
				break
			}
		}
	}

	multi := map[Variant]bool{
		VariantHero: true, VariantSlider: true, VariantForm: true,
		VariantMenu: true, VariantGallery: true,
	}
	for _, v := range Variants {
		if got := v.MultiRow(); got != multi[v] {
			t.Errorf("%q MultiRow() = %v, want %v", v, got, multi[v])
		}
	}
}

// TestVariantImageClaimsScalars pins down the image variant's contract:
// its settings live as top-level scalar keys in the document, each routed
// to the specialized table, never wrapped in a nested object.
func TestVariantImageClaimsScalars(t *testing.T) {
	claimed := make(map[string]bool)
	for _, k := range VariantImage.ClaimedKeys() {
		claimed[k] = true
	}

	for _, k := range []string{"url", "alt_text", "altText", "caption", "link_url", "linkUrl", "fit", "rounded"} {
		if !claimed[k] {
			t.Errorf("image variant should claim %q", k)
		}
	}
	if claimed["image"] {
		t.Error("image variant should not claim a nested \"image\" key")
	}
}

func TestVariantUnknown(t *testing.T) {
	v := Variant("countdown")
	if v.Known() {
		t.Error("unknown variant reported as known")
	}
	if keys := v.ClaimedKeys(); len(keys) != 0 {
		t.Errorf("unknown variant claims %v", keys)
	}
	if len(VariantDefaults(v)) != 0 {
		t.Error("unknown variant should have no defaults")
	}
}

// TestVariantDefaultsContainClaimedKeys ensures the default template seeds
// the specialized slot, so a widget with no rows still renders an empty
// collection (or default scalars) rather than missing keys.
func TestVariantDefaultsContainClaimedKeys(t *testing.T) {
	for _, v := range Variants {
		defaults := VariantDefaults(v)
		for _, key := range v.ClaimedKeys() {
			// The camelCase spellings are claim-only aliases; the
			// defaults use the stored names.
			if key == "altText" || key == "linkUrl" {
				continue
			}
			if _, ok := defaults[key]; !ok {
				t.Errorf("%q defaults missing claimed key %q", v, key)
			}
		}
	}
}

// TestVariantDefaultsFresh guards against shared mutable state: mutating
// one returned template must not leak into the next call.
func TestVariantDefaultsFresh(t *testing.T) {
	a := VariantDefaults(VariantHero)
	a["autoplay"] = true
	a["slides"] = []any{"mutated"}

	b := VariantDefaults(VariantHero)
	if b["autoplay"] != false {
		t.Error("defaults template was mutated by a previous caller")
	}
	if len(b["slides"].([]any)) != 0 {
		t.Error("slides default was mutated by a previous caller")
	}

	c := VariantDefaults(VariantImage)
	c["url"] = "mutated"
	if VariantDefaults(VariantImage)["url"] != "" {
		t.Error("image defaults were mutated by a previous caller")
	}
}
