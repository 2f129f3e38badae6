// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// VariantDefaults returns the render-time default template for a variant.
// Defaults sit at the bottom of the resolve merge: instance settings and
// specialized rows override them key by key, and they are never written
// back to storage. The returned map is freshly built on every call so
// callers can mutate it during merging.
//
// Single-row variants source their nested defaults from the corresponding
// FromDoc constructor applied to an empty object, so the per-field defaults
// live in exactly one place.
func VariantDefaults(v Variant) map[string]any {
	switch v {
	case VariantHero:
		return map[string]any{
			"autoplay":        false,
			"autoplay_delay":  5000,
			"show_arrows":     true,
			"show_indicators": true,
			"height":          "large",
			"cta_enabled":     false,
			"slides":          []any{},
		}
	case VariantSlider:
		return map[string]any{
			"autoplay":        true,
			"autoplay_delay":  4000,
			"show_arrows":     true,
			"show_indicators": true,
			"slides":          []any{},
		}
	case VariantForm:
		return map[string]any{
			"title":           "",
			"submit_label":    "Submit",
			"success_message": "Thank you! We will be in touch.",
			"fields":          []any{},
		}
	case VariantMenu:
		return map[string]any{
			"orientation": "horizontal",
			"sticky":      false,
			"items":       []any{},
		}
	case VariantGallery:
		return map[string]any{
			"columns":  3,
			"lightbox": true,
			"images":   []any{},
		}
	case VariantDonation:
		d, _ := DonationSettingsFromDoc(map[string]any{})
		return map[string]any{
			"title":    "Support the school",
			"donation": d.Doc(),
		}
	case VariantRegionRating:
		r, _ := RegionRatingSettingsFromDoc(map[string]any{})
		return map[string]any{
			"title":  "Region rating",
			"rating": r.Doc(),
		}
	case VariantDonationsList:
		d, _ := DonationFeedSettingsFromDoc(map[string]any{})
		return map[string]any{
			"title": "Recent donations",
			"list":  d.Doc(),
		}
	case VariantReferralBoard:
		r, _ := ReferralBoardSettingsFromDoc(map[string]any{})
		return map[string]any{
			"leaderboard": r.Doc(),
		}
	case VariantImage:
		// Image settings are claimed as top-level scalars, so the
		// defaults sit at the top level too.
		i, _ := ImageSettingsFromDoc(map[string]any{})
		return i.Doc()
	case VariantRecurringDonors:
		r, _ := RecurringDonorSettingsFromDoc(map[string]any{})
		return map[string]any{
			"recurring": r.Doc(),
		}
	}
	return map[string]any{}
}
