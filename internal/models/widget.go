// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the widget-configuration domain types: widget
// instances, the closed set of widget variants, the typed setting codec,
// and the specialized row shapes each variant stores.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Variant identifies a widget's kind. The set is closed: every variant the
// platform renders is enumerated here, and both the synchronizer and the
// resolver dispatch on it exhaustively.
type Variant string

const (
	VariantHero            Variant = "hero"
	VariantSlider          Variant = "slider"
	VariantForm            Variant = "form"
	VariantMenu            Variant = "menu"
	VariantGallery         Variant = "gallery"
	VariantDonation        Variant = "donation"
	VariantRegionRating    Variant = "region_rating"
	VariantDonationsList   Variant = "donations_list"
	VariantReferralBoard   Variant = "referral_leaderboard"
	VariantImage           Variant = "image"
	VariantRecurringDonors Variant = "recurring_donors"
)

// Variants lists every known variant, in catalog order.
var Variants = []Variant{
	VariantHero,
	VariantSlider,
	VariantForm,
	VariantMenu,
	VariantGallery,
	VariantDonation,
	VariantRegionRating,
	VariantDonationsList,
	VariantReferralBoard,
	VariantImage,
	VariantRecurringDonors,
}

// Known reports whether v is a catalogued variant.
func (v Variant) Known() bool {
	switch v {
	case VariantHero, VariantSlider, VariantForm, VariantMenu, VariantGallery,
		VariantDonation, VariantRegionRating, VariantDonationsList,
		VariantReferralBoard, VariantImage, VariantRecurringDonors:
		return true
	}
	return false
}

// ClaimedKeys returns the configuration-document keys this variant routes
// to specialized storage. Every other key in an incoming document goes to
// the generic setting store. Most variants claim one key holding their
// collection or settings object; the image variant claims its fixed scalar
// fields at the top level of the document (both the incoming and the
// stored spelling of each). Unknown variants claim nothing.
func (v Variant) ClaimedKeys() []string {
	switch v {
	case VariantHero, VariantSlider:
		return []string{"slides"}
	case VariantForm:
		return []string{"fields"}
	case VariantMenu:
		return []string{"items"}
	case VariantGallery:
		return []string{"images"}
	case VariantDonation:
		return []string{"donation"}
	case VariantRegionRating:
		return []string{"rating"}
	case VariantDonationsList:
		return []string{"list"}
	case VariantReferralBoard:
		return []string{"leaderboard"}
	case VariantImage:
		return []string{"url", "alt_text", "altText", "caption", "link_url", "linkUrl", "fit", "rounded"}
	case VariantRecurringDonors:
		return []string{"recurring"}
	}
	return nil
}

// MultiRow reports whether the variant's specialized data is an ordered
// collection (slides, fields, …) rather than a single settings row.
func (v Variant) MultiRow() bool {
	switch v {
	case VariantHero, VariantSlider, VariantForm, VariantMenu, VariantGallery:
		return true
	}
	return false
}

// WidgetInstance is one placement of a widget variant on one site. The
// variant slug is denormalized onto the instance so dispatch never needs a
// catalog join.
type WidgetInstance struct {
	ID        uuid.UUID  `json:"id"`
	SiteID    uuid.UUID  `json:"site_id"`
	Variant   Variant    `json:"variant"`
	Position  string     `json:"position"`
	Name      string     `json:"name"`
	SortOrder int        `json:"sort_order"`
	IsActive  bool       `json:"is_active"`
	IsVisible bool       `json:"is_visible"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// WidgetSetting is one generic configuration entry: a typed key-value pair
// holding every field that is not part of the variant's specialized shape.
// Settings are only ever written as a full replacement set during sync.
type WidgetSetting struct {
	WidgetID uuid.UUID `json:"widget_id"`
	Key      string    `json:"key"`
	Value    string    `json:"value"`
	Type     ValueType `json:"type"`
}
