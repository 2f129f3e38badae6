// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package widgets

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"newschools/internal/models"
)

// RenderDocument is one widget ready for the public site: its instance
// metadata plus the fully merged configuration.
type RenderDocument struct {
	ID        uuid.UUID      `json:"id"`
	Variant   models.Variant `json:"variant"`
	Position  string         `json:"position"`
	Name      string         `json:"name"`
	SortOrder int            `json:"sort_order"`
	IsActive  bool           `json:"is_active"`
	IsVisible bool           `json:"is_visible"`
	Config    map[string]any `json:"config"`
}

// Generic setting keys whose values are asset paths. Variant-specific
// asset fields live inside the claimed portion and are handled there.
var genericAssetKeys = []string{"background_image", "image", "logo", "cover_image"}

// Resolve assembles the render-ready configuration for one widget:
// variant defaults, overlaid with stored generic settings, overlaid with
// the variant's specialized rows. An instance carrying an uncatalogued
// variant still resolves — it just gets its generic settings and no
// defaults, so stale rows never break a page.
func (s *Service) Resolve(ctx context.Context, widgetID uuid.UUID) (*RenderDocument, error) {
	w, err := s.widgets.FindByID(widgetID)
	if err != nil {
		return nil, fmt.Errorf("resolve widget %s: %w", widgetID, err)
	}
	if w == nil {
		return nil, ErrWidgetNotFound
	}
	return s.resolveInstance(w)
}

// ResolveAllForSite returns every active widget of a site as render
// documents, sorted the way ListBySite sorts them. Results are served
// from the site cache when present and repopulated after a miss.
func (s *Service) ResolveAllForSite(ctx context.Context, siteID uuid.UUID) ([]RenderDocument, error) {
	if s.siteCache != nil {
		if payload, ok := s.siteCache.Get(ctx, siteID.String()); ok {
			var docs []RenderDocument
			if err := json.Unmarshal(payload, &docs); err == nil {
				return docs, nil
			}
			slog.Warn("site cache payload unreadable, rebuilding", "site_id", siteID)
		}
	}

	instances, err := s.widgets.ListBySite(siteID)
	if err != nil {
		return nil, fmt.Errorf("resolve site %s: %w", siteID, err)
	}

	docs := make([]RenderDocument, 0, len(instances))
	for i := range instances {
		w := &instances[i]
		if !w.IsActive {
			continue
		}
		doc, err := s.resolveInstance(w)
		if err != nil {
			return nil, fmt.Errorf("resolve site %s: widget %s: %w", siteID, w.ID, err)
		}
		docs = append(docs, *doc)
	}

	if s.siteCache != nil {
		if payload, err := json.Marshal(docs); err == nil {
			s.siteCache.Set(ctx, siteID.String(), payload)
		}
	}
	return docs, nil
}

func (s *Service) resolveInstance(w *models.WidgetInstance) (*RenderDocument, error) {
	config := models.VariantDefaults(w.Variant)

	settings, err := s.settings.ListByWidget(w.ID)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}
	for _, st := range settings {
		if st.Type == models.ValueJSON && !json.Valid([]byte(st.Value)) {
			slog.Warn("stored json setting is invalid, decoding to empty object",
				"widget_id", w.ID, "key", st.Key)
		}
		config[st.Key] = models.DecodeValue(st.Value, st.Type)
	}

	if w.Variant.Known() {
		if err := s.overlaySpecialized(w, config); err != nil {
			return nil, err
		}
	}

	s.normalizeAssets(w.Variant, config)

	return &RenderDocument{
		ID:        w.ID,
		Variant:   w.Variant,
		Position:  w.Position,
		Name:      w.Name,
		SortOrder: w.SortOrder,
		IsActive:  w.IsActive,
		IsVisible: w.IsVisible,
		Config:    config,
	}, nil
}

// overlaySpecialized places the variant's specialized rows under its
// claimed key(s), applied after the generic settings so specialized data
// always wins. Collections always overwrite (an empty collection is a
// real state); a missing single row leaves the defaults in place. The
// image variant spreads its row's scalar fields at the top level.
func (s *Service) overlaySpecialized(w *models.WidgetInstance, config map[string]any) error {
	claimed := w.Variant.ClaimedKeys()[0]

	switch w.Variant {
	case models.VariantHero, models.VariantSlider:
		slides, err := s.slides.ListOrdered(w.ID)
		if err != nil {
			return fmt.Errorf("slides: %w", err)
		}
		config[claimed] = docsOf(slides, models.Slide.Doc)
	case models.VariantForm:
		fields, err := s.formFields.ListOrdered(w.ID)
		if err != nil {
			return fmt.Errorf("form fields: %w", err)
		}
		config[claimed] = docsOf(fields, models.FormField.Doc)
	case models.VariantMenu:
		items, err := s.menuItems.ListOrdered(w.ID)
		if err != nil {
			return fmt.Errorf("menu items: %w", err)
		}
		config[claimed] = docsOf(items, models.MenuItem.Doc)
	case models.VariantGallery:
		images, err := s.galleryImages.ListOrdered(w.ID)
		if err != nil {
			return fmt.Errorf("gallery images: %w", err)
		}
		config[claimed] = docsOf(images, models.GalleryImage.Doc)
	case models.VariantDonation:
		d, err := s.donations.Find(w.ID)
		if err != nil {
			return fmt.Errorf("donation settings: %w", err)
		}
		if d != nil {
			config[claimed] = d.Doc()
		}
	case models.VariantRegionRating:
		r, err := s.regionRatings.Find(w.ID)
		if err != nil {
			return fmt.Errorf("region rating settings: %w", err)
		}
		if r != nil {
			config[claimed] = r.Doc()
		}
	case models.VariantDonationsList:
		d, err := s.donationFeeds.Find(w.ID)
		if err != nil {
			return fmt.Errorf("donation feed settings: %w", err)
		}
		if d != nil {
			config[claimed] = d.Doc()
		}
	case models.VariantReferralBoard:
		r, err := s.referralBoards.Find(w.ID)
		if err != nil {
			return fmt.Errorf("referral board settings: %w", err)
		}
		if r != nil {
			config[claimed] = r.Doc()
		}
	case models.VariantImage:
		i, err := s.imageSettings.Find(w.ID)
		if err != nil {
			return fmt.Errorf("image settings: %w", err)
		}
		if i != nil {
			for k, v := range i.Doc() {
				config[k] = v
			}
		}
	case models.VariantRecurringDonors:
		r, err := s.recurringDonors.Find(w.ID)
		if err != nil {
			return fmt.Errorf("recurring donor settings: %w", err)
		}
		if r != nil {
			config[claimed] = r.Doc()
		}
	}
	return nil
}

func docsOf[T any](rows []T, doc func(T) map[string]any) []any {
	out := make([]any, len(rows))
	for i, row := range rows {
		out[i] = doc(row)
	}
	return out
}

// normalizeAssets rewrites relative asset paths into servable URLs, in
// the generic settings and in the variant's asset-bearing fields. The
// normalizer is idempotent, so re-resolving cached-then-synced widgets
// never double-prefixes.
func (s *Service) normalizeAssets(variant models.Variant, config map[string]any) {
	for _, key := range genericAssetKeys {
		if raw, ok := config[key].(string); ok && raw != "" {
			config[key] = s.assets.Normalize(raw)
		}
	}

	normalizeField := func(obj map[string]any, field string) {
		if raw, ok := obj[field].(string); ok && raw != "" {
			obj[field] = s.assets.Normalize(raw)
		}
	}

	switch variant {
	case models.VariantHero, models.VariantSlider:
		if slides, ok := config["slides"].([]any); ok {
			for _, raw := range slides {
				if slide, ok := raw.(map[string]any); ok {
					normalizeField(slide, "background_image")
				}
			}
		}
	case models.VariantGallery:
		if images, ok := config["images"].([]any); ok {
			for _, raw := range images {
				if img, ok := raw.(map[string]any); ok {
					normalizeField(img, "image")
				}
			}
		}
	case models.VariantImage:
		normalizeField(config, "url")
	}
}
