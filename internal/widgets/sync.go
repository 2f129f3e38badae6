// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package widgets

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sort"

	"github.com/google/uuid"

	"newschools/internal/models"
)

// Sync replaces a widget's stored configuration with the given document.
// The variant's claimed key is routed to specialized storage; every other
// key is encoded into the generic setting store. Malformed rows under the
// claimed key are skipped and reported, never fatal. The whole write runs
// in one transaction: specialized replace, generic replace, updated_at
// bump. The site cache entry is dropped only after the commit succeeds.
func (s *Service) Sync(ctx context.Context, widgetID uuid.UUID, doc map[string]any) (*SyncResult, error) {
	w, err := s.widgets.FindByID(widgetID)
	if err != nil {
		return nil, fmt.Errorf("sync widget %s: %w", widgetID, err)
	}
	if w == nil {
		return nil, ErrWidgetNotFound
	}
	if !w.Variant.Known() {
		return nil, ErrUnknownVariant
	}

	claimedSet := make(map[string]bool)
	for _, k := range w.Variant.ClaimedKeys() {
		claimedSet[k] = true
	}

	claimedPart := make(map[string]any)
	generic := make(map[string]any, len(doc))
	for k, v := range doc {
		if claimedSet[k] {
			claimedPart[k] = v
		} else {
			generic[k] = v
		}
	}

	// The image variant claims scalar keys, so its specialized value is
	// the claimed sub-document itself; every other variant claims a
	// single key holding the value.
	claimedPresent := len(claimedPart) > 0
	var claimedValue any
	if w.Variant == models.VariantImage {
		claimedValue = claimedPart
	} else {
		for _, v := range claimedPart {
			claimedValue = v
		}
	}

	result := &SyncResult{WidgetID: widgetID}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("sync widget %s: begin: %w", widgetID, err)
	}
	defer tx.Rollback()

	if claimedPresent {
		if err := s.replaceSpecialized(tx, w, claimedValue, result); err != nil {
			return nil, fmt.Errorf("sync widget %s: %w", widgetID, err)
		}
	}

	if err := s.settings.ReplaceAll(tx, widgetID, encodeSettings(widgetID, generic)); err != nil {
		return nil, fmt.Errorf("sync widget %s: settings: %w", widgetID, err)
	}

	if err := s.widgets.Touch(tx, widgetID); err != nil {
		return nil, fmt.Errorf("sync widget %s: touch: %w", widgetID, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("sync widget %s: commit: %w", widgetID, err)
	}

	if s.siteCache != nil {
		s.siteCache.Invalidate(ctx, w.SiteID.String())
	}

	return result, nil
}

// encodeSettings flattens a generic configuration map into typed setting
// rows. Keys are sorted so the insert order, and therefore any statement
// log, is deterministic.
func encodeSettings(widgetID uuid.UUID, generic map[string]any) []models.WidgetSetting {
	keys := make([]string, 0, len(generic))
	for k := range generic {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	settings := make([]models.WidgetSetting, 0, len(keys))
	for _, k := range keys {
		raw, typ := models.EncodeValue(generic[k])
		settings = append(settings, models.WidgetSetting{
			WidgetID: widgetID,
			Key:      k,
			Value:    raw,
			Type:     typ,
		})
	}
	return settings
}

// replaceSpecialized writes the claimed portion of the document into the
// variant's specialized store. For collection variants a non-array value
// is treated as an empty collection; individual rows that fail to parse
// are skipped, logged, and recorded on the result.
func (s *Service) replaceSpecialized(tx *sql.Tx, w *models.WidgetInstance, claimed any, result *SyncResult) error {
	if w.Variant.MultiRow() {
		rows, ok := claimed.([]any)
		if !ok && claimed != nil {
			result.skip(-1, "claimed value is not an array")
			slog.Warn("widget sync: claimed value is not an array, clearing collection",
				"widget_id", w.ID, "variant", w.Variant)
		}
		return s.replaceCollection(tx, w, rows, result)
	}
	return s.replaceSingleRow(tx, w, claimed, result)
}

func (s *Service) replaceCollection(tx *sql.Tx, w *models.WidgetInstance, rows []any, result *SyncResult) error {
	switch w.Variant {
	case models.VariantHero, models.VariantSlider:
		slides := make([]models.Slide, 0, len(rows))
		for i, raw := range rows {
			slide, err := models.SlideFromDoc(raw)
			if err != nil {
				result.skip(i, err.Error())
				slog.Warn("widget sync: skipping slide", "widget_id", w.ID, "index", i, "reason", err)
				continue
			}
			slides = append(slides, slide)
		}
		return s.slides.ReplaceAll(tx, w.ID, slides)
	case models.VariantForm:
		fields := make([]models.FormField, 0, len(rows))
		for i, raw := range rows {
			field, err := models.FormFieldFromDoc(raw)
			if err != nil {
				result.skip(i, err.Error())
				slog.Warn("widget sync: skipping form field", "widget_id", w.ID, "index", i, "reason", err)
				continue
			}
			fields = append(fields, field)
		}
		return s.formFields.ReplaceAll(tx, w.ID, fields)
	case models.VariantMenu:
		items := make([]models.MenuItem, 0, len(rows))
		for i, raw := range rows {
			item, err := models.MenuItemFromDoc(raw)
			if err != nil {
				result.skip(i, err.Error())
				slog.Warn("widget sync: skipping menu item", "widget_id", w.ID, "index", i, "reason", err)
				continue
			}
			items = append(items, item)
		}
		return s.menuItems.ReplaceAll(tx, w.ID, items)
	case models.VariantGallery:
		images := make([]models.GalleryImage, 0, len(rows))
		for i, raw := range rows {
			img, err := models.GalleryImageFromDoc(raw)
			if err != nil {
				result.skip(i, err.Error())
				slog.Warn("widget sync: skipping gallery image", "widget_id", w.ID, "index", i, "reason", err)
				continue
			}
			images = append(images, img)
		}
		return s.galleryImages.ReplaceAll(tx, w.ID, images)
	}
	return fmt.Errorf("variant %q is not a collection variant", w.Variant)
}

func (s *Service) replaceSingleRow(tx *sql.Tx, w *models.WidgetInstance, claimed any, result *SyncResult) error {
	// A malformed single-row object falls back to the variant's defaults,
	// so the replace still happens and the document stays resolvable.
	warn := func(err error) {
		result.skip(-1, err.Error())
		slog.Warn("widget sync: claimed object unusable, storing defaults",
			"widget_id", w.ID, "variant", w.Variant, "reason", err)
	}

	switch w.Variant {
	case models.VariantDonation:
		d, err := models.DonationSettingsFromDoc(claimed)
		if err != nil {
			warn(err)
			d, _ = models.DonationSettingsFromDoc(map[string]any{})
		}
		return s.donations.Replace(tx, w.ID, d)
	case models.VariantRegionRating:
		r, err := models.RegionRatingSettingsFromDoc(claimed)
		if err != nil {
			warn(err)
			r, _ = models.RegionRatingSettingsFromDoc(map[string]any{})
		}
		return s.regionRatings.Replace(tx, w.ID, r)
	case models.VariantDonationsList:
		d, err := models.DonationFeedSettingsFromDoc(claimed)
		if err != nil {
			warn(err)
			d, _ = models.DonationFeedSettingsFromDoc(map[string]any{})
		}
		return s.donationFeeds.Replace(tx, w.ID, d)
	case models.VariantReferralBoard:
		r, err := models.ReferralBoardSettingsFromDoc(claimed)
		if err != nil {
			warn(err)
			r, _ = models.ReferralBoardSettingsFromDoc(map[string]any{})
		}
		return s.referralBoards.Replace(tx, w.ID, r)
	case models.VariantImage:
		i, err := models.ImageSettingsFromDoc(claimed)
		if err != nil {
			warn(err)
			i, _ = models.ImageSettingsFromDoc(map[string]any{})
		}
		return s.imageSettings.Replace(tx, w.ID, i)
	case models.VariantRecurringDonors:
		r, err := models.RecurringDonorSettingsFromDoc(claimed)
		if err != nil {
			warn(err)
			r, _ = models.RecurringDonorSettingsFromDoc(map[string]any{})
		}
		return s.recurringDonors.Replace(tx, w.ID, r)
	}
	return fmt.Errorf("variant %q is not a single-row variant", w.Variant)
}
