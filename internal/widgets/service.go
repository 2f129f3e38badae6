// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package widgets implements the widget configuration core: the write-side
// synchronizer that splits an incoming configuration document across the
// generic and specialized stores, and the read-side resolver that merges
// stored data with the variant's default template into a render-ready
// document. The package owns no HTTP surface; the handlers layer calls it.
package widgets

import (
	"database/sql"

	"newschools/internal/assets"
	"newschools/internal/cache"
	"newschools/internal/store"
)

// Service coordinates widget configuration reads and writes. The site
// cache may be nil, in which case every resolve hits the database.
type Service struct {
	db        *sql.DB
	widgets   *store.WidgetStore
	settings  *store.SettingStore
	siteCache *cache.SiteCache
	assets    *assets.Normalizer

	slides          *store.SlideStore
	formFields      *store.FormFieldStore
	menuItems       *store.MenuItemStore
	galleryImages   *store.GalleryImageStore
	donations       *store.DonationStore
	regionRatings   *store.RegionRatingStore
	donationFeeds   *store.DonationFeedStore
	referralBoards  *store.ReferralBoardStore
	imageSettings   *store.ImageSettingsStore
	recurringDonors *store.RecurringDonorStore
}

// New creates the widget configuration service with its repositories.
func New(db *sql.DB, siteCache *cache.SiteCache, norm *assets.Normalizer) *Service {
	if norm == nil {
		norm = assets.NewNormalizer("")
	}
	return &Service{
		db:        db,
		widgets:   store.NewWidgetStore(db),
		settings:  store.NewSettingStore(db),
		siteCache: siteCache,
		assets:    norm,

		slides:          store.NewSlideStore(db),
		formFields:      store.NewFormFieldStore(db),
		menuItems:       store.NewMenuItemStore(db),
		galleryImages:   store.NewGalleryImageStore(db),
		donations:       store.NewDonationStore(db),
		regionRatings:   store.NewRegionRatingStore(db),
		donationFeeds:   store.NewDonationFeedStore(db),
		referralBoards:  store.NewReferralBoardStore(db),
		imageSettings:   store.NewImageSettingsStore(db),
		recurringDonors: store.NewRecurringDonorStore(db),
	}
}
