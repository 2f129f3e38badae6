// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// DonationFeedSettings is the single specialized row of a donations-list
// widget: a rolling feed of recent donations to the site.
type DonationFeedSettings struct {
	WidgetID      uuid.UUID `json:"-"`
	Limit         int       `json:"limit"`
	ShowAnonymous bool      `json:"show_anonymous"`
	ShowAmounts   bool      `json:"show_amounts"`
	Period        Period    `json:"period"`
}

var donationFeedFieldMap = map[string]string{
	"showAnonymous": "show_anonymous",
	"showAmounts":   "show_amounts",
}

// DonationFeedSettingsFromDoc maps the list part of an incoming document.
func DonationFeedSettingsFromDoc(v any) (DonationFeedSettings, error) {
	doc, err := asObject(v)
	if err != nil {
		return DonationFeedSettings{}, fmt.Errorf("donation feed settings: %w", err)
	}
	doc = renameDocKeys(doc, donationFeedFieldMap)

	return DonationFeedSettings{
		Limit:         clampLimit(docInt(doc, "limit", 20)),
		ShowAnonymous: docBool(doc, "show_anonymous", true),
		ShowAmounts:   docBool(doc, "show_amounts", true),
		Period:        ParsePeriod(doc["period"], PeriodAll),
	}, nil
}

// Doc converts the settings back into their document-facing form.
func (d DonationFeedSettings) Doc() map[string]any {
	return map[string]any{
		"limit":          d.Limit,
		"show_anonymous": d.ShowAnonymous,
		"show_amounts":   d.ShowAmounts,
		"period":         string(d.Period),
	}
}
