// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// RegionRatingSettings is the single specialized row of a region-rating
// widget: a ranked list of schools within one region by funds raised.
type RegionRatingSettings struct {
	WidgetID    uuid.UUID `json:"-"`
	RegionCode  string    `json:"region_code"`
	Period      Period    `json:"period"`
	Limit       int       `json:"limit"`
	ShowAmounts bool      `json:"show_amounts"`
}

var regionRatingFieldMap = map[string]string{
	"regionCode":  "region_code",
	"showAmounts": "show_amounts",
}

// RegionRatingSettingsFromDoc maps the rating part of an incoming document.
func RegionRatingSettingsFromDoc(v any) (RegionRatingSettings, error) {
	doc, err := asObject(v)
	if err != nil {
		return RegionRatingSettings{}, fmt.Errorf("region rating settings: %w", err)
	}
	doc = renameDocKeys(doc, regionRatingFieldMap)

	return RegionRatingSettings{
		RegionCode:  docString(doc, "region_code", ""),
		Period:      ParsePeriod(doc["period"], PeriodMonth),
		Limit:       clampLimit(docInt(doc, "limit", 10)),
		ShowAmounts: docBool(doc, "show_amounts", true),
	}, nil
}

// Doc converts the settings back into their document-facing form.
func (r RegionRatingSettings) Doc() map[string]any {
	return map[string]any{
		"region_code":  r.RegionCode,
		"period":       string(r.Period),
		"limit":        r.Limit,
		"show_amounts": r.ShowAmounts,
	}
}
