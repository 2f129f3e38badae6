// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ReferralBoardSettings is the single specialized row of a
// referral-leaderboard widget: top fundraisers ranked by referred donations.
type ReferralBoardSettings struct {
	WidgetID   uuid.UUID `json:"-"`
	Limit      int       `json:"limit"`
	Period     Period    `json:"period"`
	ShowTotals bool      `json:"show_totals"`
	Title      string    `json:"title"`
}

var referralBoardFieldMap = map[string]string{
	"showTotals": "show_totals",
}

// ReferralBoardSettingsFromDoc maps the leaderboard part of an incoming
// document.
func ReferralBoardSettingsFromDoc(v any) (ReferralBoardSettings, error) {
	doc, err := asObject(v)
	if err != nil {
		return ReferralBoardSettings{}, fmt.Errorf("referral board settings: %w", err)
	}
	doc = renameDocKeys(doc, referralBoardFieldMap)

	return ReferralBoardSettings{
		Limit:      clampLimit(docInt(doc, "limit", 10)),
		Period:     ParsePeriod(doc["period"], PeriodMonth),
		ShowTotals: docBool(doc, "show_totals", true),
		Title:      docString(doc, "title", ""),
	}, nil
}

// Doc converts the settings back into their document-facing form.
func (r ReferralBoardSettings) Doc() map[string]any {
	return map[string]any{
		"limit":       r.Limit,
		"period":      string(r.Period),
		"show_totals": r.ShowTotals,
		"title":       r.Title,
	}
}
