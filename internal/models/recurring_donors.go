// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// RecurringDonorSettings is the single specialized row of a
// recurring-donors widget: the site's monthly supporters block.
type RecurringDonorSettings struct {
	WidgetID    uuid.UUID `json:"-"`
	Limit       int       `json:"limit"`
	Period      Period    `json:"period"`
	ShowAmounts bool      `json:"show_amounts"`
	Title       string    `json:"title"`
}

var recurringDonorFieldMap = map[string]string{
	"showAmounts": "show_amounts",
}

// RecurringDonorSettingsFromDoc maps the recurring part of an incoming
// document.
func RecurringDonorSettingsFromDoc(v any) (RecurringDonorSettings, error) {
	doc, err := asObject(v)
	if err != nil {
		return RecurringDonorSettings{}, fmt.Errorf("recurring donor settings: %w", err)
	}
	doc = renameDocKeys(doc, recurringDonorFieldMap)

	return RecurringDonorSettings{
		Limit:       clampLimit(docInt(doc, "limit", 10)),
		Period:      ParsePeriod(doc["period"], PeriodAll),
		ShowAmounts: docBool(doc, "show_amounts", false),
		Title:       docString(doc, "title", ""),
	}, nil
}

// Doc converts the settings back into their document-facing form.
func (r RecurringDonorSettings) Doc() map[string]any {
	return map[string]any{
		"limit":        r.Limit,
		"period":       string(r.Period),
		"show_amounts": r.ShowAmounts,
		"title":        r.Title,
	}
}
