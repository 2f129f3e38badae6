// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// Donation widget defaults. Amounts are in whole currency units.
var defaultSuggestedAmounts = []int{300, 500, 1000}

// DonationSettings is the single specialized row of a donation widget.
type DonationSettings struct {
	WidgetID          uuid.UUID `json:"-"`
	MinAmount         int       `json:"min_amount"`
	SuggestedAmounts  []int     `json:"suggested_amounts"`
	AllowCustomAmount bool      `json:"allow_custom_amount"`
	ShowProgress      bool      `json:"show_progress"`
	TargetAmount      int       `json:"target_amount"`
	SuccessMessage    string    `json:"success_message"`
}

var donationFieldMap = map[string]string{
	"minAmount":         "min_amount",
	"suggestedAmounts":  "suggested_amounts",
	"allowCustomAmount": "allow_custom_amount",
	"showProgress":      "show_progress",
	"targetAmount":      "target_amount",
	"successMessage":    "success_message",
}

// DonationSettingsFromDoc maps the donation part of an incoming document.
func DonationSettingsFromDoc(v any) (DonationSettings, error) {
	doc, err := asObject(v)
	if err != nil {
		return DonationSettings{}, fmt.Errorf("donation settings: %w", err)
	}
	doc = renameDocKeys(doc, donationFieldMap)

	minAmount := docInt(doc, "min_amount", 100)
	if minAmount < 1 {
		minAmount = 1
	}

	return DonationSettings{
		MinAmount:         minAmount,
		SuggestedAmounts:  docIntSlice(doc, "suggested_amounts", defaultSuggestedAmounts),
		AllowCustomAmount: docBool(doc, "allow_custom_amount", true),
		ShowProgress:      docBool(doc, "show_progress", true),
		TargetAmount:      docInt(doc, "target_amount", 0),
		SuccessMessage:    docString(doc, "success_message", ""),
	}, nil
}

// Doc converts the settings back into their document-facing form.
func (d DonationSettings) Doc() map[string]any {
	amounts := d.SuggestedAmounts
	if amounts == nil {
		amounts = []int{}
	}
	return map[string]any{
		"min_amount":          d.MinAmount,
		"suggested_amounts":   amounts,
		"allow_custom_amount": d.AllowCustomAmount,
		"show_progress":       d.ShowProgress,
		"target_amount":       d.TargetAmount,
		"success_message":     d.SuccessMessage,
	}
}
