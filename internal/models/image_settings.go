// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// ImageFit controls how an image widget scales inside its frame.
type ImageFit string

const (
	FitCover   ImageFit = "cover"
	FitContain ImageFit = "contain"
	FitFill    ImageFit = "fill"
)

// ParseImageFit coerces a raw value, defaulting to cover.
func ParseImageFit(v any) ImageFit {
	s, _ := v.(string)
	switch ImageFit(s) {
	case FitContain, FitFill:
		return ImageFit(s)
	default:
		return FitCover
	}
}

// ImageSettings is the single specialized row of an image widget. The
// fields look like ordinary scalars but are routed to their own table
// rather than the generic store so image placements stay queryable.
type ImageSettings struct {
	WidgetID uuid.UUID `json:"-"`
	URL      string    `json:"url"`
	AltText  string    `json:"alt_text"`
	Caption  string    `json:"caption"`
	LinkURL  string    `json:"link_url"`
	Fit      ImageFit  `json:"fit"`
	Rounded  bool      `json:"rounded"`
}

var imageFieldMap = map[string]string{
	"altText": "alt_text",
	"linkUrl": "link_url",
}

// ImageSettingsFromDoc maps the image part of an incoming document.
func ImageSettingsFromDoc(v any) (ImageSettings, error) {
	doc, err := asObject(v)
	if err != nil {
		return ImageSettings{}, fmt.Errorf("image settings: %w", err)
	}
	doc = renameDocKeys(doc, imageFieldMap)

	return ImageSettings{
		URL:     docString(doc, "url", ""),
		AltText: docString(doc, "alt_text", ""),
		Caption: docString(doc, "caption", ""),
		LinkURL: docString(doc, "link_url", ""),
		Fit:     ParseImageFit(doc["fit"]),
		Rounded: docBool(doc, "rounded", false),
	}, nil
}

// Doc converts the settings back into their document-facing form.
func (i ImageSettings) Doc() map[string]any {
	return map[string]any{
		"url":      i.URL,
		"alt_text": i.AltText,
		"caption":  i.Caption,
		"link_url": i.LinkURL,
		"fit":      string(i.Fit),
		"rounded":  i.Rounded,
	}
}
