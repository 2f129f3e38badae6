// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// GradientDirection orients a slide's overlay gradient.
type GradientDirection string

const (
	GradientNone   GradientDirection = "none"
	GradientLeft   GradientDirection = "left"
	GradientRight  GradientDirection = "right"
	GradientTop    GradientDirection = "top"
	GradientBottom GradientDirection = "bottom"
	GradientCenter GradientDirection = "center"
)

// ParseGradientDirection coerces a raw value, defaulting to none.
func ParseGradientDirection(v any) GradientDirection {
	s, _ := v.(string)
	switch GradientDirection(s) {
	case GradientLeft, GradientRight, GradientTop, GradientBottom, GradientCenter:
		return GradientDirection(s)
	default:
		return GradientNone
	}
}

// Per-slide overlay defaults.
const (
	DefaultOverlayColor   = "#000000"
	DefaultOverlayOpacity = 30
)

// Slide is one entry of a hero or slider widget's slide collection.
type Slide struct {
	ID                int64             `json:"-"`
	WidgetID          uuid.UUID         `json:"-"`
	Title             string            `json:"title"`
	Subtitle          string            `json:"subtitle"`
	ButtonText        string            `json:"button_text"`
	ButtonURL         string            `json:"button_url"`
	LinkType          LinkType          `json:"link_type"`
	OpenInNewTab      bool              `json:"open_in_new_tab"`
	BackgroundImage   string            `json:"background_image"`
	OverlayColor      string            `json:"overlay_color"`
	OverlayOpacity    int               `json:"overlay_opacity"`
	GradientDirection GradientDirection `json:"gradient_direction"`
	GradientIntensity int               `json:"gradient_intensity"`
	SortOrder         int               `json:"-"`
}

// slideFieldMap renames editor document keys to stored field names.
var slideFieldMap = map[string]string{
	"buttonText":        "button_text",
	"buttonUrl":         "button_url",
	"linkType":          "link_type",
	"openInNewTab":      "open_in_new_tab",
	"backgroundImage":   "background_image",
	"overlayColor":      "overlay_color",
	"overlayOpacity":    "overlay_opacity",
	"gradientDirection": "gradient_direction",
	"gradientIntensity": "gradient_intensity",
}

// SlideFromDoc maps one element of an incoming slides array into a Slide,
// applying per-field defaults for anything missing or malformed. It fails
// only when the element is not an object at all.
func SlideFromDoc(v any) (Slide, error) {
	doc, err := asObject(v)
	if err != nil {
		return Slide{}, fmt.Errorf("slide: %w", err)
	}
	doc = renameDocKeys(doc, slideFieldMap)

	overlayColor := docString(doc, "overlay_color", DefaultOverlayColor)
	if overlayColor == "" {
		overlayColor = DefaultOverlayColor
	}

	return Slide{
		Title:             docString(doc, "title", ""),
		Subtitle:          docString(doc, "subtitle", ""),
		ButtonText:        docString(doc, "button_text", ""),
		ButtonURL:         docString(doc, "button_url", ""),
		LinkType:          ParseLinkType(doc["link_type"]),
		OpenInNewTab:      docBool(doc, "open_in_new_tab", false),
		BackgroundImage:   docString(doc, "background_image", ""),
		OverlayColor:      overlayColor,
		OverlayOpacity:    clampPercent(docInt(doc, "overlay_opacity", DefaultOverlayOpacity)),
		GradientDirection: ParseGradientDirection(doc["gradient_direction"]),
		GradientIntensity: clampPercent(docInt(doc, "gradient_intensity", 0)),
	}, nil
}

// Doc converts the slide back into its document-facing form, using stored
// field names. The inverse of SlideFromDoc for rendering.
func (s Slide) Doc() map[string]any {
	return map[string]any{
		"title":              s.Title,
		"subtitle":           s.Subtitle,
		"button_text":        s.ButtonText,
		"button_url":         s.ButtonURL,
		"link_type":          string(s.LinkType),
		"open_in_new_tab":    s.OpenInNewTab,
		"background_image":   s.BackgroundImage,
		"overlay_color":      s.OverlayColor,
		"overlay_opacity":    s.OverlayOpacity,
		"gradient_direction": string(s.GradientDirection),
		"gradient_intensity": s.GradientIntensity,
	}
}
