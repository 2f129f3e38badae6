// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// GalleryImage is one entry of a gallery widget's image collection.
type GalleryImage struct {
	ID        int64     `json:"-"`
	WidgetID  uuid.UUID `json:"-"`
	Image     string    `json:"image"`
	Caption   string    `json:"caption"`
	AltText   string    `json:"alt_text"`
	LinkURL   string    `json:"link_url"`
	SortOrder int       `json:"-"`
}

var galleryImageFieldMap = map[string]string{
	"altText": "alt_text",
	"linkUrl": "link_url",
}

// GalleryImageFromDoc maps one element of an incoming images array. An
// image path is required; a gallery row without one renders nothing.
func GalleryImageFromDoc(v any) (GalleryImage, error) {
	doc, err := asObject(v)
	if err != nil {
		return GalleryImage{}, fmt.Errorf("gallery image: %w", err)
	}
	doc = renameDocKeys(doc, galleryImageFieldMap)

	image := docString(doc, "image", "")
	if image == "" {
		return GalleryImage{}, fmt.Errorf("gallery image: missing image path")
	}

	return GalleryImage{
		Image:   image,
		Caption: docString(doc, "caption", ""),
		AltText: docString(doc, "alt_text", ""),
		LinkURL: docString(doc, "link_url", ""),
	}, nil
}

// Doc converts the image back into its document-facing form.
func (g GalleryImage) Doc() map[string]any {
	return map[string]any{
		"image":    g.Image,
		"caption":  g.Caption,
		"alt_text": g.AltText,
		"link_url": g.LinkURL,
	}
}
