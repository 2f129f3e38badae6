// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// MenuItem is one entry of a menu widget's item collection. The tree is
// stored flattened: ParentIndex points at the zero-based position of the
// parent item within the same sync, -1 for top level.
type MenuItem struct {
	ID           int64     `json:"-"`
	WidgetID     uuid.UUID `json:"-"`
	Label        string    `json:"label"`
	URL          string    `json:"url"`
	LinkType     LinkType  `json:"link_type"`
	OpenInNewTab bool      `json:"open_in_new_tab"`
	ParentIndex  int       `json:"parent"`
	Icon         string    `json:"icon"`
	SortOrder    int       `json:"-"`
}

var menuItemFieldMap = map[string]string{
	"linkType":     "link_type",
	"openInNewTab": "open_in_new_tab",
}

// MenuItemFromDoc maps one element of an incoming items array. An item
// must carry a label; everything else defaults.
func MenuItemFromDoc(v any) (MenuItem, error) {
	doc, err := asObject(v)
	if err != nil {
		return MenuItem{}, fmt.Errorf("menu item: %w", err)
	}
	doc = renameDocKeys(doc, menuItemFieldMap)

	label := docString(doc, "label", "")
	if label == "" {
		return MenuItem{}, fmt.Errorf("menu item: missing label")
	}

	return MenuItem{
		Label:        label,
		URL:          docString(doc, "url", ""),
		LinkType:     ParseLinkType(doc["link_type"]),
		OpenInNewTab: docBool(doc, "open_in_new_tab", false),
		ParentIndex:  docInt(doc, "parent", -1),
		Icon:         docString(doc, "icon", ""),
	}, nil
}

// Doc converts the item back into its document-facing form.
func (m MenuItem) Doc() map[string]any {
	return map[string]any{
		"label":           m.Label,
		"url":             m.URL,
		"link_type":       string(m.LinkType),
		"open_in_new_tab": m.OpenInNewTab,
		"parent":          m.ParentIndex,
		"icon":            m.Icon,
	}
}
