package handlers

import (
	"strings"
	"testing"
)

func TestValidateWidgetMeta(t *testing.T) {
	tests := []struct {
		name     string
		widget   string
		position string
		wantErr  bool
	}{
		{name: "ok", widget: "Main hero", position: "header"},
		{name: "empty is fine", widget: "", position: ""},
		{name: "name at limit", widget: strings.Repeat("x", maxNameLen)},
		{name: "name too long", widget: strings.Repeat("x", maxNameLen+1), wantErr: true},
		{name: "multibyte name counts runes", widget: strings.Repeat("ș", maxNameLen)},
		{name: "position too long", position: strings.Repeat("p", maxPositionLen+1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateWidgetMeta(tt.widget, tt.position)
			if (msg != "") != tt.wantErr {
				t.Errorf("validateWidgetMeta() = %q, wantErr %v", msg, tt.wantErr)
			}
		})
	}
}

func TestValidateConfigDoc(t *testing.T) {
	big := make([]any, maxCollectionLen+1)
	ok := make([]any, maxCollectionLen)

	tests := []struct {
		name    string
		doc     map[string]any
		wantErr bool
	}{
		{name: "empty", doc: map[string]any{}},
		{name: "scalars", doc: map[string]any{"title": "x", "count": 3}},
		{name: "collection at limit", doc: map[string]any{"slides": ok}},
		{name: "collection over limit", doc: map[string]any{"slides": big}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateConfigDoc(tt.doc)
			if (msg != "") != tt.wantErr {
				t.Errorf("validateConfigDoc() = %q, wantErr %v", msg, tt.wantErr)
			}
		})
	}
}
