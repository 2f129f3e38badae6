// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"

	"github.com/google/uuid"
)

// FieldType enumerates the input kinds a form widget can render.
type FieldType string

const (
	FieldText     FieldType = "text"
	FieldTextarea FieldType = "textarea"
	FieldEmail    FieldType = "email"
	FieldPhone    FieldType = "phone"
	FieldSelect   FieldType = "select"
	FieldCheckbox FieldType = "checkbox"
)

// ParseFieldType coerces a raw value, defaulting to text.
func ParseFieldType(v any) FieldType {
	s, _ := v.(string)
	switch FieldType(s) {
	case FieldTextarea, FieldEmail, FieldPhone, FieldSelect, FieldCheckbox:
		return FieldType(s)
	default:
		return FieldText
	}
}

// FormField is one entry of a form widget's field collection.
type FormField struct {
	ID          int64     `json:"-"`
	WidgetID    uuid.UUID `json:"-"`
	Label       string    `json:"label"`
	Name        string    `json:"name"`
	FieldType   FieldType `json:"field_type"`
	Placeholder string    `json:"placeholder"`
	IsRequired  bool      `json:"is_required"`
	Options     []string  `json:"options"`
	SortOrder   int       `json:"-"`
}

var formFieldMap = map[string]string{
	"fieldType": "field_type",
	"required":  "is_required",
}

// FormFieldFromDoc maps one element of an incoming fields array. A field
// must carry a non-empty name: without one the submission payload has no
// key to post under, so the row is rejected rather than defaulted.
func FormFieldFromDoc(v any) (FormField, error) {
	doc, err := asObject(v)
	if err != nil {
		return FormField{}, fmt.Errorf("form field: %w", err)
	}
	doc = renameDocKeys(doc, formFieldMap)

	name := docString(doc, "name", "")
	if name == "" {
		return FormField{}, fmt.Errorf("form field: missing name")
	}

	return FormField{
		Label:       docString(doc, "label", name),
		Name:        name,
		FieldType:   ParseFieldType(doc["field_type"]),
		Placeholder: docString(doc, "placeholder", ""),
		IsRequired:  docBool(doc, "is_required", false),
		Options:     docStringSlice(doc, "options"),
	}, nil
}

// Doc converts the field back into its document-facing form.
func (f FormField) Doc() map[string]any {
	options := f.Options
	if options == nil {
		options = []string{}
	}
	return map[string]any{
		"label":       f.Label,
		"name":        f.Name,
		"field_type":  string(f.FieldType),
		"placeholder": f.Placeholder,
		"is_required": f.IsRequired,
		"options":     options,
	}
}
