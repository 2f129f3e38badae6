// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// doc.go holds the shared machinery for mapping between editor-facing
// configuration documents and stored row shapes: per-variant key renaming
// (the editor sends camelCase, rows store snake_case) and permissive field
// coercion with per-field defaults.
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// LinkType says how a slide button or menu item resolves its target.
type LinkType string

const (
	LinkInternal LinkType = "internal"
	LinkExternal LinkType = "external"
	LinkPage     LinkType = "page"
)

// ParseLinkType coerces a raw value to a LinkType, defaulting to internal.
func ParseLinkType(v any) LinkType {
	s, _ := v.(string)
	switch LinkType(s) {
	case LinkExternal:
		return LinkExternal
	case LinkPage:
		return LinkPage
	default:
		return LinkInternal
	}
}

// Period scopes time-windowed widgets (ratings, feeds, leaderboards).
type Period string

const (
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
	PeriodAll     Period = "all"
)

// ParsePeriod coerces a raw value to a Period, falling back to def.
func ParsePeriod(v any, def Period) Period {
	s, _ := v.(string)
	switch Period(s) {
	case PeriodMonth:
		return PeriodMonth
	case PeriodQuarter:
		return PeriodQuarter
	case PeriodYear:
		return PeriodYear
	case PeriodAll:
		return PeriodAll
	default:
		return def
	}
}

// asObject asserts that a document fragment is a JSON object.
func asObject(v any) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected object, got %T", v)
	}
	return m, nil
}

// renameDocKeys returns a copy of doc with every key present in mapping
// replaced by its mapped name. Unmapped keys pass through unchanged, so a
// document that already uses stored names is accepted as-is.
func renameDocKeys(doc map[string]any, mapping map[string]string) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if mapped, ok := mapping[k]; ok {
			k = mapped
		}
		out[k] = v
	}
	return out
}

// invertKeyMap builds the stored-name → document-name inverse of a field
// mapping. Used by tests to prove the mapping is bijective.
func invertKeyMap(mapping map[string]string) map[string]string {
	out := make(map[string]string, len(mapping))
	for k, v := range mapping {
		out[v] = k
	}
	return out
}

// docString reads a string field, tolerating numeric input.
func docString(doc map[string]any, key, def string) string {
	v, ok := doc[key]
	if !ok || v == nil {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case json.Number:
		return s.String()
	case bool:
		if s {
			return "1"
		}
		return "0"
	default:
		return def
	}
}

// docBool reads a boolean field, tolerating "1"/"true"/numeric truthiness.
func docBool(doc map[string]any, key string, def bool) bool {
	v, ok := doc[key]
	if !ok || v == nil {
		return def
	}
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return b == "1" || b == "true"
	case float64:
		return b != 0
	default:
		return def
	}
}

// docInt reads an integer field, tolerating float and string forms.
func docInt(doc map[string]any, key string, def int) int {
	v, ok := doc[key]
	if !ok || v == nil {
		return def
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case int64:
		return int(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
		return def
	case string:
		if i, err := strconv.Atoi(n); err == nil {
			return i
		}
		return def
	default:
		return def
	}
}

// docIntSlice reads an array of integers, dropping elements that are not
// numeric.
func docIntSlice(doc map[string]any, key string, def []int) []int {
	v, ok := doc[key]
	if !ok || v == nil {
		return append([]int(nil), def...)
	}
	arr, ok := v.([]any)
	if !ok {
		return append([]int(nil), def...)
	}
	out := make([]int, 0, len(arr))
	for _, el := range arr {
		switch n := el.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		case string:
			if i, err := strconv.Atoi(n); err == nil {
				out = append(out, i)
			}
		}
	}
	return out
}

// docStringSlice reads an array of strings, dropping non-string elements.
func docStringSlice(doc map[string]any, key string) []string {
	v, ok := doc[key]
	if !ok || v == nil {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, el := range arr {
		if s, ok := el.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// clampLimit bounds a list-size setting to 1..100.
func clampLimit(n int) int {
	if n < 1 {
		return 1
	}
	if n > 100 {
		return 100
	}
	return n
}

// clampPercent bounds a 0–100 value.
func clampPercent(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
