// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ValueType tags how a widget setting value is stored and decoded.
type ValueType string

const (
	ValueString  ValueType = "string"
	ValueNumber  ValueType = "number"
	ValueBoolean ValueType = "boolean"
	ValueJSON    ValueType = "json"
	ValueText    ValueType = "text"
)

// maxInlineStringLen is the longest string stored under the "string" tag;
// anything longer is tagged "text". Matches the 255-char column convention.
const maxInlineStringLen = 255

// EncodeValue converts an arbitrary configuration value into its stored
// string form plus a type tag. Encoding never fails: values that cannot be
// JSON-serialized fall back to their fmt representation under the "string"
// tag.
//
// Tagging priority: booleans, then structures (JSON), then numbers, then
// long strings ("text"), then plain strings.
func EncodeValue(v any) (string, ValueType) {
	switch val := v.(type) {
	case nil:
		return "", ValueString
	case bool:
		if val {
			return "1", ValueBoolean
		}
		return "0", ValueBoolean
	case string:
		if utf8.RuneCountInString(val) > maxInlineStringLen {
			return val, ValueText
		}
		return val, ValueString
	case int:
		return strconv.Itoa(val), ValueNumber
	case int64:
		return strconv.FormatInt(val, 10), ValueNumber
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64), ValueNumber
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32), ValueNumber
	case json.Number:
		return val.String(), ValueNumber
	}

	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v), ValueString
	}
	return string(raw), ValueJSON
}

// DecodeValue reverses EncodeValue. Decoding is tag-directed, never
// value-sniffed: the stored tag alone decides the result type.
//
// Numbers decode as int64 when the raw string is integral, otherwise as
// float64, so integers survive a round trip without float precision loss.
// A "json" value that no longer parses decodes to an empty map rather than
// an error; callers that care should log the fallback (see widgets.Service).
func DecodeValue(raw string, typ ValueType) any {
	switch typ {
	case ValueBoolean:
		return raw == "1" || raw == "true"
	case ValueNumber:
		if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
			return n
		}
		f, _ := strconv.ParseFloat(raw, 64)
		return f
	case ValueJSON:
		var v any
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return map[string]any{}
		}
		return v
	default:
		return raw
	}
}
