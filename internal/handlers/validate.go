package handlers

import (
	"fmt"
	"unicode/utf8"
)

// Validation limits for widget instance and configuration fields.
const (
	maxNameLen       = 200
	maxPositionLen   = 100
	maxConfigBodyLen = 1 << 20 // 1 MiB request body cap
	maxCollectionLen = 200
)

// validateWidgetMeta checks instance fields and returns the first error
// found. position may be empty for updates that do not carry one.
func validateWidgetMeta(name, position string) string {
	if utf8.RuneCountInString(name) > maxNameLen {
		return "Name is too long (max 200 characters)."
	}
	if utf8.RuneCountInString(position) > maxPositionLen {
		return "Position is too long (max 100 characters)."
	}
	return ""
}

// validateConfigDoc applies structural limits to an incoming configuration
// document. Content-level problems (a slide missing its title, say) are
// not errors here; the synchronizer skips those rows individually.
func validateConfigDoc(doc map[string]any) string {
	for key, value := range doc {
		if rows, ok := value.([]any); ok && len(rows) > maxCollectionLen {
			return fmt.Sprintf("%q has too many entries (max %d).", key, maxCollectionLen)
		}
	}
	return ""
}
