// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package widgets

import (
	"errors"

	"github.com/google/uuid"
)

var (
	// ErrWidgetNotFound is returned when the widget does not exist or has
	// been removed from its site.
	ErrWidgetNotFound = errors.New("widget not found")

	// ErrUnknownVariant is returned by Sync when the instance's variant
	// tag has no catalog entry. Sync fails closed — it refuses to guess
	// where the document's keys belong. Resolve degrades instead (see
	// Service.Resolve).
	ErrUnknownVariant = errors.New("unknown widget variant")
)

// SkippedRow reports one entry of an incoming collection that could not be
// mapped to its stored shape. Index is the zero-based position in the
// incoming array (-1 when the whole specialized part was unusable).
type SkippedRow struct {
	Index  int    `json:"index"`
	Reason string `json:"reason"`
}

// SyncResult reports the outcome of a configuration sync. Skipped rows are
// partial failures: the rest of the document was stored, and the caller
// should surface them to the editor instead of discarding the edit.
type SyncResult struct {
	WidgetID uuid.UUID    `json:"widget_id"`
	Skipped  []SkippedRow `json:"skipped,omitempty"`
}

func (r *SyncResult) skip(index int, reason string) {
	r.Skipped = append(r.Skipped, SkippedRow{Index: index, Reason: reason})
}
