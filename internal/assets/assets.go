// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package assets rewrites stored relative asset paths into servable URLs.
// Widget configurations store upload paths like "heroes/a.jpg"; at render
// time they are prefixed with the public asset path exactly once. The core
// performs string-level normalization only — it never checks that a file
// exists.
package assets

import "strings"

// Normalizer prefixes relative asset paths with the public asset location.
// Normalization is idempotent: applying it to an already-normalized value
// returns the value unchanged, so resolved documents can be re-normalized
// safely (for example after a cache round trip).
type Normalizer struct {
	// publicPath is the URL path (or absolute URL) under which uploaded
	// assets are served, without a trailing slash, e.g. "/storage" or
	// "https://cdn.example.org/storage".
	publicPath string
}

// NewNormalizer builds a Normalizer for the given public asset path.
// Trailing slashes are trimmed so joining never doubles a separator.
func NewNormalizer(publicPath string) *Normalizer {
	return &Normalizer{publicPath: strings.TrimRight(publicPath, "/")}
}

// Normalize turns a stored asset reference into a servable URL.
// Values that already carry a scheme, are protocol-relative, or are
// already under the public path are returned unchanged. Relative paths
// have duplicate separators collapsed before the prefix is applied.
// Empty values stay empty: a missing image must not normalize into the
// bare prefix.
func (n *Normalizer) Normalize(path string) string {
	if path == "" || n.publicPath == "" {
		return path
	}
	if hasScheme(path) || strings.HasPrefix(path, "//") {
		return path
	}
	if path == n.publicPath || strings.HasPrefix(path, n.publicPath+"/") {
		return path
	}
	return n.publicPath + "/" + collapseSlashes(strings.TrimLeft(path, "/"))
}

// collapseSlashes reduces every run of path separators to a single one.
func collapseSlashes(s string) string {
	for strings.Contains(s, "//") {
		s = strings.ReplaceAll(s, "//", "/")
	}
	return s
}

// hasScheme reports whether the value is an absolute URL.
func hasScheme(s string) bool {
	return strings.HasPrefix(s, "http://") ||
		strings.HasPrefix(s, "https://") ||
		strings.HasPrefix(s, "data:")
}
