// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// site.go provides the Valkey-backed cache of render-ready widget
// configurations, one entry per site. Renders read the whole site's
// widget set at once, so the cache holds the serialized document slice
// and is dropped wholesale whenever any widget of the site is synced —
// editor writes are rare, renders are not.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// siteKeyPrefix is the Valkey key prefix for cached site widget sets.
	siteKeyPrefix = "site:widgets:"

	// DefaultSiteTTL bounds how long an entry can outlive a missed
	// invalidation. Correctness relies on explicit invalidation, not on
	// this ceiling.
	DefaultSiteTTL = 24 * time.Hour
)

// SiteCache manages the per-site resolved widget configuration entries.
// All errors are logged and treated as misses: the cache must never fail
// a request the database could serve.
type SiteCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSiteCache creates a new site cache backed by the given Valkey client.
func NewSiteCache(client *redis.Client, ttl time.Duration) *SiteCache {
	if ttl == 0 {
		ttl = DefaultSiteTTL
	}
	return &SiteCache{client: client, ttl: ttl}
}

// Get retrieves the cached widget set for a site. Returns false on miss.
func (sc *SiteCache) Get(ctx context.Context, siteID string) ([]byte, bool) {
	val, err := sc.client.Get(ctx, siteKeyPrefix+siteID).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("site cache get error", "site_id", siteID, "error", err)
		return nil, false
	}
	slog.Debug("site cache hit", "site_id", siteID)
	return val, true
}

// Set stores the serialized widget set for a site.
func (sc *SiteCache) Set(ctx context.Context, siteID string, payload []byte) {
	if err := sc.client.Set(ctx, siteKeyPrefix+siteID, payload, sc.ttl).Err(); err != nil {
		slog.Warn("site cache set error", "site_id", siteID, "error", err)
	}
}

// Invalidate drops a site's entry. Called after every successful widget
// sync, create, meta update, or delete for the site. There is no partial
// invalidation: a full recompute on the next read is the accepted cost.
func (sc *SiteCache) Invalidate(ctx context.Context, siteID string) {
	if err := sc.client.Del(ctx, siteKeyPrefix+siteID).Err(); err != nil {
		slog.Warn("site cache invalidate error", "site_id", siteID, "error", err)
	}
	slog.Debug("site cache invalidated", "site_id", siteID)
}
