// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package widgets

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"newschools/internal/models"
)

// CreateInstance adds a widget instance to a site and drops the site's
// cached render documents. The instance's configuration starts empty;
// callers sync it separately.
func (s *Service) CreateInstance(ctx context.Context, w *models.WidgetInstance) (*models.WidgetInstance, error) {
	if !w.Variant.Known() {
		return nil, ErrUnknownVariant
	}

	created, err := s.widgets.Create(w)
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	if s.siteCache != nil {
		s.siteCache.Invalidate(ctx, created.SiteID.String())
	}
	return created, nil
}

// UpdateInstanceMeta changes the editor-facing fields of an instance
// without touching its stored configuration, then drops the site's cache
// entry.
func (s *Service) UpdateInstanceMeta(ctx context.Context, id uuid.UUID, name string, sortOrder int, isActive, isVisible bool) (*models.WidgetInstance, error) {
	updated, err := s.widgets.UpdateMeta(id, name, sortOrder, isActive, isVisible)
	if err != nil {
		return nil, fmt.Errorf("update instance meta: %w", err)
	}
	if updated == nil {
		return nil, ErrWidgetNotFound
	}
	if s.siteCache != nil {
		s.siteCache.Invalidate(ctx, updated.SiteID.String())
	}
	return updated, nil
}

// DeleteInstance soft-deletes an instance and drops the site's cache
// entry. The specialized rows and settings stay behind the deleted_at
// filter until a hard delete cascades them away.
func (s *Service) DeleteInstance(ctx context.Context, id uuid.UUID) error {
	w, err := s.widgets.FindByID(id)
	if err != nil {
		return fmt.Errorf("delete instance: %w", err)
	}
	if w == nil {
		return ErrWidgetNotFound
	}

	if err := s.widgets.SoftDelete(id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrWidgetNotFound
		}
		return fmt.Errorf("delete instance: %w", err)
	}

	if s.siteCache != nil {
		s.siteCache.Invalidate(ctx, w.SiteID.String())
	}
	return nil
}
