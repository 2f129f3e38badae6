// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers exposes the widget configuration JSON API consumed by
// the site-builder admin UI. Authentication happens upstream; these
// handlers assume the caller may edit the site they address.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"newschools/internal/models"
	"newschools/internal/widgets"
)

// WidgetService is the part of the widgets service the handlers use.
// Narrowed to an interface so handler tests can stub it without a
// database.
type WidgetService interface {
	Sync(ctx context.Context, widgetID uuid.UUID, doc map[string]any) (*widgets.SyncResult, error)
	Resolve(ctx context.Context, widgetID uuid.UUID) (*widgets.RenderDocument, error)
	ResolveAllForSite(ctx context.Context, siteID uuid.UUID) ([]widgets.RenderDocument, error)
	CreateInstance(ctx context.Context, w *models.WidgetInstance) (*models.WidgetInstance, error)
	UpdateInstanceMeta(ctx context.Context, id uuid.UUID, name string, sortOrder int, isActive, isVisible bool) (*models.WidgetInstance, error)
	DeleteInstance(ctx context.Context, id uuid.UUID) error
}

// Widgets groups the widget configuration endpoints.
type Widgets struct {
	svc WidgetService
}

// NewWidgets creates the handler group.
func NewWidgets(svc WidgetService) *Widgets {
	return &Widgets{svc: svc}
}

// ListForSite returns every active widget of a site as render-ready
// documents.
// GET /api/sites/{siteID}/widgets
func (h *Widgets) ListForSite(w http.ResponseWriter, r *http.Request) {
	siteID, ok := pathUUID(w, r, "siteID")
	if !ok {
		return
	}

	docs, err := h.svc.ResolveAllForSite(r.Context(), siteID)
	if err != nil {
		slog.Error("resolve site widgets failed", "site_id", siteID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not resolve site widgets")
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// createWidgetRequest is the body of POST /api/sites/{siteID}/widgets.
type createWidgetRequest struct {
	Variant   string         `json:"variant"`
	Position  string         `json:"position"`
	Name      string         `json:"name"`
	SortOrder int            `json:"sort_order"`
	IsVisible *bool          `json:"is_visible"`
	Config    map[string]any `json:"config"`
}

// Create adds a widget instance to a site and, when an initial config is
// provided, syncs it in the same request.
// POST /api/sites/{siteID}/widgets
func (h *Widgets) Create(w http.ResponseWriter, r *http.Request) {
	siteID, ok := pathUUID(w, r, "siteID")
	if !ok {
		return
	}

	var req createWidgetRequest
	if !readJSON(w, r, &req) {
		return
	}

	if msg := validateWidgetMeta(req.Name, req.Position); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}
	if req.Config != nil {
		if msg := validateConfigDoc(req.Config); msg != "" {
			writeError(w, http.StatusUnprocessableEntity, msg)
			return
		}
	}

	visible := true
	if req.IsVisible != nil {
		visible = *req.IsVisible
	}

	created, err := h.svc.CreateInstance(r.Context(), &models.WidgetInstance{
		SiteID:    siteID,
		Variant:   models.Variant(req.Variant),
		Position:  req.Position,
		Name:      req.Name,
		SortOrder: req.SortOrder,
		IsActive:  true,
		IsVisible: visible,
	})
	if errors.Is(err, widgets.ErrUnknownVariant) {
		writeError(w, http.StatusUnprocessableEntity, "unknown widget variant")
		return
	}
	if err != nil {
		slog.Error("create widget failed", "site_id", siteID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not create widget")
		return
	}

	var result *widgets.SyncResult
	if req.Config != nil {
		result, err = h.svc.Sync(r.Context(), created.ID, req.Config)
		if err != nil {
			slog.Error("initial sync failed", "widget_id", created.ID, "error", err)
			writeError(w, http.StatusInternalServerError, "widget created but initial config failed")
			return
		}
	}

	resp := map[string]any{"widget": created}
	if result != nil && len(result.Skipped) > 0 {
		resp["skipped"] = result.Skipped
	}
	writeJSON(w, http.StatusCreated, resp)
}

// Get resolves one widget.
// GET /api/widgets/{widgetID}
func (h *Widgets) Get(w http.ResponseWriter, r *http.Request) {
	widgetID, ok := pathUUID(w, r, "widgetID")
	if !ok {
		return
	}

	doc, err := h.svc.Resolve(r.Context(), widgetID)
	if errors.Is(err, widgets.ErrWidgetNotFound) {
		writeError(w, http.StatusNotFound, "widget not found")
		return
	}
	if err != nil {
		slog.Error("resolve widget failed", "widget_id", widgetID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not resolve widget")
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// SyncConfig replaces a widget's configuration with the request body.
// Rows that could not be mapped are reported in the response, not
// treated as a failure.
// PUT /api/widgets/{widgetID}/config
func (h *Widgets) SyncConfig(w http.ResponseWriter, r *http.Request) {
	widgetID, ok := pathUUID(w, r, "widgetID")
	if !ok {
		return
	}

	var doc map[string]any
	if !readJSON(w, r, &doc) {
		return
	}
	if msg := validateConfigDoc(doc); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	result, err := h.svc.Sync(r.Context(), widgetID, doc)
	if errors.Is(err, widgets.ErrWidgetNotFound) {
		writeError(w, http.StatusNotFound, "widget not found")
		return
	}
	if errors.Is(err, widgets.ErrUnknownVariant) {
		writeError(w, http.StatusUnprocessableEntity, "widget variant is not in the catalog")
		return
	}
	if err != nil {
		slog.Error("widget sync failed", "widget_id", widgetID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not store configuration")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// updateMetaRequest is the body of PATCH /api/widgets/{widgetID}.
type updateMetaRequest struct {
	Name      string `json:"name"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
	IsVisible bool   `json:"is_visible"`
}

// UpdateMeta changes the editor-facing instance fields without touching
// the stored configuration.
// PATCH /api/widgets/{widgetID}
func (h *Widgets) UpdateMeta(w http.ResponseWriter, r *http.Request) {
	widgetID, ok := pathUUID(w, r, "widgetID")
	if !ok {
		return
	}

	var req updateMetaRequest
	if !readJSON(w, r, &req) {
		return
	}
	if msg := validateWidgetMeta(req.Name, ""); msg != "" {
		writeError(w, http.StatusUnprocessableEntity, msg)
		return
	}

	updated, err := h.svc.UpdateInstanceMeta(r.Context(), widgetID, req.Name, req.SortOrder, req.IsActive, req.IsVisible)
	if errors.Is(err, widgets.ErrWidgetNotFound) {
		writeError(w, http.StatusNotFound, "widget not found")
		return
	}
	if err != nil {
		slog.Error("update widget meta failed", "widget_id", widgetID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not update widget")
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// Delete soft-deletes a widget instance.
// DELETE /api/widgets/{widgetID}
func (h *Widgets) Delete(w http.ResponseWriter, r *http.Request) {
	widgetID, ok := pathUUID(w, r, "widgetID")
	if !ok {
		return
	}

	err := h.svc.DeleteInstance(r.Context(), widgetID)
	if errors.Is(err, widgets.ErrWidgetNotFound) {
		writeError(w, http.StatusNotFound, "widget not found")
		return
	}
	if err != nil {
		slog.Error("delete widget failed", "widget_id", widgetID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete widget")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathUUID parses a UUID URL parameter, writing a 400 response when it is
// malformed.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// readJSON decodes the request body into dst, writing a 400 response on
// malformed input. The body is capped at maxConfigBodyLen.
func readJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxConfigBodyLen)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
