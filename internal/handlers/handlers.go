// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the JewelStudio API.
// Handlers are grouped by concern (studio, catalog) and receive their
// dependencies through the handler struct. Every response is JSON.
package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/google/uuid"

	"jewelstudio/internal/models"
	"jewelstudio/internal/prompt"
)

// BatchCache keeps the displayed asset set of each batch. *cache.ResultCache
// satisfies it.
type BatchCache interface {
	Save(ctx context.Context, batchID string, assets []models.GeneratedAsset) error
	Load(ctx context.Context, batchID string) ([]models.GeneratedAsset, bool, error)
	ReplaceAsset(ctx context.Context, batchID string, asset models.GeneratedAsset) ([]models.GeneratedAsset, error)
	Delete(ctx context.Context, batchID string) error
}

// TypeDetector guesses the jewelry type shown in a photo. *ai.Registry
// satisfies it.
type TypeDetector interface {
	DetectJewelryType(ctx context.Context, img models.Image) (models.JewelryType, error)
}

// ProviderSwitcher selects the active generation provider. *ai.Registry
// satisfies it.
type ProviderSwitcher interface {
	ActiveName() string
	Available() []string
	SetActive(name string) error
}

// TemplateManager is the editable template set. *prompt.Store satisfies it.
type TemplateManager interface {
	Entries() []prompt.Entry
	Set(ctx context.Context, key models.TemplateKey, body string) error
	Reset(ctx context.Context, key models.TemplateKey) error
	ResetAll(ctx context.Context) error
}

// ItemRepository persists catalog items. *store.ItemStore satisfies it.
type ItemRepository interface {
	Create(ctx context.Context, details models.ProductDetails) (*models.Item, error)
	Update(ctx context.Context, id uuid.UUID, details models.ProductDetails) (*models.Item, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error)
	List(ctx context.Context, limit, offset int) ([]models.Item, error)
	Count(ctx context.Context) (int, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// AssetRepository persists saved assets. *store.AssetStore satisfies it.
type AssetRepository interface {
	Create(ctx context.Context, a *models.AssetRecord) (*models.AssetRecord, error)
	FindByID(ctx context.Context, itemID, id uuid.UUID) (*models.AssetRecord, error)
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]models.AssetRecord, error)
	Delete(ctx context.Context, itemID, id uuid.UUID) (*models.AssetRecord, error)
}

// ObjectStore holds saved image bytes. *storage.Client satisfies it.
type ObjectStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	Delete(ctx context.Context, key string) error
	URL(ctx context.Context, key string) (string, error)
}

// maxJSONBody bounds JSON request bodies.
const maxJSONBody = 1 << 20

// writeJSON encodes v as the response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a short JSON error message.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBody)
	return json.NewDecoder(r.Body).Decode(dst)
}
