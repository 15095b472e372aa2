// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"jewelstudio/internal/markdown"
	"jewelstudio/internal/models"
	"jewelstudio/internal/storage"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
	maxAssetText    = 50_000
)

// Catalog groups the item and saved-asset endpoints. objects may be nil
// when S3 is not configured; image assets cannot be saved then.
type Catalog struct {
	items   ItemRepository
	assets  AssetRepository
	objects ObjectStore
}

// NewCatalog creates the catalog handler group.
func NewCatalog(items ItemRepository, assets AssetRepository, objects ObjectStore) *Catalog {
	return &Catalog{items: items, assets: assets, objects: objects}
}

// ListItems returns one page of catalog items, newest first.
func (c *Catalog) ListItems(w http.ResponseWriter, r *http.Request) {
	limit := queryInt(r, "limit", defaultPageSize)
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset := queryInt(r, "offset", 0)
	if offset < 0 {
		offset = 0
	}

	items, err := c.items.List(r.Context(), limit, offset)
	if err != nil {
		slog.Error("list items failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list items")
		return
	}
	total, err := c.items.Count(r.Context())
	if err != nil {
		slog.Error("count items failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not list items")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items, "total": total})
}

// CreateItem adds a catalog item from product details.
func (c *Catalog) CreateItem(w http.ResponseWriter, r *http.Request) {
	details, ok := readItemDetails(w, r)
	if !ok {
		return
	}
	item, err := c.items.Create(r.Context(), details)
	if err != nil {
		slog.Error("create item failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not create item")
		return
	}
	slog.Info("item created", "item_id", item.ID, "name", item.Name)
	writeJSON(w, http.StatusCreated, item)
}

// GetItem returns one item.
func (c *Catalog) GetItem(w http.ResponseWriter, r *http.Request) {
	item, ok := c.loadItem(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// UpdateItem replaces the details of an item.
func (c *Catalog) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	details, ok := readItemDetails(w, r)
	if !ok {
		return
	}
	item, err := c.items.Update(r.Context(), id, details)
	if err != nil {
		slog.Error("update item failed", "item_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not update item")
		return
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem removes an item, its saved assets and their stored objects.
func (c *Catalog) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	assets, err := c.assets.ListByItem(r.Context(), id)
	if err != nil {
		slog.Error("list assets for delete failed", "item_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete item")
		return
	}

	deleted, err := c.items.Delete(r.Context(), id)
	if err != nil {
		slog.Error("delete item failed", "item_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete item")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	for i := range assets {
		c.deleteObject(r, &assets[i])
	}
	slog.Info("item deleted", "item_id", id, "assets", len(assets))
	w.WriteHeader(http.StatusNoContent)
}

// ListAssets returns the saved assets of an item with fetchable URLs.
func (c *Catalog) ListAssets(w http.ResponseWriter, r *http.Request) {
	item, ok := c.loadItem(w, r)
	if !ok {
		return
	}
	assets, err := c.assets.ListByItem(r.Context(), item.ID)
	if err != nil {
		slog.Error("list assets failed", "item_id", item.ID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not list assets")
		return
	}

	views := make([]savedAssetView, 0, len(assets))
	for i := range assets {
		views = append(views, c.viewSaved(r, &assets[i]))
	}
	writeJSON(w, http.StatusOK, map[string]any{"assets": views})
}

// GetAsset returns one saved asset.
func (c *Catalog) GetAsset(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	assetID, ok := pathUUID(w, r, "assetID")
	if !ok {
		return
	}
	a, err := c.assets.FindByID(r.Context(), itemID, assetID)
	if err != nil {
		slog.Error("find asset failed", "asset_id", assetID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load asset")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}
	writeJSON(w, http.StatusOK, c.viewSaved(r, a))
}

// SaveAsset stores a generated asset against an item. Images are decoded
// from their data URL and uploaded; text is kept inline.
func (c *Catalog) SaveAsset(w http.ResponseWriter, r *http.Request) {
	item, ok := c.loadItem(w, r)
	if !ok {
		return
	}

	var req models.GeneratedAsset
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	assetType, ok := models.ParseAssetType(string(req.Type))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown asset type")
		return
	}

	rec := &models.AssetRecord{ItemID: item.ID, AssetType: assetType}

	if assetType.Modality() == models.ModalityImage {
		if c.objects == nil {
			writeError(w, http.StatusServiceUnavailable, "object storage is not configured")
			return
		}
		data, mimeType, err := decodeDataURL(req.Content)
		if err != nil {
			writeError(w, http.StatusBadRequest, uploadMessage(err))
			return
		}
		key := storage.AssetKey(item.Name, string(assetType), storage.ExtForMime(mimeType), time.Now().UTC())
		if err := c.objects.Upload(r.Context(), key, mimeType, bytes.NewReader(data), int64(len(data))); err != nil {
			slog.Error("upload asset failed", "item_id", item.ID, "key", key, "error", err)
			writeError(w, http.StatusBadGateway, "could not store the image")
			return
		}
		rec.ContentType = mimeType
		rec.SizeBytes = int64(len(data))
		rec.S3Key = &key
	} else {
		text := strings.TrimSpace(req.Content)
		if text == "" {
			writeError(w, http.StatusBadRequest, "text content is required")
			return
		}
		if len(text) > maxAssetText {
			writeError(w, http.StatusBadRequest, "text content is too long")
			return
		}
		rec.ContentType = "text/markdown; charset=utf-8"
		rec.SizeBytes = int64(len(text))
		rec.Text = &text
	}

	saved, err := c.assets.Create(r.Context(), rec)
	if err != nil {
		slog.Error("save asset failed", "item_id", item.ID, "error", err)
		// Do not leave an orphaned object behind.
		c.deleteObject(r, rec)
		writeError(w, http.StatusInternalServerError, "could not save asset")
		return
	}

	slog.Info("asset saved", "item_id", item.ID, "asset_id", saved.ID, "type", assetType, "size", saved.HumanSize())
	writeJSON(w, http.StatusCreated, c.viewSaved(r, saved))
}

// DeleteAsset removes a saved asset and its stored object.
func (c *Catalog) DeleteAsset(w http.ResponseWriter, r *http.Request) {
	itemID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	assetID, ok := pathUUID(w, r, "assetID")
	if !ok {
		return
	}

	a, err := c.assets.Delete(r.Context(), itemID, assetID)
	if err != nil {
		slog.Error("delete asset failed", "asset_id", assetID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not delete asset")
		return
	}
	if a == nil {
		writeError(w, http.StatusNotFound, "asset not found")
		return
	}
	c.deleteObject(r, a)
	w.WriteHeader(http.StatusNoContent)
}

// savedAssetView is a saved asset as returned to clients.
type savedAssetView struct {
	models.AssetRecord
	Image bool   `json:"is_image"`
	Label string `json:"label"`
	Size  string `json:"size"`
	HTML  string `json:"html,omitempty"`
}

func (c *Catalog) viewSaved(r *http.Request, a *models.AssetRecord) savedAssetView {
	v := savedAssetView{
		AssetRecord: *a,
		Image:       a.IsImage(),
		Label:       a.AssetType.Label(),
		Size:        a.HumanSize(),
	}
	if a.Text != nil {
		v.HTML = markdown.ToHTMLOrEscaped(*a.Text)
	}
	if a.S3Key != nil && c.objects != nil {
		u, err := c.objects.URL(r.Context(), *a.S3Key)
		if err != nil {
			slog.Warn("asset url failed", "key", *a.S3Key, "error", err)
		}
		v.URL = u
	}
	return v
}

// deleteObject removes the stored object of a record, if any. Failures are
// logged only; the record is already gone.
func (c *Catalog) deleteObject(r *http.Request, a *models.AssetRecord) {
	if a.S3Key == nil || c.objects == nil {
		return
	}
	if err := c.objects.Delete(r.Context(), *a.S3Key); err != nil {
		slog.Warn("delete stored object failed", "key", *a.S3Key, "error", err)
	}
}

func (c *Catalog) loadItem(w http.ResponseWriter, r *http.Request) (*models.Item, bool) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return nil, false
	}
	item, err := c.items.FindByID(r.Context(), id)
	if err != nil {
		slog.Error("find item failed", "item_id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load item")
		return nil, false
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return nil, false
	}
	return item, true
}

func readItemDetails(w http.ResponseWriter, r *http.Request) (models.ProductDetails, bool) {
	var d models.ProductDetails
	if err := decodeJSON(w, r, &d); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return d, false
	}
	d, msg := validateItemDetails(d)
	if msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return d, false
	}
	return d, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+param)
		return uuid.Nil, false
	}
	return id, true
}

func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
