// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jewelstudio/internal/cache"
	"jewelstudio/internal/generate"
	"jewelstudio/internal/markdown"
	"jewelstudio/internal/models"
	"jewelstudio/internal/prompt"
)

// Studio groups the generation endpoints and their dependencies.
type Studio struct {
	orchestrator   *generate.Orchestrator
	detector       TypeDetector
	templates      TemplateManager
	batches        BatchCache
	maxUploadBytes int64
}

// NewStudio creates the studio handler group.
func NewStudio(orch *generate.Orchestrator, detector TypeDetector, templates TemplateManager, batches BatchCache, maxUploadBytes int64) *Studio {
	return &Studio{
		orchestrator:   orch,
		detector:       detector,
		templates:      templates,
		batches:        batches,
		maxUploadBytes: maxUploadBytes,
	}
}

// assetView is a generated asset as returned to clients. Text assets carry
// their Markdown rendered as HTML as well.
type assetView struct {
	models.GeneratedAsset
	Label string `json:"label"`
	HTML  string `json:"html,omitempty"`
}

func viewAssets(assets []models.GeneratedAsset) []assetView {
	out := make([]assetView, 0, len(assets))
	for _, a := range assets {
		v := assetView{GeneratedAsset: a, Label: a.Type.Label()}
		if !a.IsImage {
			v.HTML = markdown.ToHTMLOrEscaped(a.Content)
		}
		out = append(out, v)
	}
	return out
}

type generateResponse struct {
	BatchID string                `json:"batch_id,omitempty"`
	Assets  []assetView           `json:"assets"`
	Failed  []models.AssetFailure `json:"failed"`
	Notice  string                `json:"notice,omitempty"`
}

// Generate runs one batch: every selected asset type for the uploaded
// photos. Partial failures still answer 200 with a notice.
func (s *Studio) Generate(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}

	req, ok := s.readBatchInput(w, r)
	if !ok {
		return
	}
	req.Types = formTypes(r, "types")

	result, err := s.orchestrator.GenerateBatch(r.Context(), req)
	if err != nil {
		s.writeGenerateError(w, err)
		return
	}

	resp := generateResponse{
		Assets: viewAssets(result.Succeeded),
		Failed: result.Failed,
		Notice: result.Notice(),
	}

	batchID := cache.NewBatchID()
	if err := s.batches.Save(r.Context(), batchID, result.Succeeded); err != nil {
		// The assets are still useful; only regeneration is lost.
		slog.Error("cache batch failed", "batch_id", batchID, "error", err)
	} else {
		resp.BatchID = batchID
	}

	writeJSON(w, http.StatusOK, resp)
}

type regenerateResponse struct {
	BatchID string      `json:"batch_id"`
	Assets  []assetView `json:"assets"`
	Error   string      `json:"error,omitempty"`
}

// Regenerate re-runs one asset type of a cached batch. A failure keeps the
// previous set and reports the error next to it.
func (s *Studio) Regenerate(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")

	previous, found, err := s.batches.Load(r.Context(), batchID)
	if err != nil {
		slog.Error("load batch failed", "batch_id", batchID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not load the batch")
		return
	}
	if !found {
		writeError(w, http.StatusNotFound, "batch not found or expired, generate again")
		return
	}

	if err := parseMultipart(w, r, s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}
	in, ok := s.readBatchInput(w, r)
	if !ok {
		return
	}
	types := formTypes(r, "type")
	if len(types) != 1 {
		writeError(w, http.StatusBadRequest, "select exactly one asset type to regenerate")
		return
	}

	assets, err := s.orchestrator.Regenerate(r.Context(), previous, generate.RegenerateRequest{
		Images:  in.Images,
		Type:    types[0],
		Details: in.Details,
		Logo:    in.Logo,
	})

	var genErr *generate.GenerationError
	switch {
	case errors.As(err, &genErr):
		writeJSON(w, http.StatusOK, regenerateResponse{
			BatchID: batchID,
			Assets:  viewAssets(previous),
			Error:   genErr.Error(),
		})
		return
	case err != nil:
		s.writeGenerateError(w, err)
		return
	}

	// Merge into the batch as cached now, not the snapshot loaded above, so
	// a concurrent regeneration of another type is kept.
	regenerated, _ := findAsset(assets, types[0])
	merged, err := s.batches.ReplaceAsset(r.Context(), batchID, regenerated)
	switch {
	case errors.Is(err, cache.ErrBatchNotFound):
		// Expired while generating: store the set this request built.
		if err := s.batches.Save(r.Context(), batchID, assets); err != nil {
			slog.Error("cache batch failed", "batch_id", batchID, "error", err)
		}
		merged = assets
	case err != nil:
		slog.Error("update cached batch failed", "batch_id", batchID, "error", err)
		merged = assets
	}
	writeJSON(w, http.StatusOK, regenerateResponse{BatchID: batchID, Assets: viewAssets(merged)})
}

// DiscardBatch drops a cached batch once the user clears the results.
func (s *Studio) DiscardBatch(w http.ResponseWriter, r *http.Request) {
	batchID := chi.URLParam(r, "batchID")
	if err := s.batches.Delete(r.Context(), batchID); err != nil {
		slog.Error("discard batch failed", "batch_id", batchID, "error", err)
		writeError(w, http.StatusInternalServerError, "could not discard the batch")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func findAsset(assets []models.GeneratedAsset, t models.AssetType) (models.GeneratedAsset, bool) {
	for _, a := range assets {
		if a.Type == t {
			return a, true
		}
	}
	return models.GeneratedAsset{}, false
}

// readBatchInput reads the images, logo and details shared by both
// generation endpoints. It writes the error response itself.
func (s *Studio) readBatchInput(w http.ResponseWriter, r *http.Request) (generate.BatchRequest, bool) {
	var req generate.BatchRequest

	images, err := formImages(r, "images")
	if err != nil {
		writeUploadError(w, err)
		return req, false
	}
	logo, err := formImage(r, "logo")
	if err != nil {
		writeUploadError(w, err)
		return req, false
	}
	details, err := formDetails(r, "details")
	if err != nil {
		writeUploadError(w, err)
		return req, false
	}

	req.Images = images
	req.Logo = logo
	req.Details = details
	return req, true
}

func (s *Studio) writeGenerateError(w http.ResponseWriter, err error) {
	var vErr *generate.ValidationError
	switch {
	case errors.As(err, &vErr):
		writeError(w, http.StatusBadRequest, vErr.Error())
	case errors.Is(err, generate.ErrBackendUnavailable):
		writeError(w, http.StatusServiceUnavailable, "no generation backend is configured")
	default:
		slog.Error("generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "generation failed")
	}
}

func writeUploadError(w http.ResponseWriter, err error) {
	if errors.Is(err, errBadUpload) {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}
	slog.Error("read upload failed", "error", err)
	writeError(w, http.StatusInternalServerError, "could not read the upload")
}

// DetectType guesses the jewelry type of one photo. When detection fails
// the current selection is echoed back with detected=false.
func (s *Studio) DetectType(w http.ResponseWriter, r *http.Request) {
	if err := parseMultipart(w, r, s.maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}

	current, ok := models.ParseJewelryType(r.FormValue("current"))
	if !ok {
		current = models.DefaultProductDetails().Type
	}

	img, err := formImage(r, "image")
	if err != nil {
		writeUploadError(w, err)
		return
	}
	if img == nil {
		writeError(w, http.StatusBadRequest, "upload an image to detect its type")
		return
	}

	if s.detector == nil {
		writeJSON(w, http.StatusOK, map[string]any{"type": current, "detected": false})
		return
	}
	detected, err := s.detector.DetectJewelryType(r.Context(), *img)
	if err != nil {
		slog.Warn("jewelry type detection failed, keeping selection", "current", current, "error", err)
		writeJSON(w, http.StatusOK, map[string]any{"type": current, "detected": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"type": detected, "detected": true})
}

type previewRequest struct {
	AssetType models.AssetType      `json:"asset_type"`
	Details   models.ProductDetails `json:"details"`
}

// PromptPreview renders the prompt one asset type would be sent with.
func (s *Studio) PromptPreview(w http.ResponseWriter, r *http.Request) {
	var req previewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	assetType, ok := models.ParseAssetType(string(req.AssetType))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown asset type")
		return
	}
	details, err := normalizeDetails(req.Details)
	if err != nil {
		writeError(w, http.StatusBadRequest, uploadMessage(err))
		return
	}

	key, text, err := s.orchestrator.BuildPrompt(assetType, details)
	if err != nil {
		slog.Error("prompt preview failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "could not build the prompt")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": key, "prompt": text})
}

type assetTypeOption struct {
	Type      models.AssetType     `json:"type"`
	Label     string               `json:"label"`
	Modality  models.Modality      `json:"modality"`
	Templates []models.TemplateKey `json:"templates"`
}

// Options lists the enumerations and form choices the studio UI offers.
func (s *Studio) Options(w http.ResponseWriter, r *http.Request) {
	types := make([]assetTypeOption, 0, len(models.AllAssetTypes()))
	for _, t := range models.AllAssetTypes() {
		types = append(types, assetTypeOption{
			Type:      t,
			Label:     t.Label(),
			Modality:  t.Modality(),
			Templates: prompt.TemplateKeyFamily(t),
		})
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"asset_types":      types,
		"jewelry_types":    models.AllJewelryTypes(),
		"necklace_lengths": models.AllNecklaceLengths(),
		"choices":          prompt.Choices(),
		"defaults":         models.DefaultProductDetails(),
	})
}
