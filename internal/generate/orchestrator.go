// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package generate turns product details and selected asset types into
// generation requests, dispatches them concurrently and aggregates the
// settled outcomes into successes and failures.
package generate

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"jewelstudio/internal/ai"
	"jewelstudio/internal/models"
	"jewelstudio/internal/prompt"
)

// DefaultMaxConcurrent bounds in-flight backend calls per batch when the
// caller does not choose a limit.
const DefaultMaxConcurrent = 5

// Backend is the generation backend collaborator. *ai.Registry satisfies it.
type Backend interface {
	GenerateContent(ctx context.Context, req ai.ContentRequest) (*ai.ContentResult, error)
}

// Templates renders the effective template for a key. *prompt.Store
// satisfies it.
type Templates interface {
	Render(key models.TemplateKey, vars map[string]string) (string, error)
}

// Orchestrator builds and dispatches generation requests.
type Orchestrator struct {
	backend       Backend
	templates     Templates
	maxConcurrent int
}

// New creates an orchestrator. A nil backend is allowed: every batch then
// fails with ErrBackendUnavailable after validation.
func New(backend Backend, templates Templates, maxConcurrent int) *Orchestrator {
	if maxConcurrent <= 0 {
		maxConcurrent = DefaultMaxConcurrent
	}
	return &Orchestrator{
		backend:       backend,
		templates:     templates,
		maxConcurrent: maxConcurrent,
	}
}

// BatchRequest is the input of GenerateBatch. Details is copied, so the
// batch works on a snapshot.
type BatchRequest struct {
	Images  []models.Image
	Types   []models.AssetType
	Details models.ProductDetails
	Logo    *models.Image // attached to STAGING requests only
}

// BatchResult partitions settled outcomes. Both lists follow the order in
// which the types were requested.
type BatchResult struct {
	Succeeded []models.GeneratedAsset `json:"assets"`
	Failed    []models.AssetFailure   `json:"failed"`
}

// Notice summarises failures as one non-blocking message, or "" when every
// type succeeded.
func (r *BatchResult) Notice() string {
	if len(r.Failed) == 0 {
		return ""
	}
	parts := make([]string, 0, len(r.Failed))
	for _, f := range r.Failed {
		parts = append(parts, fmt.Sprintf("%s: %s", f.AssetType.Label(), f.Message))
	}
	return "Some assets could not be generated. " + strings.Join(parts, "; ")
}

// RegenerateRequest is the input of Regenerate.
type RegenerateRequest struct {
	Images  []models.Image
	Type    models.AssetType
	Details models.ProductDetails
	Logo    *models.Image
}

// outcome is the settled result of one asset type.
type outcome struct {
	asset   models.GeneratedAsset
	failure *models.AssetFailure
}

// GenerateBatch generates every requested asset type concurrently and waits
// for all of them to settle. Individual failures never fail the batch; the
// returned error is non-nil only for validation errors and a missing
// backend, in which case nothing was dispatched.
func (o *Orchestrator) GenerateBatch(ctx context.Context, req BatchRequest) (*BatchResult, error) {
	types, err := validate(req.Images, req.Types)
	if err != nil {
		return nil, err
	}
	if o.backend == nil {
		return nil, ErrBackendUnavailable
	}

	start := time.Now()
	details := req.Details
	outcomes := make([]outcome, len(types))

	// Goroutines always return nil so one failure never cancels its siblings.
	var g errgroup.Group
	g.SetLimit(o.maxConcurrent)
	for i, assetType := range types {
		g.Go(func() error {
			outcomes[i] = o.generateOne(ctx, req.Images, req.Logo, assetType, details)
			return nil
		})
	}
	_ = g.Wait()

	result := &BatchResult{
		Succeeded: make([]models.GeneratedAsset, 0, len(types)),
		Failed:    make([]models.AssetFailure, 0),
	}
	for _, oc := range outcomes {
		if oc.failure != nil {
			result.Failed = append(result.Failed, *oc.failure)
			continue
		}
		result.Succeeded = append(result.Succeeded, oc.asset)
	}

	slog.Info("asset batch settled",
		"requested", len(types),
		"succeeded", len(result.Succeeded),
		"failed", len(result.Failed),
		"jewelry_type", details.Type,
		"duration", time.Since(start),
	)
	return result, nil
}

// Regenerate re-runs one asset type and returns previous with that type's
// entry replaced (or appended when absent). previous itself is never
// modified; on failure it is returned as-is together with the error.
func (o *Orchestrator) Regenerate(ctx context.Context, previous []models.GeneratedAsset, req RegenerateRequest) ([]models.GeneratedAsset, error) {
	if _, err := validate(req.Images, []models.AssetType{req.Type}); err != nil {
		return previous, err
	}
	if o.backend == nil {
		return previous, ErrBackendUnavailable
	}

	oc := o.generateOne(ctx, req.Images, req.Logo, req.Type, req.Details)
	if oc.failure != nil {
		return previous, &GenerationError{AssetType: oc.failure.AssetType, Message: oc.failure.Message}
	}

	out, replaced := models.ReplaceAsset(previous, oc.asset)

	slog.Info("asset regenerated", "asset_type", req.Type, "replaced", replaced)
	return out, nil
}

// BuildPrompt resolves the template key for assetType and renders its
// prompt from details.
func (o *Orchestrator) BuildPrompt(assetType models.AssetType, details models.ProductDetails) (models.TemplateKey, string, error) {
	key := prompt.SelectTemplateKey(assetType, details.Type)
	text, err := o.templates.Render(key, prompt.VariablesFor(key, details))
	if err != nil {
		return key, "", fmt.Errorf("build prompt for %s: %w", assetType, err)
	}
	return key, text, nil
}

// generateOne settles one asset type. A panic while building or sending
// the request becomes that type's failure.
func (o *Orchestrator) generateOne(ctx context.Context, images []models.Image, logo *models.Image, assetType models.AssetType, details models.ProductDetails) (oc outcome) {
	fail := func(msg string) outcome {
		return outcome{failure: &models.AssetFailure{AssetType: assetType, Message: msg}}
	}
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("asset generation panicked",
				"asset_type", assetType,
				"panic", rec,
				"stack", string(debug.Stack()),
			)
			oc = fail(internalFailureMessage)
		}
	}()

	key, text, err := o.BuildPrompt(assetType, details)
	if err != nil {
		slog.Error("prompt template unavailable", "asset_type", assetType, "key", key, "error", err)
		return fail(internalFailureMessage)
	}

	inputs := make([]models.Image, 0, len(images)+1)
	inputs = append(inputs, images...)
	if assetType == models.AssetStaging && logo != nil && len(logo.Data) > 0 {
		inputs = append(inputs, *logo)
	}

	modality := assetType.Modality()
	res, err := o.backend.GenerateContent(ctx, ai.ContentRequest{
		Images:   inputs,
		Prompt:   text,
		Modality: modality,
	})
	if err != nil {
		slog.Warn("asset generation failed", "asset_type", assetType, "key", key, "error", err)
		return fail(err.Error())
	}

	asset := models.GeneratedAsset{Type: assetType, IsImage: modality == models.ModalityImage}
	switch {
	case asset.IsImage && res != nil && len(res.ImageData) > 0:
		mimeType := res.MimeType
		if mimeType == "" {
			mimeType = "image/png"
		}
		asset.Content = models.Image{Data: res.ImageData, MimeType: mimeType}.DataURL()
	case !asset.IsImage && res != nil && strings.TrimSpace(res.Text) != "":
		asset.Content = res.Text
	default:
		slog.Warn("asset generation returned no content", "asset_type", assetType, "key", key)
		return fail(ai.ErrEmptyContent.Error())
	}

	return outcome{asset: asset}
}

// validate checks the batch preconditions and returns the types with
// duplicates removed, first occurrence first.
func validate(images []models.Image, types []models.AssetType) ([]models.AssetType, error) {
	if len(images) == 0 {
		return nil, &ValidationError{Err: ErrNoImages}
	}
	if len(types) == 0 {
		return nil, &ValidationError{Err: ErrNoAssetTypes}
	}

	seen := make(map[models.AssetType]bool, len(types))
	out := make([]models.AssetType, 0, len(types))
	for _, t := range types {
		if _, ok := models.ParseAssetType(string(t)); !ok {
			return nil, &ValidationError{Err: fmt.Errorf("%w: %q", ErrUnknownAssetType, t)}
		}
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}
