// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package generate

import (
	"errors"
	"fmt"

	"jewelstudio/internal/models"
)

var (
	// ErrNoImages means the request carried no product photo.
	ErrNoImages = errors.New("upload at least one product image")

	// ErrNoAssetTypes means no asset type was selected.
	ErrNoAssetTypes = errors.New("select at least one asset type")

	// ErrUnknownAssetType means a requested asset type is not supported.
	ErrUnknownAssetType = errors.New("unknown asset type")

	// ErrBackendUnavailable means no generation backend is configured. It is
	// the only error that fails a whole batch after validation.
	ErrBackendUnavailable = errors.New("generation backend is not configured")
)

// ValidationError reports a precondition violation detected before any
// request is dispatched. Its message is safe to show to the user.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string { return e.Err.Error() }

func (e *ValidationError) Unwrap() error { return e.Err }

// GenerationError reports the failure of a single asset type.
type GenerationError struct {
	AssetType models.AssetType
	Message   string
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %s", e.AssetType.Label(), e.Message)
}

// internalFailureMessage is shown for failures whose cause is logged but
// not meant for the user.
const internalFailureMessage = "internal error while generating this asset"
