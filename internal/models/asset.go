// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"encoding/base64"
	"fmt"
)

// AssetType is a generation target. Three produce images, two produce text.
type AssetType string

const (
	AssetStaging     AssetType = "STAGING"
	AssetModel       AssetType = "MODEL"
	AssetWhiteBg     AssetType = "WHITE_BG"
	AssetDescription AssetType = "DESCRIPTION"
	AssetSocialPost  AssetType = "SOCIAL_POST"
)

// AllAssetTypes returns every asset type in display order.
func AllAssetTypes() []AssetType {
	return []AssetType{AssetStaging, AssetModel, AssetWhiteBg, AssetDescription, AssetSocialPost}
}

// ParseAssetType accepts the canonical upper-case asset type names.
func ParseAssetType(s string) (AssetType, bool) {
	for _, t := range AllAssetTypes() {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Modality says whether the backend should answer with an image or text.
type Modality string

const (
	ModalityImage Modality = "image"
	ModalityText  Modality = "text"
)

// Modality returns the fixed output modality for the asset type.
func (t AssetType) Modality() Modality {
	switch t {
	case AssetDescription, AssetSocialPost:
		return ModalityText
	default:
		return ModalityImage
	}
}

// Label returns a human-friendly name used in notices.
func (t AssetType) Label() string {
	switch t {
	case AssetStaging:
		return "Staging photo"
	case AssetModel:
		return "Model shot"
	case AssetWhiteBg:
		return "White background"
	case AssetDescription:
		return "Description"
	case AssetSocialPost:
		return "Social post"
	}
	return string(t)
}

// Image is an input or output image with its MIME type.
type Image struct {
	Data     []byte
	MimeType string
}

// DataURL renders the image as a base64 data URI.
func (img Image) DataURL() string {
	return fmt.Sprintf("data:%s;base64,%s", img.MimeType, base64.StdEncoding.EncodeToString(img.Data))
}

// GeneratedAsset is one result of a generation batch. Content is a data
// URI for images and opaque text otherwise.
type GeneratedAsset struct {
	Type    AssetType `json:"type"`
	Content string    `json:"content"`
	IsImage bool      `json:"is_image"`
}

// AssetFailure records why one asset type of a batch failed.
type AssetFailure struct {
	AssetType AssetType `json:"asset_type"`
	Message   string    `json:"message"`
}

// ReplaceAsset returns a copy of assets with the first entry of a's type
// replaced by a, or with a appended when no entry has that type. assets is
// not modified.
func ReplaceAsset(assets []GeneratedAsset, a GeneratedAsset) ([]GeneratedAsset, bool) {
	out := make([]GeneratedAsset, 0, len(assets)+1)
	replaced := false
	for _, existing := range assets {
		if existing.Type == a.Type && !replaced {
			out = append(out, a)
			replaced = true
			continue
		}
		out = append(out, existing)
	}
	if !replaced {
		out = append(out, a)
	}
	return out, replaced
}
