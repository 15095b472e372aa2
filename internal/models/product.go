// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// ProductDetails holds the structured attributes of one jewelry item as it
// is being edited. Which fields matter depends on Type (NecklaceLength is
// only meaningful for necklaces, HookType for earrings, and so on); the
// struct does not enforce this and callers branch on Type.
//
// The core always receives ProductDetails by value, so a generation batch
// works on a snapshot even if the caller keeps mutating its copy.
type ProductDetails struct {
	Name string      `json:"name"`
	Type JewelryType `json:"type"`

	// Material attributes
	Stone                string `json:"stone,omitempty"`
	Shape                string `json:"shape,omitempty"`
	Material             string `json:"material,omitempty"`
	VisualCharacteristic string `json:"visual_characteristic,omitempty"`
	StoneDimensions      string `json:"stone_dimensions,omitempty"`
	StoneGrade           string `json:"stone_grade,omitempty"`

	// Type-specific attributes
	NecklaceLength      NecklaceLength `json:"necklace_length,omitempty"`
	NecklaceLengthValue string         `json:"necklace_length_value,omitempty"`
	ClaspType           string         `json:"clasp_type,omitempty"`
	ChainMaterial       string         `json:"chain_material,omitempty"`
	HookType            string         `json:"hook_type,omitempty"`
	EarringLength       string         `json:"earring_length,omitempty"`

	// Staging choices
	StagingProps   []string `json:"staging_props,omitempty"`
	StagingSurface string   `json:"staging_surface,omitempty"`
	LightingMood   string   `json:"lighting_mood,omitempty"`
	StagingLayout  string   `json:"staging_layout,omitempty"`

	// White-background choices
	WhiteBgAngle   string `json:"white_bg_angle,omitempty"`
	WhiteBgFraming string `json:"white_bg_framing,omitempty"`
	WhiteBgShadow  string `json:"white_bg_shadow,omitempty"`

	// Model-shot choices
	ModelSkinTone   string `json:"model_skin_tone,omitempty"`
	ModelClothing   string `json:"model_clothing,omitempty"`
	ModelShotType   string `json:"model_shot_type,omitempty"`
	ModelBackground string `json:"model_background,omitempty"`
	ModelLighting   string `json:"model_lighting,omitempty"`

	// Free text
	AccentDetail string `json:"accent_detail,omitempty"`
	IdealWear    string `json:"ideal_wear,omitempty"`
	CharmDetails string `json:"charm_details,omitempty"`
}

// DefaultProductDetails returns the form defaults a new product starts with.
func DefaultProductDetails() ProductDetails {
	return ProductDetails{Type: JewelryNecklace}
}
