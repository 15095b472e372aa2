// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import "jewelstudio/internal/models"

// SelectTemplateKey picks the template for an asset type and jewelry type.
// It is total: jewelry types without a dedicated template fall back to the
// general family member, so a new jewelry type degrades instead of failing.
func SelectTemplateKey(assetType models.AssetType, jewelryType models.JewelryType) models.TemplateKey {
	switch assetType {
	case models.AssetStaging:
		return models.KeyStaging
	case models.AssetModel:
		switch jewelryType {
		case models.JewelryNecklace:
			return models.KeyModelNecklace
		case models.JewelryEarrings:
			return models.KeyModelEarrings
		default:
			return models.KeyModelRing
		}
	case models.AssetWhiteBg:
		if jewelryType == models.JewelryEarrings {
			return models.KeyWhiteBgEarrings
		}
		return models.KeyWhiteBgGeneral
	case models.AssetDescription:
		if jewelryType == models.JewelryEarrings {
			return models.KeyDescriptionEarrings
		}
		return models.KeyDescriptionNecklace
	case models.AssetSocialPost:
		return models.KeySocial
	}
	return models.KeyStaging
}

// TemplateKeyFamily lists every key an asset type can resolve to.
func TemplateKeyFamily(assetType models.AssetType) []models.TemplateKey {
	seen := make(map[models.TemplateKey]bool)
	var out []models.TemplateKey
	for _, jt := range models.AllJewelryTypes() {
		k := SelectTemplateKey(assetType, jt)
		if !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}
