// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import (
	"fmt"
	"strings"

	"jewelstudio/internal/models"
)

const (
	earringsInstruction = "Lay the earrings flat side by side and photograph them from an aerial viewpoint, showing both pieces as a matching pair."
	noLengthInstruction = "Keep the piece exactly as it appears in the reference photo and do not add any lengths to the piece."
)

// DeriveVariables expands product details into the variable set every
// template may reference: the raw form fields plus one instruction
// sentence per stylistic choice. Every key is always present, possibly
// with an empty value, so rendering never depends on which fields were
// filled in.
func DeriveVariables(d models.ProductDetails) map[string]string {
	jewelryType := d.Type
	if jewelryType == "" {
		jewelryType = models.JewelryOther
	}

	vars := map[string]string{
		"name":                 d.Name,
		"type":                 jewelryType.Lower(),
		"stone":                d.Stone,
		"shape":                d.Shape,
		"material":             d.Material,
		"visualCharacteristic": d.VisualCharacteristic,
		"stoneDimensions":      d.StoneDimensions,
		"stoneGrade":           d.StoneGrade,
		"necklaceLength":       string(d.NecklaceLength),
		"necklaceLengthValue":  d.NecklaceLengthValue,
		"claspType":            d.ClaspType,
		"chainMaterial":        d.ChainMaterial,
		"hookType":             d.HookType,
		"earringLength":        d.EarringLength,
		"stagingProps":         strings.Join(cleanProps(d.StagingProps), ", "),
		"stagingSurface":       d.StagingSurface,
		"lightingMood":         d.LightingMood,
		"stagingLayout":        d.StagingLayout,
		"whiteBgAngle":         d.WhiteBgAngle,
		"whiteBgFraming":       d.WhiteBgFraming,
		"whiteBgShadow":        d.WhiteBgShadow,
		"modelSkinTone":        d.ModelSkinTone,
		"modelClothing":        d.ModelClothing,
		"modelShotType":        d.ModelShotType,
		"modelBackground":      d.ModelBackground,
		"modelLighting":        d.ModelLighting,
		"accentDetail":         d.AccentDetail,
		"idealWear":            d.IdealWear,
		"charmDetails":         d.CharmDetails,

		"propsInstruction":           propsInstruction(d.StagingProps, jewelryType),
		"typeSpecificInstruction":    typeSpecificInstruction(jewelryType),
		"surfaceInstruction":         surfaceTable.lookup(d.StagingSurface),
		"lightingInstruction":        lightingMoodTable.lookup(d.LightingMood),
		"layoutInstruction":          stagingLayoutTable.lookup(d.StagingLayout),
		"whiteBgAngleInstruction":    whiteBgAngleTable.lookup(d.WhiteBgAngle),
		"whiteBgFramingInstruction":  whiteBgFramingTable.lookup(d.WhiteBgFraming),
		"whiteBgShadowInstruction":   whiteBgShadowTable.lookup(d.WhiteBgShadow),
		"skinToneInstruction":        skinToneTable.lookup(d.ModelSkinTone),
		"clothingInstruction":        clothingTable.lookup(d.ModelClothing),
		"shotTypeInstruction":        shotTypeTable.lookup(d.ModelShotType),
		"modelBackgroundInstruction": modelBackgroundTable.lookup(d.ModelBackground),
		"modelLightingInstruction":   modelLightingTable.lookup(d.ModelLighting),
	}

	return vars
}

// VariablesFor returns DeriveVariables plus the key-specific variables.
// lengthDescription only exists for the necklace model template.
func VariablesFor(key models.TemplateKey, d models.ProductDetails) map[string]string {
	vars := DeriveVariables(d)
	if key == models.KeyModelNecklace {
		vars["lengthDescription"] = lengthDescription(d)
	}
	return vars
}

func propsInstruction(props []string, jewelryType models.JewelryType) string {
	props = cleanProps(props)
	if len(props) == 0 {
		return ""
	}
	return fmt.Sprintf("Add props such as %s that accent the %s.", strings.Join(props, ", "), jewelryType.Lower())
}

func typeSpecificInstruction(jewelryType models.JewelryType) string {
	if jewelryType == models.JewelryEarrings {
		return earringsInstruction
	}
	return noLengthInstruction
}

// lengthDescription prefers the standard length scale; a free-text length
// is used only when no scale value was chosen.
func lengthDescription(d models.ProductDetails) string {
	if d.NecklaceLength == "" {
		if v := strings.TrimSpace(d.NecklaceLengthValue); v != "" {
			return fmt.Sprintf("The necklace should be %s long.", v)
		}
	}
	return necklaceLengthTable.lookup(string(d.NecklaceLength))
}

func cleanProps(props []string) []string {
	out := make([]string, 0, len(props))
	for _, p := range props {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
