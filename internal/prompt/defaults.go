// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import "jewelstudio/internal/models"

const stagingTemplate = `Create a professional, high-end lifestyle product photo of the {{type}} shown in the reference image.
The jewelry must remain exactly the same object: keep its shape, proportions, {{material}} metal, {{stone}} stones and every detail unchanged.
{{surfaceInstruction}}
{{lightingInstruction}}
{{layoutInstruction}}
{{propsInstruction}}
{{typeSpecificInstruction}}
If a brand logo image is included after the product photos, place it subtly in the scene, for example embossed on a gift box or a small card, without covering the jewelry.
The result should look like a luxury jewelry brand campaign photo, sharp, realistic and free of any added text or watermarks.`

const modelNecklaceTemplate = `Create a photorealistic image of a fashion model wearing the necklace shown in the reference image.
The necklace must remain exactly the same piece: preserve its {{material}} chain, {{stone}} stones, {{shape}} shape and every design detail.
{{lengthDescription}}
{{skinToneInstruction}}
{{clothingInstruction}}
{{shotTypeInstruction}}
{{modelBackgroundInstruction}}
{{modelLightingInstruction}}
The necklace is the focal point of the image. Do not add other jewelry, text or watermarks.`

const modelEarringsTemplate = `Create a photorealistic image of a fashion model wearing the earrings shown in the reference image.
The earrings must remain exactly the same pair: preserve their {{material}} metal, {{stone}} stones, {{hookType}} fitting and {{earringLength}} drop length.
The model's hair is styled away from the ears so both earrings are clearly visible.
{{skinToneInstruction}}
{{clothingInstruction}}
{{shotTypeInstruction}}
{{modelBackgroundInstruction}}
{{modelLightingInstruction}}
The earrings are the focal point of the image. Do not add other jewelry, text or watermarks.`

const modelRingTemplate = `Create a photorealistic image of a model wearing the {{type}} shown in the reference image.
The piece must remain exactly the same: preserve its {{material}} metal, {{stone}} stones, {{shape}} shape and every design detail.
Pose the hand or wrist naturally and elegantly so the piece faces the camera.
{{skinToneInstruction}}
{{clothingInstruction}}
{{shotTypeInstruction}}
{{modelBackgroundInstruction}}
{{modelLightingInstruction}}
{{typeSpecificInstruction}}
The jewelry is the focal point of the image. Do not add other jewelry, text or watermarks.`

const whiteBgGeneralTemplate = `Create a clean e-commerce product photo of the {{type}} shown in the reference image on a pure white background (#FFFFFF).
The jewelry must remain exactly the same object: keep its shape, proportions, {{material}} metal, {{stone}} stones and every detail unchanged.
{{whiteBgAngleInstruction}}
{{whiteBgFramingInstruction}}
{{whiteBgShadowInstruction}}
{{typeSpecificInstruction}}
Use bright, even studio lighting that shows true metal color and stone clarity. No props, no text, no watermarks.`

const whiteBgEarringsTemplate = `Create a clean e-commerce product photo of the pair of earrings shown in the reference image on a pure white background (#FFFFFF).
Both earrings must remain exactly the same: keep their shape, {{material}} metal, {{stone}} stones and {{hookType}} fittings unchanged.
{{typeSpecificInstruction}}
{{whiteBgFramingInstruction}}
{{whiteBgShadowInstruction}}
Use bright, even studio lighting that shows true metal color and stone clarity. No props, no text, no watermarks.`

const descriptionNecklaceTemplate = `Write a compelling product description for an online jewelry store.

Product: {{name}}
Type: {{type}}
Material: {{material}}
Stone: {{stone}} ({{stoneGrade}}, {{stoneDimensions}})
Shape: {{shape}}
Visual character: {{visualCharacteristic}}
Length: {{necklaceLength}} {{necklaceLengthValue}}
Chain: {{chainMaterial}}
Clasp: {{claspType}}
Charms: {{charmDetails}}
Accent detail: {{accentDetail}}
Ideal for: {{idealWear}}

Use the reference image to describe what you see accurately. Write two short paragraphs in a warm, elegant tone, followed by a bullet list of key details. Skip any attribute that is empty. Do not invent certifications or prices.`

const descriptionEarringsTemplate = `Write a compelling product description for a pair of earrings in an online jewelry store.

Product: {{name}}
Material: {{material}}
Stone: {{stone}} ({{stoneGrade}}, {{stoneDimensions}})
Shape: {{shape}}
Visual character: {{visualCharacteristic}}
Fitting: {{hookType}}
Drop length: {{earringLength}}
Accent detail: {{accentDetail}}
Ideal for: {{idealWear}}

Use the reference image to describe what you see accurately. Write two short paragraphs in a warm, elegant tone, followed by a bullet list of key details. Skip any attribute that is empty. Do not invent certifications or prices.`

const socialTemplate = `Write an engaging Instagram post for the jewelry brand's new {{type}} "{{name}}".
Highlights: {{material}}, {{stone}}, {{visualCharacteristic}}. {{accentDetail}}
Ideal for: {{idealWear}}

Use the reference image for accurate details. Keep it under 120 words, open with a hook, use a warm aspirational voice, add a short call to action and finish with 8 to 12 relevant hashtags.`

// defaultTemplates are the factory templates. A template may only
// reference variables that VariablesFor supplies for its key.
var defaultTemplates = map[models.TemplateKey]string{
	models.KeyStaging:             stagingTemplate,
	models.KeyModelNecklace:       modelNecklaceTemplate,
	models.KeyModelEarrings:       modelEarringsTemplate,
	models.KeyModelRing:           modelRingTemplate,
	models.KeyWhiteBgGeneral:      whiteBgGeneralTemplate,
	models.KeyWhiteBgEarrings:     whiteBgEarringsTemplate,
	models.KeyDescriptionNecklace: descriptionNecklaceTemplate,
	models.KeyDescriptionEarrings: descriptionEarringsTemplate,
	models.KeySocial:              socialTemplate,
}

// DefaultTemplates returns a copy of the factory templates.
func DefaultTemplates() map[models.TemplateKey]string {
	out := make(map[models.TemplateKey]string, len(defaultTemplates))
	for k, v := range defaultTemplates {
		out[k] = v
	}
	return out
}
