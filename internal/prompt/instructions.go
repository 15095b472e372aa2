// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package prompt

import "jewelstudio/internal/models"

// choice pairs one form value with the instruction sentence it expands to.
type choice struct {
	Value       string
	Instruction string
}

// instructionTable maps the values of one stylistic form field to prompt
// sentences. Unset or unknown values resolve to fallback, so lookups never
// fail. The wording is tuned against the generation model: change it here
// and nowhere else.
type instructionTable struct {
	field    string
	choices  []choice
	fallback string
}

func (t instructionTable) lookup(value string) string {
	for _, c := range t.choices {
		if c.Value == value {
			return c.Instruction
		}
	}
	return t.fallback
}

// values lists the accepted form values in display order.
func (t instructionTable) values() []string {
	out := make([]string, 0, len(t.choices))
	for _, c := range t.choices {
		out = append(out, c.Value)
	}
	return out
}

// --- Staging ---

var surfaceTable = instructionTable{
	field: "staging_surface",
	choices: []choice{
		{"Marble", "Place the jewelry on a polished white marble surface with subtle grey veining."},
		{"Velvet", "Place the jewelry on a rich, deep-toned velvet surface that absorbs light and makes the metal glow."},
		{"Wood", "Place the jewelry on a warm, natural wood surface with a fine visible grain."},
		{"Linen", "Place the jewelry on soft, lightly textured natural linen fabric."},
		{"Sand", "Place the jewelry on smooth, fine beach sand with gentle natural ripples."},
		{"Stone", "Place the jewelry on a dark slate stone surface with a matte, organic texture."},
		{"Mirror", "Place the jewelry on a clean mirrored surface that creates a soft, symmetrical reflection."},
	},
	fallback: "Place the jewelry on a clean, neutral surface that complements the piece without distracting from it.",
}

var lightingMoodTable = instructionTable{
	field: "lighting_mood",
	choices: []choice{
		{"Soft & Even", "Use soft, even, diffused lighting with no harsh shadows so every detail of the piece is clearly visible."},
		{"Warm Golden Hour", "Use warm golden-hour lighting with a gentle glow and long, soft shadows."},
		{"Dramatic Spotlight", "Use a single dramatic spotlight on the piece with a darker falloff around it to create contrast and sparkle."},
		{"Bright & Airy", "Use bright, airy, high-key lighting that feels fresh and clean."},
		{"Moody Low-Key", "Use moody low-key lighting with deep shadows and controlled highlights on the metal and stones."},
	},
	fallback: "Use soft, even, diffused lighting with no harsh shadows so every detail of the piece is clearly visible.",
}

var stagingLayoutTable = instructionTable{
	field: "staging_layout",
	choices: []choice{
		{"Centered Hero", "Center the piece in the frame as the clear hero of the composition with generous negative space."},
		{"Flat Lay", "Arrange the scene as a flat lay photographed directly from above."},
		{"Angled Close-Up", "Photograph the piece from a low three-quarter angle, close enough to show craftsmanship details."},
		{"Draped", "Drape the piece naturally across the surface or a prop so it falls in a graceful, organic line."},
		{"Rule of Thirds", "Place the piece on a rule-of-thirds intersection, balancing it against the props in the scene."},
	},
	fallback: "Center the piece in the frame as the clear hero of the composition.",
}

// --- White background ---

var whiteBgAngleTable = instructionTable{
	field: "white_bg_angle",
	choices: []choice{
		{"Front View", "Photograph the piece straight on from the front."},
		{"45 Degree", "Photograph the piece from a 45-degree angle to show depth and dimension."},
		{"Top-Down", "Photograph the piece from directly above."},
		{"Side Profile", "Photograph the piece in side profile to show its thickness and setting height."},
	},
	fallback: "Photograph the piece straight on from the front.",
}

var whiteBgFramingTable = instructionTable{
	field: "white_bg_framing",
	choices: []choice{
		{"Full Piece", "Show the entire piece in frame with even margins on all sides."},
		{"Close-Up Detail", "Frame tightly on the most detailed part of the piece, such as the main stone or setting."},
		{"Wide with Padding", "Keep the piece small and centered with wide white padding around it, suitable for marketplace thumbnails."},
	},
	fallback: "Show the entire piece in frame with even margins on all sides.",
}

var whiteBgShadowTable = instructionTable{
	field: "white_bg_shadow",
	choices: []choice{
		{"No Shadow", "No shadow, pure white background."},
		{"Soft Drop Shadow", "Add a soft, natural drop shadow directly beneath the piece on the pure white background."},
		{"Reflection", "Add a subtle mirror reflection beneath the piece on the pure white background."},
	},
	fallback: "No shadow, pure white background.",
}

// --- Model shots ---

var skinToneTable = instructionTable{
	field: "model_skin_tone",
	choices: []choice{
		{"Fair", "The model has fair skin with cool undertones."},
		{"Light", "The model has light skin with warm undertones."},
		{"Medium", "The model has medium skin with neutral undertones."},
		{"Olive", "The model has olive skin with golden undertones."},
		{"Tan", "The model has tan, sun-kissed skin."},
		{"Deep", "The model has deep, rich brown skin."},
	},
	fallback: "The model has a natural, healthy skin tone.",
}

var clothingTable = instructionTable{
	field: "model_clothing",
	choices: []choice{
		{"Black Top", "The model wears a simple black top that makes the jewelry stand out."},
		{"White Top", "The model wears a clean white top."},
		{"Neutral Knit", "The model wears a soft knit in a neutral beige or cream tone."},
		{"Evening Wear", "The model wears elegant evening wear with a refined neckline."},
		{"Bare Shoulders", "The model has bare shoulders with no visible clothing near the neckline."},
	},
	fallback: "The model wears simple, neutral clothing that does not compete with the jewelry.",
}

var shotTypeTable = instructionTable{
	field: "model_shot_type",
	choices: []choice{
		{"Close-Up", "Frame a close-up that focuses on the jewelry where it is worn."},
		{"Portrait", "Frame a head-and-shoulders portrait with the jewelry clearly visible."},
		{"Half Body", "Frame a half-body shot that shows how the jewelry fits the overall look."},
	},
	fallback: "Frame a close-up that focuses on the jewelry where it is worn.",
}

var modelBackgroundTable = instructionTable{
	field: "model_background",
	choices: []choice{
		{"Studio Grey", "Use a seamless mid-grey studio backdrop."},
		{"Soft Beige", "Use a soft beige studio backdrop."},
		{"Outdoor Blur", "Use a softly blurred outdoor background with natural greenery."},
		{"Luxury Interior", "Use a softly blurred luxury interior in the background."},
	},
	fallback: "Use a clean, softly blurred neutral background.",
}

var modelLightingTable = instructionTable{
	field: "model_lighting",
	choices: []choice{
		{"Soft Studio", "Light the model with soft, flattering studio light."},
		{"Natural Daylight", "Light the model with natural window daylight."},
		{"Golden Hour", "Light the model with warm golden-hour sunlight."},
		{"High Contrast", "Light the model with high-contrast editorial lighting."},
	},
	fallback: "Light the model with soft, flattering studio light.",
}

// --- Necklace length ---

var necklaceLengthTable = instructionTable{
	field: "necklace_length",
	choices: []choice{
		{string(models.NecklaceCollar), "The necklace should sit tightly around the middle of the neck (12-13 inches)."},
		{string(models.NecklaceChoker), "The necklace should sit at the base of the neck (14-16 inches)."},
		{string(models.NecklacePrincess), "The necklace should rest just below the collarbone (17-19 inches)."},
		{string(models.NecklaceMatinee), "The necklace should fall between the collarbone and the bust (20-24 inches)."},
		{string(models.NecklaceOpera), "The necklace should hang at or just below the bust (28-36 inches)."},
		{string(models.NecklaceRope), "The necklace should hang long, below the bust, and may be doubled (37 inches or longer)."},
	},
	fallback: "The necklace should sit at a natural, flattering length for the piece.",
}

// styleTables lists every stylistic field table exposed to the form.
var styleTables = []instructionTable{
	surfaceTable, lightingMoodTable, stagingLayoutTable,
	whiteBgAngleTable, whiteBgFramingTable, whiteBgShadowTable,
	skinToneTable, clothingTable, shotTypeTable, modelBackgroundTable, modelLightingTable,
}

// Choices returns the accepted values of every stylistic form field keyed
// by the field's JSON name, plus the necklace length scale.
func Choices() map[string][]string {
	out := make(map[string][]string, len(styleTables)+1)
	for _, t := range styleTables {
		out[t.field] = t.values()
	}
	out[necklaceLengthTable.field] = necklaceLengthTable.values()
	return out
}
