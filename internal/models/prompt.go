// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import "time"

// TemplateKey identifies one prompt template in the template store.
type TemplateKey string

const (
	KeyStaging             TemplateKey = "STAGING"
	KeyModelNecklace       TemplateKey = "MODEL_NECKLACE"
	KeyModelEarrings       TemplateKey = "MODEL_EARRINGS"
	KeyModelRing           TemplateKey = "MODEL_RING"
	KeyWhiteBgGeneral      TemplateKey = "WHITE_BG_GENERAL"
	KeyWhiteBgEarrings     TemplateKey = "WHITE_BG_EARRINGS"
	KeyDescriptionNecklace TemplateKey = "DESCRIPTION_NECKLACE"
	KeyDescriptionEarrings TemplateKey = "DESCRIPTION_EARRINGS"
	KeySocial              TemplateKey = "SOCIAL"
)

// AllTemplateKeys returns every template key in settings-page order.
func AllTemplateKeys() []TemplateKey {
	return []TemplateKey{
		KeyStaging,
		KeyModelNecklace, KeyModelEarrings, KeyModelRing,
		KeyWhiteBgGeneral, KeyWhiteBgEarrings,
		KeyDescriptionNecklace, KeyDescriptionEarrings,
		KeySocial,
	}
}

// PromptOverride is a user-edited template body persisted in place of the
// factory default for its key.
type PromptOverride struct {
	Key       TemplateKey `json:"key"`
	Body      string      `json:"body"`
	UpdatedAt time.Time   `json:"updated_at"`
}
