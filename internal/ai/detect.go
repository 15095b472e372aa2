// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"fmt"
	"strings"

	"jewelstudio/internal/models"
)

const detectPrompt = `Look at the jewelry in this photo and classify it.
Answer with exactly one word from this list: Necklace, Earrings, Ring, Bracelet, Other.
Do not add any other text.`

// DetectJewelryType asks the active provider to classify the piece shown in
// img. The reply must be a single known type, or a sentence naming exactly
// one. Anything else is an error and callers keep their previous selection.
func (r *Registry) DetectJewelryType(ctx context.Context, img models.Image) (models.JewelryType, error) {
	answer, err := r.GenerateText(ctx, []models.Image{img}, detectPrompt)
	if err != nil {
		return "", fmt.Errorf("detect jewelry type: %w", err)
	}

	if t, ok := models.ParseJewelryType(answer); ok {
		return t, nil
	}

	// A sentence is accepted only when it names exactly one known type.
	var found models.JewelryType
	for _, word := range strings.Fields(answer) {
		t, ok := models.ParseJewelryType(word)
		if !ok || t == found {
			continue
		}
		if found != "" {
			return "", fmt.Errorf("detect jewelry type: ambiguous answer %q", strings.TrimSpace(answer))
		}
		found = t
	}
	if found != "" {
		return found, nil
	}

	return "", fmt.Errorf("detect jewelry type: unrecognised answer %q", strings.TrimSpace(answer))
}
