// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"jewelstudio/internal/models"
)

// ErrEmptyContent is returned when the backend answers successfully but
// the response carries no usable image or text.
var ErrEmptyContent = errors.New("ai: backend returned no content")

// ContentRequest is one generation call: reference images, the rendered
// prompt and the expected output modality.
type ContentRequest struct {
	Images   []models.Image
	Prompt   string
	Modality models.Modality
}

// ContentResult holds either ImageData+MimeType or Text, matching the
// request modality.
type ContentResult struct {
	ImageData []byte
	MimeType  string
	Text      string
}

// GenerateContent dispatches req to the active provider according to its
// modality. Image requests need a provider implementing ImageGenerator.
func (r *Registry) GenerateContent(ctx context.Context, req ContentRequest) (*ContentResult, error) {
	switch req.Modality {
	case models.ModalityImage:
		data, mimeType, err := r.GenerateImage(ctx, req.Images, req.Prompt)
		if err != nil {
			return nil, err
		}
		if len(data) == 0 {
			return nil, ErrEmptyContent
		}
		return &ContentResult{ImageData: data, MimeType: mimeType}, nil

	case models.ModalityText:
		text, err := r.GenerateText(ctx, req.Images, req.Prompt)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(text) == "" {
			return nil, ErrEmptyContent
		}
		return &ContentResult{Text: text}, nil
	}

	return nil, fmt.Errorf("ai: unknown output modality %q", req.Modality)
}
