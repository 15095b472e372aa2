// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"strings"
	"unicode/utf8"

	"jewelstudio/internal/models"
)

// Validation limits for product details and template bodies.
const (
	maxNameLen         = 200
	maxFreeTextLen     = 2_000
	maxStagingProps    = 10
	maxTemplateBodyLen = 20_000
)

// normalizeDetails canonicalises the jewelry type and checks field
// lengths. An empty type means the form default.
func normalizeDetails(d models.ProductDetails) (models.ProductDetails, error) {
	d.Name = strings.TrimSpace(d.Name)
	if utf8.RuneCountInString(d.Name) > maxNameLen {
		return d, badUpload("name is too long (max 200 characters)")
	}

	if strings.TrimSpace(string(d.Type)) == "" {
		d.Type = models.DefaultProductDetails().Type
	} else {
		t, ok := models.ParseJewelryType(string(d.Type))
		if !ok {
			return d, badUpload("unknown jewelry type %q", d.Type)
		}
		d.Type = t
	}

	for _, f := range []string{d.AccentDetail, d.IdealWear, d.CharmDetails, d.VisualCharacteristic} {
		if utf8.RuneCountInString(f) > maxFreeTextLen {
			return d, badUpload("free-text fields are limited to 2,000 characters")
		}
	}
	if len(d.StagingProps) > maxStagingProps {
		return d, badUpload("at most 10 staging props can be selected")
	}
	return d, nil
}

// validateItemDetails additionally requires a name, which catalog items
// are listed by.
func validateItemDetails(d models.ProductDetails) (models.ProductDetails, string) {
	d, err := normalizeDetails(d)
	if err != nil {
		return d, uploadMessage(err)
	}
	if d.Name == "" {
		return d, "name is required"
	}
	return d, ""
}

// validateTemplateBody checks an edited template body and returns the
// first problem found, or "".
func validateTemplateBody(body string) string {
	if strings.TrimSpace(body) == "" {
		return "template body is required"
	}
	if utf8.RuneCountInString(body) > maxTemplateBodyLen {
		return "template body is too long (max 20,000 characters)"
	}
	return ""
}
