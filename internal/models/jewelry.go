// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain types shared by the prompt engine,
// the generation orchestrator, the stores, and the HTTP handlers.
package models

import "strings"

// JewelryType is the closed set of jewelry categories the studio knows how
// to prompt for. Template selection branches on it.
type JewelryType string

const (
	JewelryNecklace JewelryType = "Necklace"
	JewelryEarrings JewelryType = "Earrings"
	JewelryRing     JewelryType = "Ring"
	JewelryBracelet JewelryType = "Bracelet"
	JewelryOther    JewelryType = "Other"
)

// AllJewelryTypes returns every jewelry type in declaration order.
func AllJewelryTypes() []JewelryType {
	return []JewelryType{JewelryNecklace, JewelryEarrings, JewelryRing, JewelryBracelet, JewelryOther}
}

// ParseJewelryType matches s against the known jewelry types, ignoring case,
// surrounding whitespace and trailing punctuation (model replies often end
// with a period). Plural and singular forms are both accepted.
func ParseJewelryType(s string) (JewelryType, bool) {
	s = strings.ToLower(strings.Trim(strings.TrimSpace(s), ".,!\"'` "))
	switch s {
	case "necklace", "necklaces", "pendant":
		return JewelryNecklace, true
	case "earrings", "earring":
		return JewelryEarrings, true
	case "ring", "rings":
		return JewelryRing, true
	case "bracelet", "bracelets", "bangle":
		return JewelryBracelet, true
	case "other":
		return JewelryOther, true
	}
	return "", false
}

// Lower returns the lowercased display name used inside prompt sentences.
func (t JewelryType) Lower() string {
	return strings.ToLower(string(t))
}

// NecklaceLength is the standard necklace length scale. Values are the
// display strings the form submits.
type NecklaceLength string

const (
	NecklaceCollar   NecklaceLength = "Collar (12-13\")"
	NecklaceChoker   NecklaceLength = "Choker (14-16\")"
	NecklacePrincess NecklaceLength = "Princess (17-19\")"
	NecklaceMatinee  NecklaceLength = "Matinee (20-24\")"
	NecklaceOpera    NecklaceLength = "Opera (28-36\")"
	NecklaceRope     NecklaceLength = "Rope (37\"+)"
)

// AllNecklaceLengths returns the length scale from shortest to longest.
func AllNecklaceLengths() []NecklaceLength {
	return []NecklaceLength{NecklaceCollar, NecklaceChoker, NecklacePrincess, NecklaceMatinee, NecklaceOpera, NecklaceRope}
}
