// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"jewelstudio/internal/models"
)

// SampleItemName is the name of the catalog item created by Seed.
const SampleItemName = "Aurora Sapphire Pendant"

// Seed populates the database with initial development data.
// It creates one sample catalog item if the catalog is empty.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count); err != nil {
		return fmt.Errorf("seed check items: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	details := models.ProductDetails{
		Name:                 SampleItemName,
		Type:                 models.JewelryNecklace,
		Stone:                "Sapphire",
		Shape:                "Oval",
		Material:             "18k Yellow Gold",
		VisualCharacteristic: "Deep blue with a soft inner glow",
		StoneDimensions:      "8x6 mm",
		StoneGrade:           "AAA",
		NecklaceLength:       models.NecklacePrincess,
		ClaspType:            "Lobster",
		ChainMaterial:        "Cable chain",
		StagingProps:         []string{"Gift Box"},
		StagingSurface:       "Marble",
		LightingMood:         "Soft & Even",
		AccentDetail:         "Hand-set diamond bail",
		IdealWear:            "Evening events and gifting",
	}

	raw, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("seed marshal details: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO items (id, name, type, details)
		VALUES ($1, $2, $3, $4)
	`, uuid.New(), details.Name, string(details.Type), raw)
	if err != nil {
		return fmt.Errorf("seed insert item: %w", err)
	}

	slog.Info("database seeded with sample item", "name", SampleItemName)
	return nil
}
