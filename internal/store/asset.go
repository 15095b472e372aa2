// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"jewelstudio/internal/models"
)

// AssetStore handles saved generated assets.
type AssetStore struct {
	db *sql.DB
}

// NewAssetStore creates a new AssetStore with the given database connection.
func NewAssetStore(db *sql.DB) *AssetStore {
	return &AssetStore{db: db}
}

const assetColumns = `id, item_id, asset_type, content_type, size_bytes, s3_key, text_content, created_at`

func scanAsset(scanner interface{ Scan(...any) error }) (*models.AssetRecord, error) {
	var a models.AssetRecord
	err := scanner.Scan(
		&a.ID, &a.ItemID, &a.AssetType, &a.ContentType, &a.SizeBytes,
		&a.S3Key, &a.Text, &a.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new asset record and returns it with the generated ID.
func (s *AssetStore) Create(ctx context.Context, a *models.AssetRecord) (*models.AssetRecord, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO item_assets (id, item_id, asset_type, content_type, size_bytes, s3_key, text_content)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+assetColumns,
		a.ID, a.ItemID, string(a.AssetType), a.ContentType, a.SizeBytes, a.S3Key, a.Text,
	)
	created, err := scanAsset(row)
	if err != nil {
		return nil, fmt.Errorf("create asset: %w", err)
	}
	return created, nil
}

// FindByID retrieves one asset of an item. Returns (nil, nil) when the
// asset does not exist or belongs to another item.
func (s *AssetStore) FindByID(ctx context.Context, itemID, id uuid.UUID) (*models.AssetRecord, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+assetColumns+` FROM item_assets WHERE id = $1 AND item_id = $2`, id, itemID)
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find asset by id: %w", err)
	}
	return a, nil
}

// ListByItem returns all assets of an item, newest first.
func (s *AssetStore) ListByItem(ctx context.Context, itemID uuid.UUID) ([]models.AssetRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+assetColumns+`
		FROM item_assets
		WHERE item_id = $1
		ORDER BY created_at DESC
	`, itemID)
	if err != nil {
		return nil, fmt.Errorf("list assets: %w", err)
	}
	defer rows.Close()

	assets := make([]models.AssetRecord, 0)
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, fmt.Errorf("scan asset: %w", err)
		}
		assets = append(assets, *a)
	}
	return assets, rows.Err()
}

// Delete removes an asset record and returns it so the caller can clean
// up the stored object. Returns (nil, nil) when nothing matched.
func (s *AssetStore) Delete(ctx context.Context, itemID, id uuid.UUID) (*models.AssetRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		DELETE FROM item_assets WHERE id = $1 AND item_id = $2
		RETURNING `+assetColumns, id, itemID)
	a, err := scanAsset(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("delete asset: %w", err)
	}
	return a, nil
}
