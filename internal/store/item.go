// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"jewelstudio/internal/models"
)

// ItemStore handles all catalog item database operations.
type ItemStore struct {
	db *sql.DB
}

// NewItemStore creates a new ItemStore with the given database connection.
func NewItemStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db}
}

// itemColumns lists the columns selected in item queries.
const itemColumns = `id, name, type, details, created_at, updated_at`

// scanItem scans an item row from the result set.
func scanItem(scanner interface{ Scan(...any) error }) (*models.Item, error) {
	var (
		it      models.Item
		details []byte
	)
	if err := scanner.Scan(&it.ID, &it.Name, &it.Type, &details, &it.CreatedAt, &it.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(details, &it.Details); err != nil {
		return nil, fmt.Errorf("decode item details: %w", err)
	}
	return &it, nil
}

// Create inserts a new item and returns it with the generated ID and
// timestamps. The item name and type are taken from its details.
func (s *ItemStore) Create(ctx context.Context, details models.ProductDetails) (*models.Item, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("create item: encode details: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		INSERT INTO items (id, name, type, details)
		VALUES ($1, $2, $3, $4)
		RETURNING `+itemColumns,
		uuid.New(), details.Name, itemType(details), raw,
	)
	it, err := scanItem(row)
	if err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return it, nil
}

// Update replaces the details of an existing item. Returns (nil, nil) when
// the item does not exist.
func (s *ItemStore) Update(ctx context.Context, id uuid.UUID, details models.ProductDetails) (*models.Item, error) {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil, fmt.Errorf("update item: encode details: %w", err)
	}

	row := s.db.QueryRowContext(ctx, `
		UPDATE items
		SET name = $2, type = $3, details = $4, updated_at = now()
		WHERE id = $1
		RETURNING `+itemColumns,
		id, details.Name, itemType(details), raw,
	)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update item: %w", err)
	}
	return it, nil
}

// FindByID retrieves a single item by its UUID. Returns (nil, nil) when
// no item matches.
func (s *ItemStore) FindByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = $1`, id)
	it, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find item by id: %w", err)
	}
	return it, nil
}

// List returns items ordered by creation date, newest first, with pagination.
func (s *ItemStore) List(ctx context.Context, limit, offset int) ([]models.Item, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM items
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := make([]models.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

// Delete removes an item. Its asset records are removed by the foreign key
// cascade; callers must clean up stored objects first. Returns false when
// the item did not exist.
func (s *ItemStore) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return n > 0, nil
}

// Count returns the total number of items.
func (s *ItemStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM items`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	return count, nil
}

func itemType(d models.ProductDetails) string {
	if d.Type == "" {
		return string(models.JewelryOther)
	}
	return string(d.Type)
}
