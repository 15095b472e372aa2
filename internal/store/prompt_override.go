// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"fmt"

	"jewelstudio/internal/models"
)

// PromptOverrideStore persists user edits of the factory prompt templates.
// It implements prompt.Persister.
type PromptOverrideStore struct {
	db *sql.DB
}

// NewPromptOverrideStore creates a new PromptOverrideStore.
func NewPromptOverrideStore(db *sql.DB) *PromptOverrideStore {
	return &PromptOverrideStore{db: db}
}

// LoadOverrides returns every stored override keyed by template key.
func (s *PromptOverrideStore) LoadOverrides(ctx context.Context) (map[models.TemplateKey]string, error) {
	list, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[models.TemplateKey]string, len(list))
	for _, o := range list {
		out[o.Key] = o.Body
	}
	return out, nil
}

// List returns every stored override ordered by key.
func (s *PromptOverrideStore) List(ctx context.Context) ([]models.PromptOverride, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, body, updated_at FROM prompt_overrides ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list prompt overrides: %w", err)
	}
	defer rows.Close()

	var list []models.PromptOverride
	for rows.Next() {
		var o models.PromptOverride
		if err := rows.Scan(&o.Key, &o.Body, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan prompt override: %w", err)
		}
		list = append(list, o)
	}
	return list, rows.Err()
}

// SaveOverride inserts or replaces the override for key.
func (s *PromptOverrideStore) SaveOverride(ctx context.Context, key models.TemplateKey, body string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO prompt_overrides (key, body, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET body = EXCLUDED.body, updated_at = now()
	`, string(key), body)
	if err != nil {
		return fmt.Errorf("save prompt override: %w", err)
	}
	return nil
}

// DeleteOverride removes the override for key. Deleting a missing key is
// not an error.
func (s *PromptOverrideStore) DeleteOverride(ctx context.Context, key models.TemplateKey) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM prompt_overrides WHERE key = $1`, string(key)); err != nil {
		return fmt.Errorf("delete prompt override: %w", err)
	}
	return nil
}

// DeleteAllOverrides removes every override.
func (s *PromptOverrideStore) DeleteAllOverrides(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM prompt_overrides`); err != nil {
		return fmt.Errorf("delete prompt overrides: %w", err)
	}
	return nil
}
