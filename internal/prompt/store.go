// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package prompt assembles the natural-language prompts sent to the
// generation backend. It holds the template store (factory defaults plus
// user overrides), the placeholder renderer, template-key selection, and
// the instruction tables that turn form choices into prompt sentences.
package prompt

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"jewelstudio/internal/models"
)

// ErrTemplateNotFound is returned when a key has no template. Key selection
// is total over the factory keys, so this indicates a programming error.
var ErrTemplateNotFound = errors.New("prompt: template not found")

// Persister stores user overrides of the factory templates.
type Persister interface {
	LoadOverrides(ctx context.Context) (map[models.TemplateKey]string, error)
	SaveOverride(ctx context.Context, key models.TemplateKey, body string) error
	DeleteOverride(ctx context.Context, key models.TemplateKey) error
	DeleteAllOverrides(ctx context.Context) error
}

// Entry describes one template as shown on the settings surface.
type Entry struct {
	Key        models.TemplateKey `json:"key"`
	Body       string             `json:"body"`
	Default    string             `json:"default"`
	Customized bool               `json:"customized"`
}

// Store holds the effective template for every key. Its lifecycle is
// NewStore (factory defaults) -> Load (merge persisted overrides) ->
// Set/Reset as the user edits. All methods are safe for concurrent use.
type Store struct {
	mu        sync.RWMutex
	defaults  map[models.TemplateKey]string
	overrides map[models.TemplateKey]string
	persister Persister // nil keeps overrides in memory only
}

// NewStore creates a store holding the factory templates.
func NewStore(p Persister) *Store {
	return &Store{
		defaults:  DefaultTemplates(),
		overrides: make(map[models.TemplateKey]string),
		persister: p,
	}
}

// Load merges persisted overrides over the factory defaults. Overrides for
// unknown keys are skipped.
func (s *Store) Load(ctx context.Context) error {
	if s.persister == nil {
		return nil
	}

	stored, err := s.persister.LoadOverrides(ctx)
	if err != nil {
		return fmt.Errorf("load prompt overrides: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.overrides = make(map[models.TemplateKey]string, len(stored))
	for key, body := range stored {
		if _, ok := s.defaults[key]; !ok {
			slog.Warn("ignoring override for unknown prompt template", "key", key)
			continue
		}
		s.overrides[key] = body
	}

	slog.Info("prompt templates loaded", "overrides", len(s.overrides))
	return nil
}

// Get returns the effective template body for key.
func (s *Store) Get(key models.TemplateKey) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if body, ok := s.overrides[key]; ok {
		return body, nil
	}
	if body, ok := s.defaults[key]; ok {
		return body, nil
	}
	return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
}

// Render renders the effective template for key with vars.
func (s *Store) Render(key models.TemplateKey, vars map[string]string) (string, error) {
	tmpl, err := s.Get(key)
	if err != nil {
		return "", err
	}
	return Render(tmpl, vars), nil
}

// Set replaces the template for key and persists the override. Setting a
// body identical to the factory default clears the override instead.
func (s *Store) Set(ctx context.Context, key models.TemplateKey, body string) error {
	s.mu.RLock()
	def, ok := s.defaults[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}
	if body == def {
		return s.Reset(ctx, key)
	}

	if s.persister != nil {
		if err := s.persister.SaveOverride(ctx, key, body); err != nil {
			return fmt.Errorf("save prompt override %s: %w", key, err)
		}
	}

	s.mu.Lock()
	s.overrides[key] = body
	s.mu.Unlock()
	return nil
}

// Reset restores the factory template for key.
func (s *Store) Reset(ctx context.Context, key models.TemplateKey) error {
	s.mu.RLock()
	_, ok := s.defaults[key]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("%w: %s", ErrTemplateNotFound, key)
	}

	if s.persister != nil {
		if err := s.persister.DeleteOverride(ctx, key); err != nil {
			return fmt.Errorf("delete prompt override %s: %w", key, err)
		}
	}

	s.mu.Lock()
	delete(s.overrides, key)
	s.mu.Unlock()
	return nil
}

// ResetAll restores every factory template.
func (s *Store) ResetAll(ctx context.Context) error {
	if s.persister != nil {
		if err := s.persister.DeleteAllOverrides(ctx); err != nil {
			return fmt.Errorf("delete prompt overrides: %w", err)
		}
	}

	s.mu.Lock()
	s.overrides = make(map[models.TemplateKey]string)
	s.mu.Unlock()
	return nil
}

// Entries lists every template in key order.
func (s *Store) Entries() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	order := make(map[models.TemplateKey]int)
	for i, k := range models.AllTemplateKeys() {
		order[k] = i
	}

	entries := make([]Entry, 0, len(s.defaults))
	for key, def := range s.defaults {
		e := Entry{Key: key, Body: def, Default: def}
		if body, ok := s.overrides[key]; ok {
			e.Body = body
			e.Customized = true
		}
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return order[entries[i].Key] < order[entries[j].Key]
	})
	return entries
}
