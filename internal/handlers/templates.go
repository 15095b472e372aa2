// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"jewelstudio/internal/models"
	"jewelstudio/internal/prompt"
)

// ListTemplates returns every template with its effective and factory body.
func (s *Studio) ListTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"templates": s.templates.Entries()})
}

// UpdateTemplate stores an edited body for one key. Saving the factory body
// clears the override.
func (s *Studio) UpdateTemplate(w http.ResponseWriter, r *http.Request) {
	key := models.TemplateKey(chi.URLParam(r, "key"))

	var req struct {
		Body string `json:"body"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if msg := validateTemplateBody(req.Body); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := s.templates.Set(r.Context(), key, req.Body); err != nil {
		s.writeTemplateError(w, key, err)
		return
	}
	slog.Info("prompt template updated", "key", key)
	s.writeEntry(w, key)
}

// ResetTemplate restores the factory body of one key.
func (s *Studio) ResetTemplate(w http.ResponseWriter, r *http.Request) {
	key := models.TemplateKey(chi.URLParam(r, "key"))
	if err := s.templates.Reset(r.Context(), key); err != nil {
		s.writeTemplateError(w, key, err)
		return
	}
	slog.Info("prompt template reset", "key", key)
	s.writeEntry(w, key)
}

// ResetAllTemplates restores every factory body.
func (s *Studio) ResetAllTemplates(w http.ResponseWriter, r *http.Request) {
	if err := s.templates.ResetAll(r.Context()); err != nil {
		slog.Error("reset all templates failed", "error", err)
		writeError(w, http.StatusInternalServerError, "could not reset templates")
		return
	}
	slog.Info("all prompt templates reset")
	s.ListTemplates(w, r)
}

func (s *Studio) writeEntry(w http.ResponseWriter, key models.TemplateKey) {
	for _, e := range s.templates.Entries() {
		if e.Key == key {
			writeJSON(w, http.StatusOK, e)
			return
		}
	}
	writeError(w, http.StatusNotFound, "unknown template key")
}

func (s *Studio) writeTemplateError(w http.ResponseWriter, key models.TemplateKey, err error) {
	if errors.Is(err, prompt.ErrTemplateNotFound) {
		writeError(w, http.StatusNotFound, "unknown template key")
		return
	}
	slog.Error("template update failed", "key", key, "error", err)
	writeError(w, http.StatusInternalServerError, "could not save the template")
}
