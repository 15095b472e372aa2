// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
)

// Providers exposes runtime selection of the generation provider.
type Providers struct {
	registry ProviderSwitcher
}

// NewProviders creates the provider handler group.
func NewProviders(registry ProviderSwitcher) *Providers {
	return &Providers{registry: registry}
}

type providerResponse struct {
	Active    string   `json:"active"`
	Available []string `json:"available"`
}

func (p *Providers) current() providerResponse {
	available := p.registry.Available()
	sort.Strings(available)
	if available == nil {
		available = []string{}
	}
	return providerResponse{Active: p.registry.ActiveName(), Available: available}
}

// GetProvider reports the active provider and those with an API key.
func (p *Providers) GetProvider(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, p.current())
}

// SetProvider switches the active provider. Only providers with a
// configured API key can be selected.
func (p *Providers) SetProvider(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Provider string `json:"provider"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	name := strings.ToLower(strings.TrimSpace(body.Provider))
	if name == "" {
		writeError(w, http.StatusBadRequest, "provider is required")
		return
	}

	if err := p.registry.SetActive(name); err != nil {
		writeError(w, http.StatusBadRequest, "provider "+name+" is not configured")
		return
	}
	slog.Info("ai provider switched", "provider", name)
	writeJSON(w, http.StatusOK, p.current())
}
