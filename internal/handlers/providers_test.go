package handlers

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestGetProvider(t *testing.T) {
	env := newTestEnv(t)

	var body providerResponse
	rr := env.do(t, httptest.NewRequest(http.MethodGet, "/api/ai/provider", nil), &body)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}
	if body.Active != "gemini" {
		t.Errorf("active = %q, want gemini", body.Active)
	}
	if !reflect.DeepEqual(body.Available, []string{"gemini", "openai"}) {
		t.Errorf("available = %v, want sorted [gemini openai]", body.Available)
	}
}

func TestSetProvider(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		wantStatus int
		wantActive string
	}{
		{name: "switch", body: map[string]string{"provider": "openai"}, wantStatus: http.StatusOK, wantActive: "openai"},
		{name: "case and spaces", body: map[string]string{"provider": " OpenAI "}, wantStatus: http.StatusOK, wantActive: "openai"},
		{name: "not configured", body: map[string]string{"provider": "claude"}, wantStatus: http.StatusBadRequest, wantActive: "gemini"},
		{name: "missing", body: map[string]string{}, wantStatus: http.StatusBadRequest, wantActive: "gemini"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			rr := env.do(t, jsonRequest(t, http.MethodPut, "/api/ai/provider", tt.body), nil)
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if env.providers.active != tt.wantActive {
				t.Errorf("active = %q, want %q", env.providers.active, tt.wantActive)
			}
		})
	}
}
