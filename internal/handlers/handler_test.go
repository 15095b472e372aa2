// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared fakes and request builders for the
// handler tests. Nothing here needs PostgreSQL, Valkey or a model API.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"jewelstudio/internal/ai"
	"jewelstudio/internal/cache"
	"jewelstudio/internal/generate"
	"jewelstudio/internal/models"
	"jewelstudio/internal/prompt"
)

// pngBytes is enough of a PNG for content sniffing.
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)

// keyTemplates renders every key as "PROMPT:<key>".
type keyTemplates struct{}

func (keyTemplates) Render(key models.TemplateKey, _ map[string]string) (string, error) {
	return "PROMPT:" + string(key), nil
}

// fakeBackend answers every request unless its prompt names a failing key
// prefix. Safe for concurrent use.
type fakeBackend struct {
	mu       sync.Mutex
	calls    int
	failing  []string
	imageTag string

	// onCall, when set before requests start, runs at the start of every
	// call outside the lock.
	onCall func()
}

func (f *fakeBackend) setFailing(prefixes ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failing = prefixes
}

func (f *fakeBackend) setImageTag(tag string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.imageTag = tag
}

func (f *fakeBackend) GenerateContent(_ context.Context, req ai.ContentRequest) (*ai.ContentResult, error) {
	if f.onCall != nil {
		f.onCall()
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++

	key := strings.TrimPrefix(req.Prompt, "PROMPT:")
	for _, p := range f.failing {
		if strings.HasPrefix(key, p) {
			return nil, errors.New("model refused the request")
		}
	}
	if req.Modality == models.ModalityImage {
		return &ai.ContentResult{ImageData: []byte(f.imageTag + key), MimeType: "image/png"}, nil
	}
	return &ai.ContentResult{Text: "**" + key + "** copy"}, nil
}

// memBatches is an in-memory BatchCache.
type memBatches struct {
	mu      sync.Mutex
	batches map[string][]models.GeneratedAsset
	saveErr error
}

func newMemBatches() *memBatches {
	return &memBatches{batches: make(map[string][]models.GeneratedAsset)}
}

func (m *memBatches) Save(_ context.Context, id string, assets []models.GeneratedAsset) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.batches[id] = append([]models.GeneratedAsset(nil), assets...)
	return nil
}

func (m *memBatches) Load(_ context.Context, id string) ([]models.GeneratedAsset, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.batches[id]
	return a, ok, nil
}

func (m *memBatches) ReplaceAsset(_ context.Context, id string, asset models.GeneratedAsset) ([]models.GeneratedAsset, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	current, ok := m.batches[id]
	if !ok {
		return nil, cache.ErrBatchNotFound
	}
	updated, _ := models.ReplaceAsset(current, asset)
	m.batches[id] = updated
	return append([]models.GeneratedAsset(nil), updated...), nil
}

func (m *memBatches) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.batches, id)
	return nil
}

// fakeProviders is an in-memory ProviderSwitcher.
type fakeProviders struct {
	active    string
	available []string
}

func (p *fakeProviders) ActiveName() string { return p.active }
func (p *fakeProviders) Available() []string { return append([]string(nil), p.available...) }

func (p *fakeProviders) SetActive(name string) error {
	for _, a := range p.available {
		if a == name {
			p.active = name
			return nil
		}
	}
	return errors.New("not available")
}

// fakeDetector returns a fixed answer or error.
type fakeDetector struct {
	answer models.JewelryType
	err    error
}

func (d fakeDetector) DetectJewelryType(context.Context, models.Image) (models.JewelryType, error) {
	return d.answer, d.err
}

// memItems is an in-memory ItemRepository.
type memItems struct {
	mu    sync.Mutex
	items map[uuid.UUID]*models.Item
}

func newMemItems() *memItems { return &memItems{items: make(map[uuid.UUID]*models.Item)} }

func (m *memItems) Create(_ context.Context, d models.ProductDetails) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := time.Now()
	it := &models.Item{ID: uuid.New(), Name: d.Name, Type: d.Type, Details: d, CreatedAt: now, UpdatedAt: now}
	m.items[it.ID] = it
	cp := *it
	return &cp, nil
}

func (m *memItems) Update(_ context.Context, id uuid.UUID, d models.ProductDetails) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	it.Name, it.Type, it.Details, it.UpdatedAt = d.Name, d.Type, d, time.Now()
	cp := *it
	return &cp, nil
}

func (m *memItems) FindByID(_ context.Context, id uuid.UUID) (*models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	it, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	cp := *it
	return &cp, nil
}

func (m *memItems) List(_ context.Context, limit, offset int) ([]models.Item, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.Item, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return []models.Item{}, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memItems) Count(context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items), nil
}

func (m *memItems) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.items[id]
	delete(m.items, id)
	return ok, nil
}

// memAssets is an in-memory AssetRepository.
type memAssets struct {
	mu     sync.Mutex
	assets []models.AssetRecord
}

func (m *memAssets) Create(_ context.Context, a *models.AssetRecord) (*models.AssetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec := *a
	rec.ID = uuid.New()
	rec.CreatedAt = time.Now()
	m.assets = append(m.assets, rec)
	return &rec, nil
}

func (m *memAssets) FindByID(_ context.Context, itemID, id uuid.UUID) (*models.AssetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.assets {
		if a.ID == id && a.ItemID == itemID {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memAssets) ListByItem(_ context.Context, itemID uuid.UUID) ([]models.AssetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]models.AssetRecord, 0)
	for _, a := range m.assets {
		if a.ItemID == itemID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (m *memAssets) Delete(_ context.Context, itemID, id uuid.UUID) (*models.AssetRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, a := range m.assets {
		if a.ID == id && a.ItemID == itemID {
			m.assets = append(m.assets[:i], m.assets[i+1:]...)
			return &a, nil
		}
	}
	return nil, nil
}

// memObjects is an in-memory ObjectStore.
type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	deleted []string
}

func newMemObjects() *memObjects {
	return &memObjects{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (m *memObjects) Upload(_ context.Context, key, contentType string, body io.Reader, _ int64) error {
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	m.types[key] = contentType
	return nil
}

func (m *memObjects) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

func (m *memObjects) URL(_ context.Context, key string) (string, error) {
	return "https://cdn.test/" + key, nil
}

// testEnv bundles a router with the fakes behind it.
type testEnv struct {
	router    http.Handler
	backend   *fakeBackend
	batches   *memBatches
	items     *memItems
	assets    *memAssets
	objects   *memObjects
	prompts   *prompt.Store
	providers *fakeProviders
}

type envOption func(*envConfig)

type envConfig struct {
	noBackend bool
	noStorage bool
	detector  TypeDetector
}

func withoutBackend() envOption { return func(c *envConfig) { c.noBackend = true } }
func withoutStorage() envOption { return func(c *envConfig) { c.noStorage = true } }
func withDetector(d TypeDetector) envOption {
	return func(c *envConfig) { c.detector = d }
}

func newTestEnv(t *testing.T, opts ...envOption) *testEnv {
	t.Helper()
	cfg := envConfig{detector: fakeDetector{answer: models.JewelryRing}}
	for _, o := range opts {
		o(&cfg)
	}

	env := &testEnv{
		backend:   &fakeBackend{},
		batches:   newMemBatches(),
		items:     newMemItems(),
		assets:    &memAssets{},
		objects:   newMemObjects(),
		prompts:   prompt.NewStore(nil),
		providers: &fakeProviders{
			active:    "gemini",
			available: []string{"openai", "gemini"},
		},
	}

	var backend generate.Backend
	if !cfg.noBackend {
		backend = env.backend
	}
	var objects ObjectStore
	if !cfg.noStorage {
		objects = env.objects
	}

	studio := NewStudio(generate.New(backend, keyTemplates{}, 2), cfg.detector, env.prompts, env.batches, 5<<20)
	catalog := NewCatalog(env.items, env.assets, objects)

	r := chi.NewRouter()
	r.Post("/api/generate", studio.Generate)
	r.Post("/api/generate/{batchID}/regenerate", studio.Regenerate)
	r.Delete("/api/generate/{batchID}", studio.DiscardBatch)
	providers := NewProviders(env.providers)
	r.Get("/api/ai/provider", providers.GetProvider)
	r.Put("/api/ai/provider", providers.SetProvider)
	r.Post("/api/detect-type", studio.DetectType)
	r.Post("/api/prompt-preview", studio.PromptPreview)
	r.Get("/api/options", studio.Options)
	r.Get("/api/templates", studio.ListTemplates)
	r.Post("/api/templates/reset", studio.ResetAllTemplates)
	r.Put("/api/templates/{key}", studio.UpdateTemplate)
	r.Delete("/api/templates/{key}", studio.ResetTemplate)
	r.Get("/api/items", catalog.ListItems)
	r.Post("/api/items", catalog.CreateItem)
	r.Get("/api/items/{id}", catalog.GetItem)
	r.Put("/api/items/{id}", catalog.UpdateItem)
	r.Delete("/api/items/{id}", catalog.DeleteItem)
	r.Get("/api/items/{id}/assets", catalog.ListAssets)
	r.Post("/api/items/{id}/assets", catalog.SaveAsset)
	r.Get("/api/items/{id}/assets/{assetID}", catalog.GetAsset)
	r.Delete("/api/items/{id}/assets/{assetID}", catalog.DeleteAsset)
	env.router = r

	return env
}

// formFile is one file part of a multipart request.
type formFile struct {
	field, name string
	data        []byte
}

// multipartRequest builds a POST with the given fields and files.
func multipartRequest(t *testing.T, path string, fields map[string][]string, files ...formFile) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for name, values := range fields {
		for _, v := range values {
			if err := mw.WriteField(name, v); err != nil {
				t.Fatalf("write field: %v", err)
			}
		}
	}
	for _, f := range files {
		w, err := mw.CreateFormFile(f.field, f.name)
		if err != nil {
			t.Fatalf("create file: %v", err)
		}
		w.Write(f.data)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close multipart: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

// jsonRequest builds a request with a JSON body.
func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal body: %v", err)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// do serves req and decodes a JSON response into out (when non-nil).
func (e *testEnv) do(t *testing.T, req *http.Request, out any) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	if out != nil && rr.Body.Len() > 0 {
		if err := json.Unmarshal(rr.Body.Bytes(), out); err != nil {
			t.Fatalf("decode response %q: %v", rr.Body.String(), err)
		}
	}
	return rr
}

func photo() formFile { return formFile{field: "images", name: "ring.png", data: pngBytes} }

type errorBody struct {
	Error string `json:"error"`
}
