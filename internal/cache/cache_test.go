// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"jewelstudio/internal/models"
)

// testValkeyClient returns a Redis client for tests.
// Skips if Valkey is unavailable.
func testValkeyClient(t *testing.T) *redis.Client {
	t.Helper()

	host := envOr("VALKEY_HOST", "localhost")
	port := envOr("VALKEY_PORT", "6379")
	password := os.Getenv("VALKEY_PASSWORD")

	client := redis.NewClient(&redis.Options{
		Addr:     host + ":" + port,
		Password: password,
		DB:       15, // Use DB 15 for tests.
	})

	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		t.Skipf("skipping integration test: Valkey not reachable: %v", err)
	}

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, batchKeyPrefix+"*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		client.Close()
	})

	return client
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func TestConnectValkey(t *testing.T) {
	addr := envOr("VALKEY_HOST", "localhost") + ":" + envOr("VALKEY_PORT", "6379")

	client, err := ConnectValkey(addr, os.Getenv("VALKEY_PASSWORD"))
	if err != nil {
		t.Skipf("skipping: Valkey not available: %v", err)
	}
	defer client.Close()

	pong, err := client.Ping(context.Background()).Result()
	if err != nil {
		t.Fatalf("Ping: %v", err)
	}
	if pong != "PONG" {
		t.Errorf("expected PONG, got %q", pong)
	}
}

func TestResultCache_SaveAndLoad(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)
	ctx := context.Background()
	id := NewBatchID()

	assets, ok, err := rc.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load miss: %v", err)
	}
	if ok || assets != nil {
		t.Fatalf("expected miss, got ok=%v assets=%v", ok, assets)
	}

	want := []models.GeneratedAsset{
		{Type: models.AssetWhiteBg, Content: "data:image/png;base64,AAAA", IsImage: true},
		{Type: models.AssetDescription, Content: "A luminous opal drop.", IsImage: false},
	}
	if err := rc.Save(ctx, id, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, ok, err := rc.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit after Save")
	}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("asset %d = %+v, want %+v", i, got[i], want[i])
		}
	}

	ttl, err := client.TTL(ctx, batchKeyPrefix+id).Result()
	if err != nil {
		t.Fatalf("TTL: %v", err)
	}
	if ttl <= 0 || ttl > time.Minute {
		t.Errorf("TTL = %v, want within (0, 1m]", ttl)
	}
}

func TestResultCache_EmptyBatch(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)
	ctx := context.Background()
	id := NewBatchID()

	if err := rc.Save(ctx, id, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, ok, err := rc.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !ok {
		t.Fatal("an empty batch is still a hit")
	}
	if len(got) != 0 {
		t.Errorf("len = %d, want 0", len(got))
	}
}

func TestResultCache_Delete(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)
	ctx := context.Background()
	id := NewBatchID()

	if err := rc.Save(ctx, id, []models.GeneratedAsset{{Type: models.AssetSocialPost, Content: "#gold"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := rc.Delete(ctx, id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := rc.Load(ctx, id); ok {
		t.Error("expected miss after Delete")
	}
}

func TestResultCache_ReplaceAsset(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)
	ctx := context.Background()
	id := NewBatchID()

	if _, err := rc.ReplaceAsset(ctx, id, models.GeneratedAsset{Type: models.AssetStaging}); !errors.Is(err, ErrBatchNotFound) {
		t.Fatalf("missing batch: err = %v, want ErrBatchNotFound", err)
	}

	start := []models.GeneratedAsset{
		{Type: models.AssetWhiteBg, Content: "bg-v1", IsImage: true},
		{Type: models.AssetDescription, Content: "copy-v1"},
	}
	if err := rc.Save(ctx, id, start); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := rc.ReplaceAsset(ctx, id, models.GeneratedAsset{Type: models.AssetWhiteBg, Content: "bg-v2", IsImage: true})
	if err != nil {
		t.Fatalf("ReplaceAsset: %v", err)
	}
	if len(got) != 2 || got[0].Content != "bg-v2" || got[1].Content != "copy-v1" {
		t.Errorf("after replace = %+v", got)
	}
}

// TestResultCache_ReplaceAssetConcurrent verifies that concurrent writers
// replacing different types all keep their update.
func TestResultCache_ReplaceAssetConcurrent(t *testing.T) {
	client := testValkeyClient(t)
	rc := NewResultCache(client, time.Minute)
	ctx := context.Background()
	id := NewBatchID()

	if err := rc.Save(ctx, id, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}

	types := models.AllAssetTypes()
	var wg sync.WaitGroup
	errs := make([]error, len(types))
	for i, at := range types {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, errs[i] = rc.ReplaceAsset(ctx, id, models.GeneratedAsset{Type: at, Content: "new-" + string(at)})
		}()
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Errorf("%s: %v", types[i], err)
		}
	}

	got, _, err := rc.Load(ctx, id)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(types) {
		t.Fatalf("len = %d, want %d (lost updates)", len(got), len(types))
	}
	seen := make(map[models.AssetType]bool)
	for _, a := range got {
		if a.Content != "new-"+string(a.Type) {
			t.Errorf("%s content = %q", a.Type, a.Content)
		}
		seen[a.Type] = true
	}
	if len(seen) != len(types) {
		t.Errorf("types present = %v", seen)
	}
}

func TestNewResultCache_DefaultTTL(t *testing.T) {
	rc := NewResultCache(nil, 0)
	if rc.ttl != DefaultResultTTL {
		t.Errorf("ttl = %v, want %v", rc.ttl, DefaultResultTTL)
	}
}

func TestNewBatchID_Unique(t *testing.T) {
	if NewBatchID() == NewBatchID() {
		t.Error("batch IDs should be unique")
	}
}
