// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"jewelstudio/internal/models"
)

const (
	// batchKeyPrefix is the Valkey key prefix for displayed batches.
	batchKeyPrefix = "batch:"

	// DefaultResultTTL is how long a displayed batch can be regenerated against.
	DefaultResultTTL = time.Hour

	// maxReplaceAttempts bounds optimistic retries when concurrent writers
	// touch the same batch.
	maxReplaceAttempts = 10
)

// ErrBatchNotFound means the batch expired or never existed.
var ErrBatchNotFound = errors.New("batch not found")

// ResultCache keeps the currently displayed asset set of each batch so a
// single type can be regenerated later without resending the others.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCache creates a result cache backed by the given Valkey client.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultResultTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

// NewBatchID returns a fresh batch identifier.
func NewBatchID() string {
	return uuid.NewString()
}

// Save stores the displayed assets of a batch and refreshes its TTL.
func (rc *ResultCache) Save(ctx context.Context, batchID string, assets []models.GeneratedAsset) error {
	if assets == nil {
		assets = []models.GeneratedAsset{}
	}
	raw, err := json.Marshal(assets)
	if err != nil {
		return fmt.Errorf("encode batch %s: %w", batchID, err)
	}
	if err := rc.client.Set(ctx, batchKeyPrefix+batchID, raw, rc.ttl).Err(); err != nil {
		return fmt.Errorf("save batch %s: %w", batchID, err)
	}
	slog.Debug("batch cached", "batch_id", batchID, "assets", len(assets))
	return nil
}

// Load returns the displayed assets of a batch. A missing or expired batch
// yields (nil, false, nil).
func (rc *ResultCache) Load(ctx context.Context, batchID string) ([]models.GeneratedAsset, bool, error) {
	raw, err := rc.client.Get(ctx, batchKeyPrefix+batchID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load batch %s: %w", batchID, err)
	}

	var assets []models.GeneratedAsset
	if err := json.Unmarshal(raw, &assets); err != nil {
		return nil, false, fmt.Errorf("decode batch %s: %w", batchID, err)
	}
	return assets, true, nil
}

// ReplaceAsset swaps the entry of asset's type in a cached batch, or
// appends it, and returns the updated set. The read-modify-write runs in a
// WATCH transaction and is retried when another writer changes the batch
// first, so concurrent regenerations of different types all land.
func (rc *ResultCache) ReplaceAsset(ctx context.Context, batchID string, asset models.GeneratedAsset) ([]models.GeneratedAsset, error) {
	key := batchKeyPrefix + batchID
	var updated []models.GeneratedAsset

	txf := func(tx *redis.Tx) error {
		raw, err := tx.Get(ctx, key).Bytes()
		if errors.Is(err, redis.Nil) {
			return ErrBatchNotFound
		}
		if err != nil {
			return err
		}

		var current []models.GeneratedAsset
		if err := json.Unmarshal(raw, &current); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		updated, _ = models.ReplaceAsset(current, asset)

		encoded, err := json.Marshal(updated)
		if err != nil {
			return fmt.Errorf("encode: %w", err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, encoded, rc.ttl)
			return nil
		})
		return err
	}

	for attempt := 1; attempt <= maxReplaceAttempts; attempt++ {
		err := rc.client.Watch(ctx, txf, key)
		switch {
		case err == nil:
			return updated, nil
		case errors.Is(err, redis.TxFailedErr):
			slog.Debug("batch changed during replace, retrying", "batch_id", batchID, "attempt", attempt)
			continue
		case errors.Is(err, ErrBatchNotFound):
			return nil, ErrBatchNotFound
		default:
			return nil, fmt.Errorf("replace asset in batch %s: %w", batchID, err)
		}
	}
	return nil, fmt.Errorf("replace asset in batch %s: too much contention", batchID)
}

// Delete drops a batch. Deleting a missing batch is not an error.
func (rc *ResultCache) Delete(ctx context.Context, batchID string) error {
	if err := rc.client.Del(ctx, batchKeyPrefix+batchID).Err(); err != nil {
		return fmt.Errorf("delete batch %s: %w", batchID, err)
	}
	return nil
}
