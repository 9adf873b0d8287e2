package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Read loads the JSON document stored under key. A missing key, a malformed
// document and a substrate read error all yield fallback: reads gate
// rendering and must never fail the caller. Callers cannot distinguish
// "never written" from "written but corrupted".
func Read[T any](ctx context.Context, sub Substrate, key string, fallback T) T {
	raw, ok, err := sub.Get(ctx, key)
	if err != nil || !ok {
		return fallback
	}
	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return fallback
	}
	return value
}

// Write persists value as its canonical JSON text under key. Substrate
// failures propagate: the caller decides whether to surface or swallow them.
func Write[T any](ctx context.Context, sub Substrate, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}
	if err := sub.Set(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Migration probes one or more legacy keys and returns the normalized
// document, or false when no legacy data exists.
type Migration[T any] func(ctx context.Context, sub Substrate) (T, bool)

// ReadOrMigrate behaves like Read, except that a key that has never been
// written triggers the legacy probe. A successful probe is written through
// to the current key and served as this call's value; once the current key
// is populated, legacy keys are never consulted again. A malformed current
// document does NOT trigger migration, it yields fallback like Read.
func ReadOrMigrate[T any](ctx context.Context, sub Substrate, key string, fallback T, migrate Migration[T]) T {
	raw, ok, err := sub.Get(ctx, key)
	if err != nil {
		return fallback
	}
	if ok {
		var value T
		if err := json.Unmarshal(raw, &value); err != nil {
			return fallback
		}
		return value
	}

	if migrate == nil {
		return fallback
	}
	value, found := migrate(ctx, sub)
	if !found {
		return fallback
	}

	// Write-through is best effort: a failed write still serves the
	// migrated value, and the next read probes again.
	_ = Write(ctx, sub, key, value)

	return value
}
