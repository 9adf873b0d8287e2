package kv

import "context"

// Substrate is the persistent string-keyed byte store underneath the JSON
// document adapter. Implementations must report a missing key as
// (nil, false, nil) rather than an error.
type Substrate interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}
