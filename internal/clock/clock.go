package clock

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Clock is a wall clock with a best-effort offset learned from a remote
// time source. The zero offset ticks with the local clock, so an unsynced
// or failing clock still works; every store timestamp flows through Now.
type Clock struct {
	client *http.Client

	mu       sync.RWMutex
	offset   time.Duration
	lastSync time.Time
}

func New() *Clock {
	return &Clock{
		client: &http.Client{Timeout: 5 * time.Second},
	}
}

// Now returns the local time adjusted by the learned offset.
func (c *Clock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return time.Now().Add(c.offset)
}

// Offset returns the current remote-minus-local offset.
func (c *Clock) Offset() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.offset
}

// LastSync returns when the offset was last refreshed (zero if never).
func (c *Clock) LastSync() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastSync
}

// Sync derives the offset from the Date header of a HEAD request to url.
// The Date header only carries second resolution, which is plenty for
// calendar timestamps. Any failure leaves the previous offset in place.
func (c *Clock) Sync(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("failed to build time request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to reach time source: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	remote, err := http.ParseTime(resp.Header.Get("Date"))
	if err != nil {
		return fmt.Errorf("time source sent no usable Date header: %w", err)
	}

	now := time.Now()
	c.mu.Lock()
	c.offset = remote.Sub(now)
	c.lastSync = now
	c.mu.Unlock()

	return nil
}
