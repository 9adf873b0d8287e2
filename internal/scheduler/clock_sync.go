package scheduler

import (
	"context"
	"time"

	"github.com/floos/floos/internal/clock"
	"github.com/floos/floos/internal/logger"
)

// ClockSyncer refreshes the wall clock offset from a remote time source on
// an interval. Sync failures are logged and otherwise ignored: the clock
// keeps its previous offset and the dashboard keeps working.
type ClockSyncer struct {
	clock    *clock.Clock
	url      string
	logger   logger.Logger
	interval time.Duration
	stopCh   chan struct{}
}

// NewClockSyncer creates a new clock syncer
func NewClockSyncer(c *clock.Clock, url string, log logger.Logger, interval time.Duration) *ClockSyncer {
	return &ClockSyncer{
		clock:    c,
		url:      url,
		logger:   log,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start syncs once immediately (best effort) and begins the periodic loop.
// A failing time source never fails startup.
func (cs *ClockSyncer) Start(ctx context.Context) error {
	cs.sync(ctx)

	ticker := time.NewTicker(cs.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				cs.sync(ctx)
			case <-cs.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the syncer
func (cs *ClockSyncer) Stop() {
	close(cs.stopCh)
}

func (cs *ClockSyncer) sync(ctx context.Context) {
	if err := cs.clock.Sync(ctx, cs.url); err != nil {
		cs.logger.Warn("clock sync failed, keeping previous offset",
			logger.String("url", cs.url),
			logger.Error(err))
		return
	}
	cs.logger.Debug("clock synced",
		logger.Duration("offset", cs.clock.Offset()))
}
