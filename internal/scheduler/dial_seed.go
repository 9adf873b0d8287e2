package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/floos/floos/internal/logger"
	"github.com/floos/floos/internal/sources/dial"
	"github.com/floos/floos/internal/storage/bookmarks"
)

// DialSeeder keeps the bookmark store populated with the dial.yaml seeds:
// once on startup, then periodically and on manual trigger. Seeding is
// idempotent — URLs already present in a category are skipped, and nothing
// the user added by hand is ever touched.
type DialSeeder struct {
	loader        *dial.Loader
	mapper        *dial.Mapper
	store         *bookmarks.Store
	logger        logger.Logger
	interval      time.Duration
	stopCh        chan struct{}
	manualTrigger chan struct{}
}

// NewDialSeeder creates a new dial seeder
func NewDialSeeder(
	dialFile string,
	store *bookmarks.Store,
	log logger.Logger,
	interval time.Duration,
	manualTrigger chan struct{},
) *DialSeeder {
	return &DialSeeder{
		loader:        dial.NewLoader(dialFile),
		mapper:        dial.NewMapper(),
		store:         store,
		logger:        log,
		interval:      interval,
		stopCh:        make(chan struct{}),
		manualTrigger: manualTrigger,
	}
}

// Start seeds immediately, then begins the periodic reseed loop.
func (ds *DialSeeder) Start(ctx context.Context) error {
	if err := ds.Seed(ctx); err != nil {
		return fmt.Errorf("initial dial seed failed: %w", err)
	}

	ticker := time.NewTicker(ds.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if err := ds.Seed(ctx); err != nil {
					ds.logger.Error("failed to reseed dial bookmarks",
						logger.Error(err))
				}
			case <-ds.manualTrigger:
				ds.logger.Info("manual dial reseed triggered")
				if err := ds.Seed(ctx); err != nil {
					ds.logger.Error("failed to reseed dial bookmarks",
						logger.Error(err))
				}
			case <-ds.stopCh:
				return
			case <-ctx.Done():
				return
			}
		}
	}()

	return nil
}

// Stop stops the seeder
func (ds *DialSeeder) Stop() {
	close(ds.stopCh)
}

// Seed loads dial.yaml and appends every entry whose URL is not yet present
// in its category.
func (ds *DialSeeder) Seed(ctx context.Context) error {
	config, err := ds.loader.Load()
	if err != nil {
		return fmt.Errorf("failed to load dial config: %w", err)
	}

	seeds, err := ds.mapper.MapSeeds(config)
	if err != nil {
		return fmt.Errorf("failed to map dial config: %w", err)
	}

	added := 0
	for category, drafts := range seeds {
		existing := make(map[string]bool)
		for _, b := range ds.store.List(ctx, category) {
			existing[b.URL] = true
		}

		for _, draft := range drafts {
			if existing[draft.URL] {
				continue
			}
			if _, err := ds.store.Add(ctx, category, draft); err != nil {
				return fmt.Errorf("failed to seed bookmark %s: %w", draft.URL, err)
			}
			existing[draft.URL] = true
			added++
		}
	}

	ds.logger.Info("dial seeds applied",
		logger.Int("categories", len(seeds)),
		logger.Int("added", added))
	return nil
}
