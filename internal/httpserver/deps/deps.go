package deps

import (
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/floos/floos/internal/clock"
	"github.com/floos/floos/internal/logger"
	"github.com/floos/floos/internal/storage/bookmarks"
	"github.com/floos/floos/internal/storage/memlog"
	"github.com/floos/floos/internal/storage/tasks"
)

type Deps struct {
	Logger    logger.Logger
	StartTime time.Time
	Version   string
	Commit    string
	BuildDate string
	GoVersion string
	TimeNow   func() time.Time // synced clock; defaults to time.Now in tests

	Tasks     *tasks.Store
	Bookmarks *bookmarks.Store
	Memory    *memlog.Log
	Clock     *clock.Clock

	StorageBackend string        // "file" or "redis", reported by /infra
	RedisClient    *redis.Client // nil when the file backend is active

	AllowedCIDRS []string // IPs allowed to reach infra endpoints (empty = all)
	TrustProxy   bool     // true if running behind a trusted reverse proxy

	DialReloadTrigger chan struct{} // nil when no dial file is configured
}
