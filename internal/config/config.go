package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Storage backends for the key-value documents.
const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	ListenPort      string        // ex: ":8399"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	StorageBackend string // "file" (default) or "redis"
	DataDir        string // directory holding the key-value documents (file backend)
	MemoryDBPath   string // path to the memory item SQLite database

	DialFile         string        // path to dial.yaml with bookmark seeds (optional, empty = seeding disabled)
	DialSeedInterval time.Duration // interval between dial reseeds (default: 24h)

	ClockSyncURL      string        // remote endpoint whose Date header drives the clock offset (optional)
	ClockSyncInterval time.Duration // interval between clock syncs (default: 1h)

	// Redis (only consulted when StorageBackend == "redis")
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries, grows exponentially
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)

	AllowedCIDRS []string // optional, restrict infra endpoints to specific IPs/CIDRs
	TrustProxy   bool     // true => trust X-Forwarded-For headers
}

func Load() *Config {
	// Local .env is a dev convenience; absence is fine.
	_ = godotenv.Load()

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("FLOOS_LISTEN_PORT", ":8399"),
		ShutdownTimeout: mustDuration("FLOOS_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("FLOOS_LOG_LEVEL", "info"),
		PrettyLog: mustBool("FLOOS_PRETTY_LOG", true),

		// Storage
		StorageBackend: getenv("FLOOS_STORAGE_BACKEND", BackendFile),
		DataDir:        getenv("FLOOS_DATA_DIR", defaultDataDir()),

		// Dial seeding
		DialFile:         getenv("FLOOS_DIAL_FILE", ""),
		DialSeedInterval: mustDuration("FLOOS_DIAL_SEED_INTERVAL", 24*time.Hour),

		// Clock sync
		ClockSyncURL:      getenv("FLOOS_CLOCK_SYNC_URL", ""),
		ClockSyncInterval: mustDuration("FLOOS_CLOCK_SYNC_INTERVAL", time.Hour),

		// Redis settings
		RedisAddr:           getenv("FLOOS_REDIS_ADDR", ""),
		RedisUser:           getenv("FLOOS_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("FLOOS_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("FLOOS_REDIS_DB", 0),
		RedisDT:             mustDuration("FLOOS_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("FLOOS_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("FLOOS_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisPoolSize:       getenvInt("FLOOS_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("FLOOS_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("FLOOS_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisMaxWait:        mustDuration("FLOOS_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("FLOOS_REDIS_PING_TIMEOUT", 5*time.Second),

		// Access restrictions
		AllowedCIDRS: splitAndTrim(getenv("FLOOS_ALLOWED_CIDRS", "")),
		TrustProxy:   mustBool("FLOOS_TRUST_PROXY", false),
	}

	cfg.MemoryDBPath = getenv("FLOOS_MEMORY_DB", filepath.Join(cfg.DataDir, "memory.db"))

	switch cfg.StorageBackend {
	case BackendFile:
	case BackendRedis:
		if cfg.RedisAddr == "" {
			panic("❌ FATAL: FLOOS_REDIS_ADDR is required when FLOOS_STORAGE_BACKEND=redis")
		}
	default:
		panic(fmt.Sprintf("❌ FATAL: Unknown FLOOS_STORAGE_BACKEND %q (want %q or %q)",
			cfg.StorageBackend, BackendFile, BackendRedis))
	}

	return cfg
}

func defaultDataDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "floos")
	}
	return "floos-data"
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
