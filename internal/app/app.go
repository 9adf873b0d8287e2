package app

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/floos/floos/internal/clock"
	"github.com/floos/floos/internal/config"
	"github.com/floos/floos/internal/httpserver"
	"github.com/floos/floos/internal/httpserver/deps"
	"github.com/floos/floos/internal/logger"
	"github.com/floos/floos/internal/redis"
	"github.com/floos/floos/internal/scheduler"
	"github.com/floos/floos/internal/storage/bookmarks"
	"github.com/floos/floos/internal/storage/kv"
	"github.com/floos/floos/internal/storage/memlog"
	"github.com/floos/floos/internal/storage/tasks"
	"github.com/floos/floos/internal/version"
)

type App struct {
	cfg         *config.Config
	logger      logger.Logger
	server      *httpserver.Server
	redisClient *goredis.Client
	memory      *memlog.Log
	dialSeeder  *scheduler.DialSeeder
	clockSyncer *scheduler.ClockSyncer
}

func New() *App {
	cfg := config.Load()

	loggerClient := logger.New(cfg.LogLevel, cfg.PrettyLog)

	// Clock first: the stores stamp every record through it.
	wallClock := clock.New()

	// Pick the key-value substrate behind the document stores.
	var substrate kv.Substrate
	var redisClient *goredis.Client
	switch cfg.StorageBackend {
	case config.BackendRedis:
		loggerClient.Infof("Connecting to Redis at %s", cfg.RedisAddr)
		client, err := redis.New(redis.ConnectOptions{
			Addr:           cfg.RedisAddr,
			User:           cfg.RedisUser,
			Password:       cfg.RedisPassword,
			RedisDB:        cfg.RedisDB,
			DialTimeout:    cfg.RedisDT,
			ReadTimeout:    cfg.RedisRT,
			WriteTimeout:   cfg.RedisWT,
			PoolSize:       cfg.RedisPoolSize,
			ConnectTimeout: cfg.RedisConnectTimeout,
			RetryInterval:  cfg.RedisRetryInterval,
			MaxWait:        cfg.RedisMaxWait,
			PingTimeout:    cfg.RedisPingTimeout,
		}, loggerClient)
		if err != nil {
			loggerClient.Errorf("Failed to connect to Redis: %v", err)
			os.Exit(1)
		}
		loggerClient.Info("Redis initialized successfully")
		redisClient = client
		substrate = kv.NewRedisSubstrate(client)
	default:
		sub, err := kv.NewFileSubstrate(cfg.DataDir)
		if err != nil {
			loggerClient.Errorf("Failed to initialize data directory %s: %v", cfg.DataDir, err)
			os.Exit(1)
		}
		loggerClient.Info("file storage initialized",
			logger.String("dir", cfg.DataDir))
		substrate = sub
	}

	taskStore := tasks.NewStore(substrate, wallClock.Now)
	bookmarkStore := bookmarks.NewStore(substrate, wallClock.Now)
	memory := memlog.New(cfg.MemoryDBPath, wallClock.Now)

	// Dial seeder (only when a dial file is configured)
	var dialSeeder *scheduler.DialSeeder
	var dialReloadTrigger chan struct{}
	if cfg.DialFile != "" {
		loggerClient.Info("dial file configured, initializing dial seeder",
			logger.String("file", cfg.DialFile))
		dialReloadTrigger = make(chan struct{}, 1)
		dialSeeder = scheduler.NewDialSeeder(
			cfg.DialFile,
			bookmarkStore,
			loggerClient,
			cfg.DialSeedInterval,
			dialReloadTrigger,
		)
	} else {
		loggerClient.Info("dial file not configured, bookmark seeding disabled")
	}

	// Clock syncer (only when a time source is configured)
	var clockSyncer *scheduler.ClockSyncer
	if cfg.ClockSyncURL != "" {
		clockSyncer = scheduler.NewClockSyncer(
			wallClock,
			cfg.ClockSyncURL,
			loggerClient,
			cfg.ClockSyncInterval,
		)
	}

	// Dependencies passed to routes (extend as needed).
	d := deps.Deps{
		Logger:            loggerClient,
		StartTime:         time.Now(),
		Version:           version.Version,
		Commit:            version.Commit,
		BuildDate:         version.BuildDate,
		GoVersion:         version.GoVersion,
		TimeNow:           wallClock.Now,
		Tasks:             taskStore,
		Bookmarks:         bookmarkStore,
		Memory:            memory,
		Clock:             wallClock,
		StorageBackend:    cfg.StorageBackend,
		RedisClient:       redisClient,
		AllowedCIDRS:      cfg.AllowedCIDRS,
		TrustProxy:        cfg.TrustProxy,
		DialReloadTrigger: dialReloadTrigger,
	}

	server := httpserver.New(cfg, loggerClient, d)

	return &App{
		cfg:         cfg,
		logger:      loggerClient,
		server:      server,
		redisClient: redisClient,
		memory:      memory,
		dialSeeder:  dialSeeder,
		clockSyncer: clockSyncer,
	}
}

func (a *App) Run() error {
	a.logger.Infof("🚀 Starting floOS v%s on %s", version.Version, a.cfg.ListenPort)
	a.logger.Infof("floOS %s (commit=%s, built=%s, go=%s)",
		version.Version, version.Commit, version.BuildDate, version.GoVersion)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start dial seeder (seeds bookmarks and begins periodic reseed)
	if a.dialSeeder != nil {
		if err := a.dialSeeder.Start(ctx); err != nil {
			return fmt.Errorf("failed to start dial seeder: %w", err)
		}
		a.logger.Info("dial seeder started",
			logger.Duration("interval", a.cfg.DialSeedInterval))
	}

	// Start clock syncer (best effort, never fatal)
	if a.clockSyncer != nil {
		if err := a.clockSyncer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start clock syncer: %w", err)
		}
		a.logger.Info("clock syncer started",
			logger.Duration("interval", a.cfg.ClockSyncInterval))
	}

	errCh := make(chan error, 1)
	go func() {
		if err := a.server.Start(); err != nil {
			errCh <- fmt.Errorf("http server error: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("⏳ Shutting down gracefully...")
	case err := <-errCh:
		return err
	}

	if a.dialSeeder != nil {
		a.dialSeeder.Stop()
	}
	if a.clockSyncer != nil {
		a.clockSyncer.Stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()
	if err := a.server.Stop(shutdownCtx); err != nil {
		return fmt.Errorf("failed to stop server: %w", err)
	}

	if err := a.memory.Close(); err != nil {
		a.logger.Warnf("failed to close memory log: %v", err)
	} else {
		a.logger.Info("✅ Memory log closed cleanly")
	}

	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			a.logger.Warnf("failed to close redis: %v", err)
		} else {
			a.logger.Info("✅ Redis closed cleanly")
		}
	}

	a.logger.Info("✅ floOS stopped cleanly")
	return nil
}
