package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/scoreboard/internal/config"
	"github.com/playperu/scoreboard/internal/database"
	"github.com/playperu/scoreboard/internal/handler/health"
	"github.com/playperu/scoreboard/internal/migrations"
	"github.com/playperu/scoreboard/internal/prefs"
	"github.com/playperu/scoreboard/internal/scoreboard"
	"github.com/playperu/scoreboard/internal/server"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Preferences ---
	store, checks, closeStore, err := openPrefs(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeStore()

	finishScore := prefs.LoadFinishScore(ctx, store, logger, cfg.DefaultFinishScore)
	logger.Info("finish score loaded", "finish_score", finishScore, "backend", cfg.PrefsBackend)

	// --- Board ---
	broker := server.NewBroker()
	board := scoreboard.New(finishScore, store, broker, logger)

	// --- HTTP Server ---
	srv := server.New(cfg.HTTPAddr, logger, server.Deps{
		Board:   board,
		Broker:  broker,
		Checks:  checks,
		PINHash: cfg.BoardPINHash,
		SPADir:  cfg.SPADir,
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}

// openPrefs connects the configured preferences backend. Only a broken
// configuration is fatal; an unreachable store still lets the board run
// on the default finish score.
func openPrefs(ctx context.Context, cfg *config.Config, logger *slog.Logger) (prefs.Store, map[string]health.Checker, func(), error) {
	switch cfg.PrefsBackend {
	case config.PrefsRedis:
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parsing redis url: %w", err)
		}
		rdb := redis.NewClient(opt)
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, finish score will not persist until it recovers", "error", err)
		} else {
			logger.Info("connected to redis")
		}
		checks := map[string]health.Checker{"redis": redisChecker{rdb}}
		return prefs.NewRedisStore(rdb, cfg.RedisKeyPrefix), checks, func() { rdb.Close() }, nil

	case config.PrefsFile:
		store, err := prefs.NewFileStore(cfg.PrefsAppName)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("opening preferences file: %w", err)
		}
		logger.Info("using app data preferences", "app", cfg.PrefsAppName)
		return store, map[string]health.Checker{}, func() {}, nil
	}

	db, err := database.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connecting to sqlite: %w", err)
	}
	applied, err := migrations.Run(ctx, db)
	if err != nil {
		db.Close()
		return nil, nil, nil, fmt.Errorf("running migrations: %w", err)
	}
	logger.Info("connected to sqlite", "path", cfg.DBPath, "migrations_applied", applied)

	checks := map[string]health.Checker{"sqlite": dbChecker{db}}
	return prefs.NewSQLStore(db), checks, func() { db.Close() }, nil
}

// dbChecker adapts *sql.DB to health.Checker.
type dbChecker struct{ db *sql.DB }

func (d dbChecker) Check(ctx context.Context) error { return d.db.PingContext(ctx) }

// redisChecker adapts *redis.Client to health.Checker.
type redisChecker struct{ client *redis.Client }

func (r redisChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }
