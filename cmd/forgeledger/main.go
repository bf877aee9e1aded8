package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/forgeledger/internal/audit"
	"github.com/gabapcia/forgeledger/internal/config"
	"github.com/gabapcia/forgeledger/internal/handlers/cli"
	"github.com/gabapcia/forgeledger/internal/infra/storage/memory"
	"github.com/gabapcia/forgeledger/internal/infra/storage/redis"
	"github.com/gabapcia/forgeledger/internal/infra/storage/sqlite"
	"github.com/gabapcia/forgeledger/internal/ledger"
	"github.com/gabapcia/forgeledger/internal/pkg/logger"
	"github.com/gabapcia/forgeledger/internal/pkg/telemetry"
)

// shutdownTimeout bounds the time spent flushing telemetry on exit.
const shutdownTimeout = 5 * time.Second

// openStorage builds the storage backend selected by cfg. The returned close
// function is never nil.
func openStorage(ctx context.Context, cfg config.Storage) (ledger.Storage, func() error, error) {
	switch cfg.Driver {
	case config.DriverRedis:
		client, err := redis.NewClient(ctx,
			cfg.Redis.Addr,
			cfg.Redis.Username,
			cfg.Redis.Password,
			cfg.Redis.DB,
			redis.WithKeyPrefix(cfg.Redis.KeyPrefix),
		)
		if err != nil {
			return nil, nil, err
		}

		return client, client.Close, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}

		return db, db.Close, nil
	default:
		return memory.New(), func() error { return nil }, nil
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var logOpts []logger.Option
	if cfg.Log.File != "" {
		logOpts = append(logOpts, logger.WithFile(cfg.Log.File, cfg.Log.MaxSizeMB, cfg.Log.MaxBackups))
	}

	if err := logger.Init(cfg.Log.Level, logOpts...); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Sync()

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("init telemetry: %w", err)
		}

		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			if err := shutdown(ctx); err != nil {
				logger.Warn(ctx, "telemetry shutdown failed", "error", err)
			}
		}()
	}

	storage, closeStorage, err := openStorage(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.Storage.Driver, err)
	}
	defer func() {
		if err := closeStorage(); err != nil {
			logger.Warn(ctx, "storage close failed", "error", err)
		}
	}()

	svc, err := ledger.New(storage)
	if err != nil {
		return fmt.Errorf("init ledger: %w", err)
	}

	auditor, err := audit.New(svc, cfg.Audit.Schedule)
	if err != nil {
		return err
	}

	return cli.Run(ctx, svc, auditor)
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
