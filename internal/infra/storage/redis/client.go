// Package redis implements ledger.Storage on top of Redis.
//
// Blocks are kept in a list, wallets and aliases in hashes, and the chain
// head in a hash that every commit WATCHes, so concurrent writers from
// several processes are detected and rejected with ledger.ErrRevisionConflict.
package redis

import (
	"context"
	"time"

	"github.com/gabapcia/forgeledger/internal/pkg/logger"
	"github.com/gabapcia/forgeledger/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

type client struct {
	conn   *redis.Client
	prefix string // namespace of every key written by this client
}

func (c *client) Close() error {
	return c.conn.Close()
}

// Option customizes the client built by NewClient.
type Option func(*clientConfig)

type clientConfig struct {
	prefix string
	retry  retry.Retry
}

// WithKeyPrefix namespaces every key, so several ledgers can share one database.
func WithKeyPrefix(prefix string) Option {
	return func(c *clientConfig) {
		c.prefix = prefix
	}
}

// WithConnectRetry replaces the policy used while waiting for Redis to answer PING.
func WithConnectRetry(r retry.Retry) Option {
	return func(c *clientConfig) {
		c.retry = r
	}
}

// NewClient connects to Redis and waits until it answers PING.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := clientConfig{
		prefix: defaultKeyPrefix,
		retry: retry.New(
			retry.WithAttempts(5),
			retry.WithDelay(200*time.Millisecond),
			retry.WithMaxDelay(2*time.Second),
			retry.WithOnRetry(func(attempt uint, err error) {
				logger.Warn(ctx, "redis not ready", "redis.addr", addr, "retry.attempt", attempt, "error", err)
			}),
		),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	err := cfg.retry.Execute(ctx, func() error {
		return conn.Ping(ctx).Err()
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:   conn,
		prefix: cfg.prefix,
	}, nil
}
