// Package ledger implements an append-only, hash-chained transaction ledger
// that mints and moves ForgeCoins (FC) between wallets and can re-verify its
// own integrity.
//
// Every mutation (wallet creation, emission, transfer, distribution, ...)
// is staged in a unit of work and handed to the Storage as a single atomic
// Commit, so either all of its effects are observed or none are. A single
// in-process writer is enforced with a lock; writers in other processes
// sharing the same storage are detected through the storage revision and
// the losing operation is re-run.
package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/forgeledger/internal/pkg/logger"
	"github.com/gabapcia/forgeledger/internal/pkg/resilience/retry"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// instrumentationName names the tracer and meter used by the ledger.
const instrumentationName = "github.com/gabapcia/forgeledger/internal/ledger"

// Service is the in-process API of the ledger.
type Service interface {
	// CreateWallet registers a wallet with zero balances and returns its ID.
	CreateWallet(ctx context.Context, ownerID, ownerType string) (string, error)

	// GetBalance returns the wallet record or ErrWalletNotFound.
	GetBalance(ctx context.Context, walletID string) (Wallet, error)

	// WalletHistory returns up to limit blocks involving walletID, newest first.
	WalletHistory(ctx context.Context, walletID string, limit int) ([]Block, error)

	// Emit mints amountFC (worth amountUSD) into dest.
	Emit(ctx context.Context, amountFC, amountUSD decimal.Decimal, dest, reason string) (Block, error)

	// Reward mints amountFC into dest as a reward, valued at ExchangeRate.
	Reward(ctx context.Context, amountFC decimal.Decimal, dest, reason string) (Block, error)

	// Transfer moves amountFC from src to dest. The USD equivalent
	// (amountFC * ExchangeRate) moves with it, so src must hold enough of
	// both balances; otherwise ErrInsufficientFunds is returned. A wallet
	// funded by an emission with zero USD cannot transfer until it gains USD.
	Transfer(ctx context.Context, src, dest string, amountFC decimal.Decimal, concept string) (Block, error)

	// Pay moves amountFC from src to dest as the settlement of a purchase.
	// Funds are checked like Transfer: both FC and the USD equivalent.
	Pay(ctx context.Context, src, dest string, amountFC decimal.Decimal, concept string) (Block, error)

	// Burn destroys amountFC held by walletID together with its USD
	// equivalent. Both balances must cover the burn.
	Burn(ctx context.Context, walletID string, amountFC decimal.Decimal, reason string) (Block, error)

	// Distribute mints totalUSD across the category wallets by percentage.
	Distribute(ctx context.Context, totalUSD decimal.Decimal, percentages map[Category]decimal.Decimal) (DistributionSummary, error)

	// Head returns the current chain head.
	Head(ctx context.Context) (Head, error)

	// TotalSupply returns the sum of every wallet balance.
	TotalSupply(ctx context.Context) (Supply, error)

	// Verify replays the chain and the wallet snapshot looking for discrepancies.
	Verify(ctx context.Context) (Report, error)
}

// metrics groups the instruments recorded by the service.
type metrics struct {
	blocksAppended   metric.Int64Counter
	operationsFailed metric.Int64Counter
}

// newMetrics registers the ledger instruments on the global meter provider.
func newMetrics() (*metrics, error) {
	meter := otel.Meter(instrumentationName)

	blocksAppended, err := meter.Int64Counter("forgeledger.blocks.appended",
		metric.WithDescription("Number of blocks appended to the chain."),
	)
	if err != nil {
		return nil, err
	}

	operationsFailed, err := meter.Int64Counter("forgeledger.operations.failed",
		metric.WithDescription("Number of ledger operations rejected or failed."),
	)
	if err != nil {
		return nil, err
	}

	return &metrics{
		blocksAppended:   blocksAppended,
		operationsFailed: operationsFailed,
	}, nil
}

// service is the concrete implementation of Service.
type service struct {
	mu sync.RWMutex // serializes writers; readers share it

	storage Storage
	retry   retry.Retry
	clock   func() time.Time
	tracer  trace.Tracer
	metrics *metrics
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// Option customizes the service built by New.
type Option func(*service)

// WithClock replaces the time source used to stamp wallets and blocks.
func WithClock(clock func() time.Time) Option {
	return func(s *service) {
		s.clock = clock
	}
}

// WithRetry replaces the policy used to re-run operations that lost a
// revision conflict against another writer.
func WithRetry(r retry.Retry) Option {
	return func(s *service) {
		s.retry = r
	}
}

// New creates a ledger service on top of the given storage.
func New(storage Storage, opts ...Option) (*service, error) {
	m, err := newMetrics()
	if err != nil {
		return nil, err
	}

	s := &service{
		storage: storage,
		clock:   time.Now,
		tracer:  otel.Tracer(instrumentationName),
		metrics: m,
		retry: retry.New(
			retry.WithAttempts(5),
			retry.WithDelay(10*time.Millisecond),
			retry.WithMaxDelay(200*time.Millisecond),
			retry.WithRetryIf(isRevisionConflict),
		),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// now returns the current time in UTC.
func (s *service) now() time.Time {
	return s.clock().UTC()
}

// mutate runs fn inside a fresh unit of work under the writer lock and
// commits the result. The whole sequence is re-run from scratch when the
// commit loses a revision conflict.
func (s *service) mutate(ctx context.Context, operation string, fn func(u *unitOfWork) error) error {
	ctx, span := s.tracer.Start(ctx, "ledger."+operation)
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	var appended int
	err := s.retry.Execute(ctx, func() error {
		u, err := newUnitOfWork(ctx, s.storage, s.now())
		if err != nil {
			return err
		}

		if err := fn(u); err != nil {
			return err
		}

		if err := u.commit(ctx); err != nil {
			if isRevisionConflict(err) {
				logger.Warn(ctx, "ledger moved during operation, re-running",
					"ledger.operation", operation,
					"chain.revision", u.base.Revision,
				)
			}
			return err
		}

		appended = len(u.blocks)
		return nil
	})

	attrs := metric.WithAttributes(attribute.String("operation", operation))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.metrics.operationsFailed.Add(ctx, 1, attrs)
		return err
	}

	span.SetAttributes(attribute.Int("ledger.blocks_appended", appended))
	if appended > 0 {
		s.metrics.blocksAppended.Add(ctx, int64(appended), attrs)
	}

	return nil
}
