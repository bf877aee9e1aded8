// Package audit runs the ledger integrity verification on a schedule and
// publishes every report it produces.
package audit

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gabapcia/forgeledger/internal/ledger"
	"github.com/gabapcia/forgeledger/internal/pkg/logger"
	"github.com/gabapcia/forgeledger/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"github.com/robfig/cron"
)

// DefaultSchedule runs an audit once a minute.
const DefaultSchedule = "@every 1m"

// ErrServiceAlreadyStarted is returned if Start is called more than once.
//
// The service must be started only once per lifecycle.
var ErrServiceAlreadyStarted = errors.New("service already started")

// Verifier is the part of the ledger the auditor depends on.
type Verifier interface {
	Verify(ctx context.Context) (ledger.Report, error)
}

// Service defines the audit lifecycle.
type Service interface {
	// Start schedules the audit runs and returns the channel their reports
	// are published on. The channel is closed by Close.
	//
	// Returns ErrServiceAlreadyStarted if Start is called more than once.
	Start(ctx context.Context) (<-chan ledger.Report, error)

	// Close stops the schedule, waits for a running audit to finish and
	// closes the reports channel. It is safe to call Close even if the
	// service was never started.
	Close()
}

// closeFunc defines a cleanup routine to stop the scheduler and its runs.
type closeFunc func()

type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool       // ensures Start is called only once
	closeFunc closeFunc  // stops the scheduler and closes the reports channel

	running sync.Mutex // held for the duration of one audit run

	verifier Verifier
	schedule cron.Schedule
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = new(service)

// run performs one audit and forwards the report to reportsCh.
//
// A run is skipped when the previous one is still in progress, which also
// happens when nobody is reading reportsCh.
func (s *service) run(ctx context.Context, reportsCh chan<- ledger.Report) {
	if !s.running.TryLock() {
		logger.Warn(ctx, "previous audit still running, skipping")
		return
	}
	defer s.running.Unlock()

	if ctx.Err() != nil {
		return
	}

	ctx = logger.Derive(ctx, "audit.run_id", uuid.Must(uuid.NewV7()).String())

	report, err := s.verifier.Verify(ctx)
	if err != nil {
		logger.Error(ctx, "audit failed", "error", err)
		return
	}

	if report.OK() {
		logger.Info(ctx, "audit passed",
			"chain.blocks", report.Blocks,
			"chain.wallets", report.Wallets,
			"chain.head", report.HeadHash,
		)
	} else {
		logger.Error(ctx, "audit found discrepancies",
			"chain.blocks", report.Blocks,
			"chain.discrepancies", len(report.Discrepancies),
			"error", report.Err(),
		)
	}

	chflow.Send(ctx, reportsCh, report)
}

// Start launches the cron scheduler. The first audit runs at the first
// activation of the schedule, not immediately.
func (s *service) Start(ctx context.Context) (<-chan ledger.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return nil, ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	reportsCh := make(chan ledger.Report)

	scheduler := cron.New()
	scheduler.Schedule(s.schedule, cron.FuncJob(func() {
		s.run(ctx, reportsCh)
	}))
	scheduler.Start()

	s.closeFunc = func() {
		cancel()
		scheduler.Stop()

		// Wait for an in-flight run. Any run scheduled after this point
		// sees the canceled context and returns without sending.
		s.running.Lock()
		close(reportsCh)
		s.running.Unlock()
	}
	s.isStarted = true

	logger.Info(ctx, "audit scheduler started")
	return reportsCh, nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

// New creates an audit service that verifies v following the cron
// expression expr. An empty expr selects DefaultSchedule.
func New(v Verifier, expr string) (*service, error) {
	if expr == "" {
		expr = DefaultSchedule
	}

	schedule, err := cron.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid audit schedule %q: %w", expr, err)
	}

	return &service{
		verifier: v,
		schedule: schedule,
	}, nil
}
