// Package scheduler はキャッシュ温めジョブを cron で定期実行します。
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	cryptousecase "crypto_backend/internal/feature/crypto/usecase"
	pairentity "crypto_backend/internal/feature/pairs/domain/entity"
)

// PairLister は追跡ペアの一覧を返します。
type PairLister interface {
	ListActivePairs(ctx context.Context) ([]pairentity.Pair, error)
}

// Warmer は与えられたペアの時系列を取得してキャッシュを温めます。
type Warmer interface {
	WarmAll(ctx context.Context, pairs []cryptousecase.Pair) (int, error)
}

// Scheduler manages the warm job.
type Scheduler struct {
	cron    *cron.Cron
	pairs   PairLister
	warmer  Warmer
	timeout time.Duration
}

// NewScheduler creates a new Scheduler. Each run is bounded by timeout.
func NewScheduler(pairs PairLister, warmer Warmer, timeout time.Duration) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		pairs:   pairs,
		warmer:  warmer,
		timeout: timeout,
	}
}

// Register registers the warm job with a six-field cron expression.
func (s *Scheduler) Register(expr string) error {
	if _, err := s.cron.AddFunc(expr, func() {
		if err := s.RunNow(context.Background()); err != nil {
			slog.Error("warm job failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("register warm task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("scheduler started", "entries", len(s.cron.Entries()))
}

// Stop stops the cron scheduler and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("scheduler stopped")
}

// RunNow loads the active pairs and warms every series once.
func (s *Scheduler) RunNow(ctx context.Context) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	active, err := s.pairs.ListActivePairs(ctx)
	if err != nil {
		return fmt.Errorf("failed to load pairs: %w", err)
	}
	pairs := make([]cryptousecase.Pair, 0, len(active))
	for _, p := range active {
		pairs = append(pairs, cryptousecase.Pair{Symbol: p.Symbol, Market: p.Market})
	}

	start := time.Now()
	failed, err := s.warmer.WarmAll(ctx, pairs)
	if err != nil {
		return err
	}
	slog.Info("warm finished", "pairs", len(pairs), "failed", failed, "elapsed", time.Since(start))
	return nil
}
