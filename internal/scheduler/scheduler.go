package scheduler

import (
	"context"
	"log/slog"
	"time"
)

const defaultRunTimeout = 30 * time.Second

// Checker defines the interface for feed update checks.
type Checker interface {
	CheckForUpdate(ctx context.Context) (bool, error)
}

type Scheduler struct {
	checker    Checker
	interval   time.Duration
	runTimeout time.Duration
	logger     *slog.Logger
}

func NewScheduler(checker Checker, interval, runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = defaultRunTimeout
	}
	return &Scheduler{
		checker:    checker,
		interval:   interval,
		runTimeout: runTimeout,
		logger:     logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("update checker started", "interval", s.interval)

	s.runCheck(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("update checker stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runCheck(ctx)
		}
	}
}

func (s *Scheduler) runCheck(ctx context.Context) {
	checkCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	available, err := s.checker.CheckForUpdate(checkCtx)
	if err != nil {
		s.logger.Error("update check failed", "error", err)
		return
	}
	if available {
		s.logger.Info("feed update available")
	}
}
