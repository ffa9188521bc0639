package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"news_feed/internal/assembler"
	"news_feed/internal/domain"
	"news_feed/internal/metrics"
)

type FeedService struct {
	source    Source
	sourceID  string
	assembler *assembler.Assembler
	tabs      TabStateStore
	meta      FeedMetaStore
	txManager TransactionManager
	logger    *slog.Logger

	// One fetch in flight per tab; later callers share its result.
	fetches singleflight.Group

	mu         sync.RWMutex
	remoteHash string
}

func NewFeedService(
	source Source,
	asm *assembler.Assembler,
	tabs TabStateStore,
	meta FeedMetaStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *FeedService {
	return &FeedService{
		source:    source,
		sourceID:  source.ID(),
		assembler: asm,
		tabs:      tabs,
		meta:      meta,
		txManager: txManager,
		logger:    logger.With("source", source.ID()),
	}
}

// Load fetches and assembles the feed for a tab. Fetch failures are logged
// and produce an empty feed; only cancellation of ctx is returned as an error.
func (s *FeedService) Load(ctx context.Context, tabID string) (*domain.AssembledFeed, error) {
	ch := s.fetches.DoChan(tabID, func() (any, error) {
		return s.load(context.WithoutCancel(ctx), tabID), nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			s.logger.Debug("joined in-flight fetch", "tab_id", tabID)
		}
		return res.Val.(*domain.AssembledFeed), nil
	}
}

func (s *FeedService) load(ctx context.Context, tabID string) *domain.AssembledFeed {
	startTime := time.Now()
	s.logger.Info("fetching feed", "tab_id", tabID)

	feed, err := s.source.FetchFeed(ctx)
	if err != nil {
		metrics.RecordFetch(s.sourceID, "error", time.Since(startTime).Seconds())
		s.logger.Warn("feed fetch failed", "tab_id", tabID, "error", err)
		return &domain.AssembledFeed{}
	}
	if feed == nil {
		metrics.RecordFetch(s.sourceID, "empty", time.Since(startTime).Seconds())
		s.logger.Info("feed source returned no data", "tab_id", tabID)
		return &domain.AssembledFeed{}
	}

	assembled := s.assembler.Assemble(feed)

	if err := s.meta.SetFeedHash(ctx, feed.Hash); err != nil {
		s.logger.Warn("failed to store feed hash", "error", err)
	}
	s.setRemoteHash(feed.Hash)
	metrics.SetUpdateAvailable(false)

	metrics.RecordFetch(s.sourceID, "ok", time.Since(startTime).Seconds())
	metrics.CardsAssembled.Observe(float64(len(assembled.Cards)))

	s.logger.Info("feed loaded",
		"tab_id", tabID,
		"cards", len(assembled.Cards),
		"hash", assembled.Hash,
		"duration", time.Since(startTime),
	)

	return assembled
}

// StartSession marks the start of a fresh feed session for a tab: the viewed
// card counter restarts and the resume index leaves the "no session" value.
func (s *FeedService) StartSession(ctx context.Context, tabID string) error {
	err := s.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := s.tabs.ResetViewedCount(txCtx, tabID); err != nil {
			return fmt.Errorf("reset viewed count: %w", err)
		}
		if err := s.tabs.SetResumeIndex(txCtx, tabID, 1); err != nil {
			return fmt.Errorf("set resume index: %w", err)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	return nil
}

func (s *FeedService) ResumeIndex(ctx context.Context, tabID string) (int, error) {
	return s.tabs.GetResumeIndex(ctx, tabID)
}

func (s *FeedService) SaveResumeIndex(ctx context.Context, tabID string, index int) error {
	return s.tabs.SetResumeIndex(ctx, tabID, index)
}

func (s *FeedService) RecordCardView(ctx context.Context, tabID string) (int, error) {
	return s.tabs.IncrementViewedCount(ctx, tabID)
}

func (s *FeedService) ViewedCount(ctx context.Context, tabID string) (int, error) {
	return s.tabs.GetViewedCount(ctx, tabID)
}

// CloseTab forgets everything stored for a tab.
func (s *FeedService) CloseTab(ctx context.Context, tabID string) error {
	if err := s.tabs.DeleteTab(ctx, tabID); err != nil {
		return fmt.Errorf("delete tab: %w", err)
	}
	return nil
}

// CheckForUpdate fetches the remote feed and reports whether its hash differs
// from the one last served.
func (s *FeedService) CheckForUpdate(ctx context.Context) (bool, error) {
	feed, err := s.source.FetchFeed(ctx)
	if err != nil {
		return false, fmt.Errorf("fetch feed: %w", err)
	}
	if feed == nil {
		return false, nil
	}

	s.setRemoteHash(feed.Hash)
	available := s.UpdateAvailable(ctx)
	metrics.SetUpdateAvailable(available)

	s.logger.Debug("checked for feed update", "remote_hash", feed.Hash, "available", available)
	return available, nil
}

// UpdateAvailable compares the stored hash with the last remote hash seen.
func (s *FeedService) UpdateAvailable(ctx context.Context) bool {
	remote := s.getRemoteHash()
	if remote == "" {
		return false
	}

	stored, err := s.meta.GetFeedHash(ctx)
	if err != nil {
		s.logger.Warn("failed to read feed hash", "error", err)
		return false
	}
	return stored != remote
}

func (s *FeedService) setRemoteHash(hash string) {
	s.mu.Lock()
	s.remoteHash = hash
	s.mu.Unlock()
}

func (s *FeedService) getRemoteHash() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.remoteHash
}
