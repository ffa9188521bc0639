// Package tabs keeps the feed views of open tabs in a bounded cache.
package tabs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"news_feed/internal/feedview"
	"news_feed/internal/metrics"
)

const (
	reasonCapacity = "capacity"
	reasonClosed   = "closed"
	reasonShutdown = "shutdown"
)

// Factory builds the view for a tab seen for the first time.
type Factory func(tabID string) *feedview.View

type Registry struct {
	factory Factory
	closer  TabCloser
	logger  *slog.Logger

	// mu serializes cache mutations so onEvict sees the reason of the
	// operation that triggered it.
	mu     sync.Mutex
	cache  *lru.Cache[string, *feedview.View]
	reason string
}

func NewRegistry(capacity int, factory Factory, closer TabCloser, logger *slog.Logger) (*Registry, error) {
	r := &Registry{
		factory: factory,
		closer:  closer,
		logger:  logger.With("component", "tabs"),
		reason:  reasonCapacity,
	}

	cache, err := lru.NewWithEvict(capacity, r.onEvict)
	if err != nil {
		return nil, fmt.Errorf("create tab cache: %w", err)
	}
	r.cache = cache

	return r, nil
}

// View returns the view of a tab, creating it on first use.
func (r *Registry) View(tabID string) *feedview.View {
	r.mu.Lock()
	defer r.mu.Unlock()

	if view, ok := r.cache.Get(tabID); ok {
		return view
	}

	view := r.factory(tabID)
	r.cache.Add(tabID, view)
	metrics.ActiveSessions.Set(float64(r.cache.Len()))

	r.logger.Debug("tab view created", "tab_id", tabID)
	return view
}

// Lookup returns the view of a tab without creating one.
func (r *Registry) Lookup(tabID string) (*feedview.View, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cache.Get(tabID)
}

// Close handles a tab being closed: the view is dropped and the tab's
// persisted state deleted.
func (r *Registry) Close(ctx context.Context, tabID string) error {
	r.mu.Lock()
	r.reason = reasonClosed
	r.cache.Remove(tabID)
	r.reason = reasonCapacity
	metrics.ActiveSessions.Set(float64(r.cache.Len()))
	r.mu.Unlock()

	if err := r.closer.CloseTab(ctx, tabID); err != nil {
		return fmt.Errorf("close tab %s: %w", tabID, err)
	}

	r.logger.Info("tab closed", "tab_id", tabID)
	return nil
}

// Shutdown closes every cached view. Persisted state is kept.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.reason = reasonShutdown
	r.cache.Purge()
	r.reason = reasonCapacity
	metrics.ActiveSessions.Set(0)
}

func (r *Registry) Len() int {
	return r.cache.Len()
}

func (r *Registry) onEvict(tabID string, view *feedview.View) {
	view.Close()
	metrics.SessionEvictionsTotal.WithLabelValues(r.reason).Inc()

	if r.reason == reasonCapacity {
		r.logger.Info("tab session evicted", "tab_id", tabID)
	}
}
