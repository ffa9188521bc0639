// Package analytics buffers outbound analytics events and hands them to a
// publisher. Delivery is at-most-once: events are dropped when the buffer is
// full, when publishing fails, or when the queue stops.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"news_feed/internal/domain"
	"news_feed/internal/metrics"
)

const (
	statusQueued    = "queued"
	statusPublished = "published"
	statusFailed    = "failed"
	statusDropped   = "dropped"
)

type Queue struct {
	publisher Publisher
	events    chan domain.Event
	timeout   time.Duration
	newID     func() string
	now       func() time.Time
	logger    *slog.Logger
}

// NewQueue creates a queue holding up to size events. A nil publisher is
// allowed; events are then logged and discarded.
func NewQueue(publisher Publisher, size int, timeout time.Duration, logger *slog.Logger) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{
		publisher: publisher,
		events:    make(chan domain.Event, size),
		timeout:   timeout,
		newID:     uuid.NewString,
		now:       time.Now,
		logger:    logger.With("component", "analytics"),
	}
}

func (q *Queue) PromotedItemView(id, creativeInstanceID string) {
	q.enqueue(domain.Event{
		Kind:               domain.EventPromotedItemView,
		UUID:               id,
		CreativeInstanceID: creativeInstanceID,
	})
}

func (q *Queue) DisplayAdView(id, creativeInstanceID string) {
	q.enqueue(domain.Event{
		Kind:               domain.EventDisplayAdView,
		UUID:               id,
		CreativeInstanceID: creativeInstanceID,
	})
}

func (q *Queue) SessionCardViewsCountChanged(count int) {
	q.enqueue(domain.Event{
		Kind:  domain.EventSessionCardViewsCountChanged,
		Count: count,
	})
}

func (q *Queue) InteractionSessionStarted() {
	q.enqueue(domain.Event{Kind: domain.EventInteractionSessionStarted})
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

func (q *Queue) enqueue(event domain.Event) {
	event.ID = q.newID()
	event.OccurredAt = q.now().UTC()

	select {
	case q.events <- event:
		metrics.RecordEvent(string(event.Kind), statusQueued)
	default:
		metrics.RecordEvent(string(event.Kind), statusDropped)
		q.logger.Warn("analytics queue full, dropping event", "kind", event.Kind, "event_id", event.ID)
	}
}

// Run publishes events until ctx is done. Events still buffered at that
// point are dropped.
func (q *Queue) Run(ctx context.Context) error {
	q.logger.Info("analytics queue started", "capacity", cap(q.events))

	for {
		select {
		case <-ctx.Done():
			q.drain()
			q.logger.Info("analytics queue stopped")
			return ctx.Err()
		case event := <-q.events:
			q.publish(ctx, event)
		}
	}
}

func (q *Queue) publish(ctx context.Context, event domain.Event) {
	if ctx.Err() != nil {
		metrics.RecordEvent(string(event.Kind), statusDropped)
		return
	}
	if q.publisher == nil {
		metrics.RecordEvent(string(event.Kind), statusDropped)
		q.logger.Debug("no publisher configured, dropping event", "kind", event.Kind, "event_id", event.ID)
		return
	}

	pubCtx := ctx
	if q.timeout > 0 {
		var cancel context.CancelFunc
		pubCtx, cancel = context.WithTimeout(ctx, q.timeout)
		defer cancel()
	}

	if err := q.publisher.Publish(pubCtx, &event); err != nil {
		metrics.RecordEvent(string(event.Kind), statusFailed)
		q.logger.Warn("failed to publish event", "kind", event.Kind, "event_id", event.ID, "error", err)
		return
	}
	metrics.RecordEvent(string(event.Kind), statusPublished)
}

func (q *Queue) drain() {
	dropped := 0
	for {
		select {
		case event := <-q.events:
			metrics.RecordEvent(string(event.Kind), statusDropped)
			dropped++
		default:
			if dropped > 0 {
				q.logger.Warn("dropped buffered events on shutdown", "count", dropped)
			}
			return
		}
	}
}
