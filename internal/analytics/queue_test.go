package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"news_feed/internal/analytics/mocks"
	"news_feed/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newTestQueue(publisher Publisher, size int) *Queue {
	q := NewQueue(publisher, size, time.Second, testLogger)
	n := 0
	q.newID = func() string {
		n++
		return fmt.Sprintf("event-%d", n)
	}
	q.now = func() time.Time {
		return time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("CET", 3600))
	}
	return q
}

func runQueue(t *testing.T, q *Queue) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- q.Run(ctx) }()
	return func() {
		stop()
		select {
		case err := <-done:
			assert.ErrorIs(t, err, context.Canceled)
		case <-time.After(2 * time.Second):
			t.Fatal("queue did not stop")
		}
	}
}

func TestQueue_PublishesInOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)

	got := make(chan domain.Event, 4)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e *domain.Event) error {
			got <- *e
			return nil
		},
	).Times(4)

	q := newTestQueue(publisher, 8)
	q.InteractionSessionStarted()
	q.PromotedItemView("card-1", "creative-1")
	q.DisplayAdView("ad-1", "creative-2")
	q.SessionCardViewsCountChanged(8)

	stop := runQueue(t, q)
	defer stop()

	var events []domain.Event
	for range 4 {
		select {
		case e := <-got:
			events = append(events, e)
		case <-time.After(2 * time.Second):
			t.Fatal("event not published")
		}
	}

	require.Len(t, events, 4)
	assert.Equal(t, domain.EventInteractionSessionStarted, events[0].Kind)
	assert.Equal(t, "event-1", events[0].ID)
	assert.Equal(t, time.UTC, events[0].OccurredAt.Location())

	assert.Equal(t, domain.EventPromotedItemView, events[1].Kind)
	assert.Equal(t, "card-1", events[1].UUID)
	assert.Equal(t, "creative-1", events[1].CreativeInstanceID)

	assert.Equal(t, domain.EventDisplayAdView, events[2].Kind)
	assert.Equal(t, "ad-1", events[2].UUID)

	assert.Equal(t, domain.EventSessionCardViewsCountChanged, events[3].Kind)
	assert.Equal(t, 8, events[3].Count)
}

func TestQueue_DropsWhenFull(t *testing.T) {
	q := newTestQueue(nil, 2)

	q.InteractionSessionStarted()
	q.InteractionSessionStarted()
	q.InteractionSessionStarted()

	assert.Equal(t, 2, q.Len())
}

func TestQueue_NoRetryOnPublishError(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)

	called := make(chan struct{}, 2)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, *domain.Event) error {
			called <- struct{}{}
			return errors.New("broker down")
		},
	).Times(1)

	q := newTestQueue(publisher, 4)
	q.SessionCardViewsCountChanged(4)

	stop := runQueue(t, q)

	select {
	case <-called:
	case <-time.After(2 * time.Second):
		t.Fatal("event not published")
	}
	// Give a retry, if any, the chance to show up before stopping.
	time.Sleep(50 * time.Millisecond)
	stop()

	assert.Len(t, called, 0)
	assert.Equal(t, 0, q.Len())
}

func TestQueue_NilPublisherDiscards(t *testing.T) {
	q := newTestQueue(nil, 4)
	q.InteractionSessionStarted()
	q.SessionCardViewsCountChanged(4)

	stop := runQueue(t, q)
	require.Eventually(t, func() bool { return q.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	stop()
}

func TestQueue_DropsBufferedEventsOnShutdown(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	q := newTestQueue(publisher, 4)
	q.InteractionSessionStarted()
	q.PromotedItemView("card-1", "creative-1")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := q.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, q.Len())
}
