package feedview

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_feed/internal/domain"
)

// Feed is the persistence and loading side a view depends on.
type Feed interface {
	Load(ctx context.Context, tabID string) (*domain.AssembledFeed, error)
	StartSession(ctx context.Context, tabID string) error
	ResumeIndex(ctx context.Context, tabID string) (int, error)
	SaveResumeIndex(ctx context.Context, tabID string, index int) error
	RecordCardView(ctx context.Context, tabID string) (int, error)
	UpdateAvailable(ctx context.Context) bool
}

type Analytics interface {
	PromotedItemView(uuid, creativeInstanceID string)
	DisplayAdView(uuid, creativeInstanceID string)
	SessionCardViewsCountChanged(count int)
	InteractionSessionStarted()
}

type AdProvider interface {
	Current() *domain.DisplayAd
}
