package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_feed/internal/domain"
)

type Source interface {
	ID() string
	Name() string
	FetchFeed(ctx context.Context) (*domain.Feed, error)
}

type TabStateStore interface {
	GetResumeIndex(ctx context.Context, tabID string) (int, error)
	SetResumeIndex(ctx context.Context, tabID string, index int) error
	GetViewedCount(ctx context.Context, tabID string) (int, error)
	IncrementViewedCount(ctx context.Context, tabID string) (int, error)
	ResetViewedCount(ctx context.Context, tabID string) error
	DeleteTab(ctx context.Context, tabID string) error
}

type FeedMetaStore interface {
	GetFeedHash(ctx context.Context) (string, error)
	SetFeedHash(ctx context.Context, hash string) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
