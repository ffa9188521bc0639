package analytics

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"news_feed/internal/domain"
)

type Publisher interface {
	Publish(ctx context.Context, event *domain.Event) error
}
