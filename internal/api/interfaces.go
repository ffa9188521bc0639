package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import "context"

type UpdateChecker interface {
	UpdateAvailable(ctx context.Context) bool
}

// FeedVerifier is implemented by sources that can validate a feed URL.
type FeedVerifier interface {
	VerifyFeedURL(ctx context.Context, url string) bool
}
