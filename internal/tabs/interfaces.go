package tabs

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import "context"

// TabCloser forgets the persisted state of a closed tab.
type TabCloser interface {
	CloseTab(ctx context.Context, tabID string) error
}
