package assembler

import (
	"log/slog"

	"github.com/google/uuid"

	"news_feed/internal/domain"
)

// Assembler flattens a paginated feed into display cards.
type Assembler struct {
	newID  func() string
	logger *slog.Logger
}

type Option func(*Assembler)

// WithIDGenerator replaces the UUID generator used for card ids.
func WithIDGenerator(fn func() string) Option {
	return func(a *Assembler) {
		a.newID = fn
	}
}

func New(logger *slog.Logger, opts ...Option) *Assembler {
	a := &Assembler{
		newID:  uuid.NewString,
		logger: logger,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the ordered card list: the featured item as a headline card
// (when present), one display ad placeholder, then every page group in fetch
// order. Groups other than display ads that carry no items are dropped.
func (a *Assembler) Assemble(feed *domain.Feed) *domain.AssembledFeed {
	if feed == nil {
		return &domain.AssembledFeed{}
	}

	cards := make([]*domain.FeedCard, 0, 2+countGroups(feed))

	if feed.FeaturedItem != nil {
		cards = append(cards, &domain.FeedCard{
			ID:    a.newID(),
			Type:  domain.CardHeadline,
			Items: []domain.FeedItem{feed.FeaturedItem},
		})
	}

	// Not an ad: marks the row where the client should request one.
	cards = append(cards, &domain.FeedCard{
		ID:        a.newID(),
		Type:      domain.CardDisplayAd,
		DisplayAd: &domain.DisplayAd{},
	})

	skipped := 0
	for _, page := range feed.Pages {
		for _, group := range page.Items {
			if group.CardType != domain.CardDisplayAd && len(group.Items) == 0 {
				skipped++
				continue
			}
			items := make([]domain.FeedItem, len(group.Items))
			copy(items, group.Items)
			cards = append(cards, &domain.FeedCard{
				ID:    a.newID(),
				Type:  group.CardType,
				Items: items,
			})
		}
	}

	a.logger.Debug("assembled feed",
		"pages", len(feed.Pages),
		"cards", len(cards),
		"skipped_groups", skipped,
		"hash", feed.Hash,
	)

	return &domain.AssembledFeed{
		Cards: cards,
		Hash:  feed.Hash,
	}
}

func countGroups(feed *domain.Feed) int {
	n := 0
	for _, page := range feed.Pages {
		n += len(page.Items)
	}
	return n
}
