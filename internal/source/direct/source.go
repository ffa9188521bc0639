// Package direct builds a feed straight from publisher RSS, Atom and JSON
// feeds instead of the aggregated endpoint.
package direct

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"sort"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"golang.org/x/sync/errgroup"

	"news_feed/internal/domain"
)

const (
	SourceID   = "direct"
	SourceName = "Direct feeds"

	publisherPrefix = "direct:"
	userAgent       = "NewsFeed/1.0"
	maxParallel     = 8
)

type Config struct {
	URLs    []string
	Timeout time.Duration
}

// Source downloads a fixed list of publisher feeds in parallel.
type Source struct {
	urls   []string
	parse  func(ctx context.Context, url string) (*gofeed.Feed, error)
	now    func() time.Time
	logger *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Source {
	parser := gofeed.NewParser()
	parser.UserAgent = userAgent
	parser.Client = &http.Client{Timeout: cfg.Timeout}

	return &Source{
		urls: cfg.URLs,
		parse: func(ctx context.Context, url string) (*gofeed.Feed, error) {
			return parser.ParseURLWithContext(url, ctx)
		},
		now:    time.Now,
		logger: logger.With("source", SourceID),
	}
}

func (s *Source) ID() string {
	return SourceID
}

func (s *Source) Name() string {
	return SourceName
}

// FetchFeed downloads every configured feed. A feed that cannot be fetched or
// parsed contributes no articles; it never fails the whole fetch.
func (s *Source) FetchFeed(ctx context.Context) (*domain.Feed, error) {
	var (
		mu       sync.Mutex
		articles []domain.Article
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for _, url := range s.urls {
		g.Go(func() error {
			got := s.download(gctx, url)
			mu.Lock()
			articles = append(articles, got...)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Per-feed variety was applied in download; order across feeds by score.
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Data.Score < articles[j].Data.Score
	})

	s.logger.Debug("direct feeds retrieved", "feeds", len(s.urls), "articles", len(articles))

	return buildFeed(articles), nil
}

// VerifyFeedURL reports whether url is reachable and yields at least one
// usable article.
func (s *Source) VerifyFeedURL(ctx context.Context, url string) bool {
	return len(s.download(ctx, url)) > 0
}

func (s *Source) download(ctx context.Context, url string) []domain.Article {
	parsed, err := s.parse(ctx, url)
	if err != nil {
		s.logger.Warn("feed download failed", "url", url, "error", err)
		return nil
	}

	now := s.now()
	articles := make([]domain.Article, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item == nil || item.PublishedParsed == nil || item.Link == "" {
			continue
		}
		articles = append(articles, toArticle(item, url, parsed.Title, now))
	}

	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].Data.Score < articles[j].Data.Score
	})
	variety := 2.0
	for i := range articles {
		articles[i].Data.Score *= variety
		variety *= 2
	}

	s.logger.Debug("feed parsed", "url", url, "articles", len(articles))
	return articles
}

func toArticle(item *gofeed.Item, feedURL, feedTitle string, now time.Time) domain.Article {
	published := item.PublishedParsed.UTC()
	age := now.Sub(published)

	meta := domain.ItemMetadata{
		Title:                   item.Title,
		Description:             item.Description,
		URL:                     item.Link,
		PublisherID:             publisherPrefix + feedURL,
		PublisherName:           feedTitle,
		PublishTime:             published,
		RelativeTimeDescription: relativeTime(age),
		Score:                   score(age),
	}
	if item.Image != nil {
		meta.ImageURL = item.Image.URL
	}
	if len(item.Categories) > 0 {
		meta.CategoryName = item.Categories[0]
	}

	return domain.Article{Data: meta}
}

// score is |ln(seconds since publish)|; items from the future or the current
// second score as one second old.
func score(age time.Duration) float64 {
	seconds := math.Max(age.Seconds(), 1)
	return math.Abs(math.Log(seconds))
}

func relativeTime(age time.Duration) string {
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return plural(int(age/time.Minute), "minute")
	case age < 24*time.Hour:
		return plural(int(age/time.Hour), "hour")
	default:
		return plural(int(age/(24*time.Hour)), "day")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}

func buildFeed(articles []domain.Article) *domain.Feed {
	urls := make([]string, len(articles))
	for i, a := range articles {
		urls[i] = a.Data.URL
	}
	sort.Strings(urls)

	h := sha256.New()
	for _, u := range urls {
		h.Write([]byte(u))
		h.Write([]byte{0})
	}
	feed := &domain.Feed{Hash: hex.EncodeToString(h.Sum(nil))}

	if len(articles) == 0 {
		return feed
	}

	feed.FeaturedItem = articles[0]

	page := domain.FeedPage{Items: make([]domain.FeedPageItem, 0, len(articles)-1)}
	for _, a := range articles[1:] {
		page.Items = append(page.Items, domain.FeedPageItem{
			CardType: domain.CardHeadline,
			Items:    []domain.FeedItem{a},
		})
	}
	feed.Pages = []domain.FeedPage{page}

	return feed
}
