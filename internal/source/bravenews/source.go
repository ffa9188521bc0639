package bravenews

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"news_feed/internal/domain"
)

const (
	SourceID   = "bravenews"
	SourceName = "Brave News"
)

// Config holds feed endpoint configuration.
type Config struct {
	BaseURL        string
	Timeout        time.Duration
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

// Source fetches the aggregated JSON feed.
type Source struct {
	httpClient     *http.Client
	baseURL        string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	logger         *slog.Logger
}

// New creates a new feed source.
func New(cfg Config, logger *slog.Logger) *Source {
	maxAttempts := cfg.MaxAttempts
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	return &Source{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL:        cfg.BaseURL,
		maxAttempts:    maxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		logger:         logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// FetchFeed downloads and converts the current feed.
func (s *Source) FetchFeed(ctx context.Context) (*domain.Feed, error) {
	resp, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	feed := s.transform(resp)

	s.logger.Debug("fetched feed",
		"hash", feed.Hash,
		"pages", len(feed.Pages),
		"featured", feed.FeaturedItem != nil,
	)

	return feed, nil
}

func (s *Source) fetch(ctx context.Context) (*APIResponse, error) {
	var resp *APIResponse
	var err error

	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		resp, err = s.doRequest(ctx, s.baseURL)
		if err == nil {
			return resp, nil
		}

		if attempt == s.maxAttempts {
			break
		}

		backoff := s.calculateBackoff(attempt)
		s.logger.Warn("request failed, retrying",
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}

	return nil, fmt.Errorf("after %d attempts: %w", s.maxAttempts, err)
}

func (s *Source) doRequest(ctx context.Context, url string) (*APIResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "NewsFeed/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (s *Source) calculateBackoff(attempt int) time.Duration {
	backoff := s.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if backoff > s.maxBackoff {
		backoff = s.maxBackoff
	}
	return backoff
}

func (s *Source) transform(resp *APIResponse) *domain.Feed {
	feed := &domain.Feed{
		Hash:  resp.Hash,
		Pages: make([]domain.FeedPage, 0, len(resp.Pages)),
	}

	if resp.FeaturedItem != nil {
		if item, ok := s.transformItem(*resp.FeaturedItem); ok {
			feed.FeaturedItem = item
		}
	}

	for _, p := range resp.Pages {
		page := domain.FeedPage{Items: make([]domain.FeedPageItem, 0, len(p.Items))}

		for _, group := range p.Items {
			cardType, err := domain.ParseCardType(group.CardType)
			if err != nil {
				s.logger.Warn("skipping group", "card_type", group.CardType, "error", err)
				continue
			}

			pageItem := domain.FeedPageItem{CardType: cardType}
			for _, raw := range group.Items {
				if item, ok := s.transformItem(raw); ok {
					pageItem.Items = append(pageItem.Items, item)
				}
			}
			page.Items = append(page.Items, pageItem)
		}

		feed.Pages = append(feed.Pages, page)
	}

	return feed
}

func (s *Source) transformItem(raw APIItem) (domain.FeedItem, bool) {
	switch raw.Type {
	case itemArticle:
		return domain.Article{Data: s.transformMetadata(raw.Data)}, true
	case itemPromotedArticle:
		return domain.PromotedArticle{
			Data:               s.transformMetadata(raw.Data),
			CreativeInstanceID: raw.CreativeInstanceID,
		}, true
	case itemDeal:
		return domain.Deal{
			Data:           s.transformMetadata(raw.Data),
			OffersCategory: raw.OffersCategory,
		}, true
	case itemDisplayAd:
		return domain.DisplayAd{
			UUID:               raw.UUID,
			CreativeInstanceID: raw.CreativeInstanceID,
			Title:              raw.Title,
			Description:        raw.Description,
			ImageURL:           raw.ImageURL,
			TargetURL:          raw.TargetURL,
			CTAText:            raw.CTAText,
			Dimensions:         raw.Dimensions,
		}, true
	}

	s.logger.Warn("skipping item with unknown type", "type", raw.Type)
	return nil, false
}

func (s *Source) transformMetadata(m *APIMetadata) domain.ItemMetadata {
	if m == nil {
		return domain.ItemMetadata{}
	}

	meta := domain.ItemMetadata{
		Title:                   m.Title,
		Description:             m.Description,
		URL:                     m.URL,
		ImageURL:                m.ImageURL,
		PublisherID:             m.PublisherID,
		PublisherName:           m.PublisherName,
		CategoryName:            m.CategoryName,
		RelativeTimeDescription: m.RelativeTimeDescription,
		Score:                   m.Score,
	}

	if m.PublishTime != "" {
		publishedAt, err := time.Parse(time.RFC3339, m.PublishTime)
		if err != nil {
			s.logger.Warn("failed to parse publish time",
				"url", m.URL,
				"publish_time", m.PublishTime,
			)
		} else {
			meta.PublishTime = publishedAt
		}
	}

	return meta
}
