package direct

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_feed/internal/domain"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func rss(title string, items ...string) string {
	body := ""
	for _, it := range items {
		body += it
	}
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel><title>%s</title><link>https://example.com</link><description>d</description>%s</channel></rss>`, title, body)
}

func rssItem(title, link string, published time.Time) string {
	return fmt.Sprintf(`<item><title>%s</title><link>%s</link><description>desc</description><pubDate>%s</pubDate></item>`,
		title, link, published.Format(time.RFC1123Z))
}

func newFeedServer(t *testing.T, feeds map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := feeds[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestSource(urls ...string) *Source {
	s := New(Config{URLs: urls, Timeout: 2 * time.Second}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestFetchFeed_BuildsHeadlines(t *testing.T) {
	srv := newFeedServer(t, map[string]string{
		"/a.xml": rss("Feed A",
			rssItem("a-old", "https://a.example.com/old", fixedNow.Add(-48*time.Hour)),
			rssItem("a-new", "https://a.example.com/new", fixedNow.Add(-time.Hour)),
			`<item><title>undated</title><link>https://a.example.com/undated</link></item>`,
		),
		"/b.xml": rss("Feed B",
			rssItem("b-new", "https://b.example.com/new", fixedNow.Add(-10*time.Minute)),
		),
	})

	src := newTestSource(srv.URL+"/a.xml", srv.URL+"/b.xml", srv.URL+"/missing.xml")
	feed, err := src.FetchFeed(context.Background())
	require.NoError(t, err)

	require.NotNil(t, feed.FeaturedItem)
	require.Len(t, feed.Pages, 1)
	assert.Len(t, feed.Pages[0].Items, 2, "three dated articles, one featured")
	assert.NotEmpty(t, feed.Hash)

	all := []domain.FeedItem{feed.FeaturedItem}
	for _, g := range feed.Pages[0].Items {
		assert.Equal(t, domain.CardHeadline, g.CardType)
		require.Len(t, g.Items, 1)
		all = append(all, g.Items[0])
	}

	prev := -1.0
	for _, item := range all {
		meta := item.Meta()
		assert.GreaterOrEqual(t, meta.Score, prev, "sorted by score ascending")
		prev = meta.Score
		assert.Contains(t, meta.PublisherID, "direct:"+srv.URL)
		assert.NotEqual(t, "undated", meta.Title)
	}
}

func TestFetchFeed_VarietyWithinFeed(t *testing.T) {
	srv := newFeedServer(t, map[string]string{
		"/a.xml": rss("Feed A",
			rssItem("first", "https://a.example.com/1", fixedNow.Add(-time.Hour)),
			rssItem("second", "https://a.example.com/2", fixedNow.Add(-2*time.Hour)),
		),
	})

	feed, err := newTestSource(srv.URL + "/a.xml").FetchFeed(context.Background())
	require.NoError(t, err)

	first := feed.FeaturedItem.Meta()
	second := feed.Pages[0].Items[0].Items[0].Meta()

	assert.Equal(t, "first", first.Title)
	assert.InDelta(t, score(time.Hour)*2, first.Score, 1e-9)
	assert.InDelta(t, score(2*time.Hour)*4, second.Score, 1e-9)
	assert.Equal(t, "1 hour ago", first.RelativeTimeDescription)
	assert.Equal(t, "2 hours ago", second.RelativeTimeDescription)
}

func TestFetchFeed_HashStable(t *testing.T) {
	srv := newFeedServer(t, map[string]string{
		"/a.xml": rss("A", rssItem("x", "https://a.example.com/x", fixedNow.Add(-time.Hour))),
		"/b.xml": rss("B", rssItem("y", "https://b.example.com/y", fixedNow.Add(-time.Hour))),
	})

	ab, err := newTestSource(srv.URL+"/a.xml", srv.URL+"/b.xml").FetchFeed(context.Background())
	require.NoError(t, err)
	ba, err := newTestSource(srv.URL+"/b.xml", srv.URL+"/a.xml").FetchFeed(context.Background())
	require.NoError(t, err)

	assert.Equal(t, ab.Hash, ba.Hash)
}

func TestBuildFeed_HashOfSortedURLs(t *testing.T) {
	article := func(url string) domain.Article {
		return domain.Article{Data: domain.ItemMetadata{URL: url}}
	}

	feed := buildFeed([]domain.Article{article("https://b.example.com/2"), article("https://a.example.com/1")})

	sum := sha256.Sum256([]byte("https://a.example.com/1\x00https://b.example.com/2\x00"))
	assert.Equal(t, hex.EncodeToString(sum[:]), feed.Hash)

	other := buildFeed([]domain.Article{article("https://a.example.com/1")})
	assert.NotEqual(t, feed.Hash, other.Hash)
}

func TestFetchFeed_AllFeedsFail(t *testing.T) {
	srv := newFeedServer(t, map[string]string{"/junk.xml": "not a feed"})

	feed, err := newTestSource(srv.URL + "/junk.xml").FetchFeed(context.Background())
	require.NoError(t, err)
	assert.Nil(t, feed.FeaturedItem)
	assert.Empty(t, feed.Pages)
}

func TestVerifyFeedURL(t *testing.T) {
	srv := newFeedServer(t, map[string]string{
		"/ok.xml":    rss("ok", rssItem("x", "https://a.example.com/x", fixedNow.Add(-time.Hour))),
		"/empty.xml": rss("empty"),
	})
	src := newTestSource()

	assert.True(t, src.VerifyFeedURL(context.Background(), srv.URL+"/ok.xml"))
	assert.False(t, src.VerifyFeedURL(context.Background(), srv.URL+"/empty.xml"))
	assert.False(t, src.VerifyFeedURL(context.Background(), srv.URL+"/missing.xml"))
}

func TestScore(t *testing.T) {
	assert.Equal(t, 0.0, score(0))
	assert.Equal(t, 0.0, score(-time.Hour))
	assert.InDelta(t, 8.188689, score(time.Hour), 1e-6)
}
