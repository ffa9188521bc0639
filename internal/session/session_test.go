package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news_feed/internal/domain"
)

func assembled(hash string, ids ...string) *domain.AssembledFeed {
	feed := &domain.AssembledFeed{Hash: hash}
	for _, id := range ids {
		feed.Cards = append(feed.Cards, &domain.FeedCard{ID: id, Type: domain.CardHeadline})
	}
	return feed
}

func TestApply_CurrentGeneration(t *testing.T) {
	s := New("tab-1")
	gen := s.Begin()

	require.True(t, s.Apply(gen, assembled("h", "a", "b")))

	assert.True(t, s.Loaded())
	assert.Equal(t, "h", s.Hash())
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "b", s.Card(1).ID)
	assert.Nil(t, s.Card(2))
	assert.Nil(t, s.Card(-1))
}

func TestApply_StaleGenerationIgnored(t *testing.T) {
	s := New("tab-1")
	stale := s.Begin()
	fresh := s.Begin()

	assert.False(t, s.Apply(stale, assembled("old", "x")))
	assert.False(t, s.Loaded())
	assert.Equal(t, 0, s.Len())

	assert.True(t, s.Apply(fresh, assembled("new", "y")))
	assert.Equal(t, "new", s.Hash())
}

func TestApply_AfterClose(t *testing.T) {
	s := New("tab-1")
	gen := s.Begin()
	s.Close()

	assert.False(t, s.Current(gen))
	assert.False(t, s.Apply(gen, assembled("h", "a")))
	assert.True(t, s.Closed())
	assert.Equal(t, 0, s.Len())
}

func TestBegin_ClearsCards(t *testing.T) {
	s := New("tab-1")
	require.True(t, s.Apply(s.Begin(), assembled("h", "a")))

	s.Begin()

	assert.Equal(t, 0, s.Len())
	assert.False(t, s.Loaded())
}

func TestCards_Snapshot(t *testing.T) {
	s := New("tab-1")
	require.True(t, s.Apply(s.Begin(), assembled("h", "a", "b")))

	snap := s.Cards()
	snap[0] = nil

	assert.NotNil(t, s.Card(0))
}
