// Package session holds the card list of one browser tab's feed.
package session

import (
	"sync"

	"news_feed/internal/domain"
)

// Session is owned by a single tab. A fetch started under one generation is
// only applied if no refresh or close happened in the meantime.
type Session struct {
	tabID string

	mu         sync.Mutex
	cards      []*domain.FeedCard
	hash       string
	loaded     bool
	generation uint64
	closed     bool
}

func New(tabID string) *Session {
	return &Session{tabID: tabID}
}

func (s *Session) TabID() string {
	return s.tabID
}

// Begin drops the current cards and starts a new load generation.
func (s *Session) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cards = nil
	s.loaded = false
	s.generation++
	return s.generation
}

// Apply installs the result of the load started by Begin. It reports false,
// leaving the session untouched, when gen is no longer current.
func (s *Session) Apply(gen uint64, feed *domain.AssembledFeed) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || gen != s.generation {
		return false
	}

	if feed != nil {
		s.cards = append(s.cards, feed.Cards...)
		s.hash = feed.Hash
	}
	s.loaded = true
	return true
}

// Current reports whether gen is still the live generation.
func (s *Session) Current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && gen == s.generation
}

// Cards returns a snapshot of the card list.
func (s *Session) Cards() []*domain.FeedCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*domain.FeedCard, len(s.cards))
	copy(out, s.cards)
	return out
}

// Card returns the card at position, or nil when out of range.
func (s *Session) Card(position int) *domain.FeedCard {
	s.mu.Lock()
	defer s.mu.Unlock()

	if position < 0 || position >= len(s.cards) {
		return nil
	}
	return s.cards[position]
}

func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.cards)
}

func (s *Session) Hash() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hash
}

func (s *Session) Loaded() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loaded
}

// Close invalidates every pending generation and drops the cards.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.cards = nil
	s.loaded = false
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
