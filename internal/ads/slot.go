// Package ads holds the display ad most recently resolved by the ad service.
package ads

import (
	"sync/atomic"

	"news_feed/internal/domain"
)

// Slot is the single "current ad" reference read at impression time.
type Slot struct {
	current atomic.Pointer[domain.DisplayAd]
}

func NewSlot() *Slot {
	return &Slot{}
}

// Set replaces the current ad; nil clears it.
func (s *Slot) Set(ad *domain.DisplayAd) {
	if ad == nil {
		s.current.Store(nil)
		return
	}
	cp := *ad
	s.current.Store(&cp)
}

// Current returns a copy of the current ad, or nil if none is resolved.
func (s *Slot) Current() *domain.DisplayAd {
	ad := s.current.Load()
	if ad == nil {
		return nil
	}
	cp := *ad
	return &cp
}
