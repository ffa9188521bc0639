// Package boltdb keeps per-tab feed state in an embedded bbolt file.
package boltdb

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"news_feed/internal/domain"
)

var (
	tabsBucket = []byte("tabs")
	metaBucket = []byte("metadata")

	feedHashKey = []byte("feed_hash")
)

type Store struct {
	db  *bolt.DB
	now func() time.Time
}

func NewStore(path string, timeout time.Duration) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: timeout})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{tabsBucket, metaBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create buckets: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetResumeIndex(ctx context.Context, tabID string) (int, error) {
	state, err := s.get(ctx, tabID)
	if err != nil {
		return 0, err
	}
	return state.ResumeIndex, nil
}

func (s *Store) SetResumeIndex(ctx context.Context, tabID string, index int) error {
	if index < 0 {
		return domain.ErrInvalidResumeIndex
	}
	return s.modify(ctx, tabID, func(state *domain.TabState) {
		state.ResumeIndex = index
	})
}

func (s *Store) GetViewedCount(ctx context.Context, tabID string) (int, error) {
	state, err := s.get(ctx, tabID)
	if err != nil {
		return 0, err
	}
	return state.ViewedCount, nil
}

func (s *Store) IncrementViewedCount(ctx context.Context, tabID string) (int, error) {
	var count int
	err := s.modify(ctx, tabID, func(state *domain.TabState) {
		state.ViewedCount++
		count = state.ViewedCount
	})
	return count, err
}

func (s *Store) ResetViewedCount(ctx context.Context, tabID string) error {
	return s.modify(ctx, tabID, func(state *domain.TabState) {
		state.ViewedCount = 0
	})
}

func (s *Store) DeleteTab(ctx context.Context, tabID string) error {
	return s.update(ctx, func(tx *bolt.Tx) error {
		return tx.Bucket(tabsBucket).Delete([]byte(tabID))
	})
}

// GetTab returns the stored state of a tab; unknown tabs read as zero.
func (s *Store) GetTab(ctx context.Context, tabID string) (*domain.TabState, error) {
	return s.get(ctx, tabID)
}

func (s *Store) GetFeedHash(ctx context.Context) (string, error) {
	var hash string
	err := s.view(ctx, func(tx *bolt.Tx) error {
		hash = string(tx.Bucket(metaBucket).Get(feedHashKey))
		return nil
	})
	return hash, err
}

func (s *Store) SetFeedHash(ctx context.Context, hash string) error {
	return s.update(ctx, func(tx *bolt.Tx) error {
		return tx.Bucket(metaBucket).Put(feedHashKey, []byte(hash))
	})
}

func (s *Store) get(ctx context.Context, tabID string) (*domain.TabState, error) {
	state := &domain.TabState{TabID: tabID}
	err := s.view(ctx, func(tx *bolt.Tx) error {
		data := tx.Bucket(tabsBucket).Get([]byte(tabID))
		if data == nil {
			return nil
		}
		return json.Unmarshal(data, state)
	})
	if err != nil {
		return nil, fmt.Errorf("read tab %s: %w", tabID, err)
	}
	return state, nil
}

func (s *Store) modify(ctx context.Context, tabID string, fn func(state *domain.TabState)) error {
	err := s.update(ctx, func(tx *bolt.Tx) error {
		b := tx.Bucket(tabsBucket)

		state := domain.TabState{TabID: tabID}
		if data := b.Get([]byte(tabID)); data != nil {
			if err := json.Unmarshal(data, &state); err != nil {
				return err
			}
		}

		fn(&state)
		state.UpdatedAt = s.now().UTC()

		data, err := json.Marshal(state)
		if err != nil {
			return err
		}
		return b.Put([]byte(tabID), data)
	})
	if err != nil {
		return fmt.Errorf("write tab %s: %w", tabID, err)
	}
	return nil
}

func (s *Store) view(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if tx := GetTxFromContext(ctx); tx != nil {
		return fn(tx)
	}
	return s.db.View(fn)
}

func (s *Store) update(ctx context.Context, fn func(tx *bolt.Tx) error) error {
	if tx := GetTxFromContext(ctx); tx != nil {
		return fn(tx)
	}
	return s.db.Update(fn)
}
