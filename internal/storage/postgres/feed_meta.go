package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const feedHashKey = "feed_hash"

type FeedMetaStore struct {
	db *sqlx.DB
}

func NewFeedMetaStore(db *sqlx.DB) *FeedMetaStore {
	return &FeedMetaStore{db: db}
}

func (s *FeedMetaStore) GetFeedHash(ctx context.Context) (string, error) {
	var hash string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &hash,
		"SELECT value FROM feed_meta WHERE key = $1",
		feedHashKey,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	return hash, err
}

func (s *FeedMetaStore) SetFeedHash(ctx context.Context, hash string) error {
	query := `
		INSERT INTO feed_meta (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, feedHashKey, hash)
	return err
}
