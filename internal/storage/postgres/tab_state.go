package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"news_feed/internal/domain"
)

type TabStateStore struct {
	db *sqlx.DB
}

func NewTabStateStore(db *sqlx.DB) *TabStateStore {
	return &TabStateStore{db: db}
}

func (s *TabStateStore) GetTab(ctx context.Context, tabID string) (*domain.TabState, error) {
	var state domain.TabState
	query := `
		SELECT tab_id, resume_index, viewed_count, updated_at
		FROM tab_state
		WHERE tab_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &state, query, tabID)
	if errors.Is(err, sql.ErrNoRows) {
		// Unknown tabs read as a fresh session
		return &domain.TabState{TabID: tabID}, nil
	}
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *TabStateStore) GetResumeIndex(ctx context.Context, tabID string) (int, error) {
	state, err := s.GetTab(ctx, tabID)
	if err != nil {
		return 0, err
	}
	return state.ResumeIndex, nil
}

func (s *TabStateStore) SetResumeIndex(ctx context.Context, tabID string, index int) error {
	if index < 0 {
		return domain.ErrInvalidResumeIndex
	}

	query := `
		INSERT INTO tab_state (tab_id, resume_index, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (tab_id) DO UPDATE SET
			resume_index = EXCLUDED.resume_index,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, tabID, index)
	return err
}

func (s *TabStateStore) GetViewedCount(ctx context.Context, tabID string) (int, error) {
	state, err := s.GetTab(ctx, tabID)
	if err != nil {
		return 0, err
	}
	return state.ViewedCount, nil
}

func (s *TabStateStore) IncrementViewedCount(ctx context.Context, tabID string) (int, error) {
	query := `
		INSERT INTO tab_state (tab_id, viewed_count, updated_at)
		VALUES ($1, 1, NOW())
		ON CONFLICT (tab_id) DO UPDATE SET
			viewed_count = tab_state.viewed_count + 1,
			updated_at = EXCLUDED.updated_at
		RETURNING viewed_count`

	var count int
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query, tabID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (s *TabStateStore) ResetViewedCount(ctx context.Context, tabID string) error {
	query := `
		INSERT INTO tab_state (tab_id, viewed_count, updated_at)
		VALUES ($1, 0, NOW())
		ON CONFLICT (tab_id) DO UPDATE SET
			viewed_count = 0,
			updated_at = EXCLUDED.updated_at`

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, query, tabID)
	return err
}

func (s *TabStateStore) DeleteTab(ctx context.Context, tabID string) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"DELETE FROM tab_state WHERE tab_id = $1",
		tabID,
	)
	return err
}
