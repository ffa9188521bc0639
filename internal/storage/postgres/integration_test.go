//go:build integration

package postgres

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"news_feed/internal/domain"
)

type PostgresIntegrationSuite struct {
	suite.Suite
	ctx       context.Context
	container *postgres.PostgresContainer
	db        *sqlx.DB
}

func (s *PostgresIntegrationSuite) SetupSuite() {
	s.ctx = context.Background()

	migrationsPath, err := filepath.Abs("../../../migrations")
	s.Require().NoError(err)

	container, err := postgres.Run(s.ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(
			filepath.Join(migrationsPath, "001_create_tab_state.up.sql"),
			filepath.Join(migrationsPath, "002_create_feed_meta.up.sql"),
		),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.container = container

	connStr, err := container.ConnectionString(s.ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := sqlx.Connect("postgres", connStr)
	s.Require().NoError(err)
	s.db = db
}

func (s *PostgresIntegrationSuite) TearDownSuite() {
	if s.db != nil {
		s.db.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *PostgresIntegrationSuite) SetupTest() {
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM tab_state")
	_, _ = s.db.ExecContext(s.ctx, "DELETE FROM feed_meta")
}

func TestPostgresIntegrationSuite(t *testing.T) {
	suite.Run(t, new(PostgresIntegrationSuite))
}

func (s *PostgresIntegrationSuite) TestTabState_ResumeIndexRoundTrip() {
	store := NewTabStateStore(s.db)

	for _, n := range []int{0, 1, 12, 400} {
		s.Require().NoError(store.SetResumeIndex(s.ctx, "tab-1", n))
		got, err := store.GetResumeIndex(s.ctx, "tab-1")
		s.NoError(err)
		s.Equal(n, got)
	}
}

func (s *PostgresIntegrationSuite) TestTabState_UnknownTab() {
	store := NewTabStateStore(s.db)

	state, err := store.GetTab(s.ctx, "nope")
	s.NoError(err)
	s.Equal("nope", state.TabID)
	s.Equal(0, state.ResumeIndex)
	s.Equal(0, state.ViewedCount)
}

func (s *PostgresIntegrationSuite) TestTabState_RejectsNegativeResume() {
	store := NewTabStateStore(s.db)

	err := store.SetResumeIndex(s.ctx, "tab-1", -3)
	s.True(errors.Is(err, domain.ErrInvalidResumeIndex))
}

func (s *PostgresIntegrationSuite) TestTabState_IncrementViewedCount() {
	store := NewTabStateStore(s.db)

	for want := 1; want <= 5; want++ {
		got, err := store.IncrementViewedCount(s.ctx, "tab-1")
		s.Require().NoError(err)
		s.Equal(want, got)
	}

	s.Require().NoError(store.SetResumeIndex(s.ctx, "tab-1", 9))
	count, err := store.GetViewedCount(s.ctx, "tab-1")
	s.NoError(err)
	s.Equal(5, count, "resume writes leave the counter alone")

	s.Require().NoError(store.ResetViewedCount(s.ctx, "tab-1"))
	count, err = store.GetViewedCount(s.ctx, "tab-1")
	s.NoError(err)
	s.Equal(0, count)

	resume, err := store.GetResumeIndex(s.ctx, "tab-1")
	s.NoError(err)
	s.Equal(9, resume)
}

func (s *PostgresIntegrationSuite) TestTabState_Delete() {
	store := NewTabStateStore(s.db)

	s.Require().NoError(store.SetResumeIndex(s.ctx, "tab-1", 4))
	s.Require().NoError(store.DeleteTab(s.ctx, "tab-1"))

	var count int
	err := s.db.GetContext(s.ctx, &count, "SELECT COUNT(*) FROM tab_state WHERE tab_id = $1", "tab-1")
	s.NoError(err)
	s.Equal(0, count)
}

func (s *PostgresIntegrationSuite) TestFeedMeta_Hash() {
	store := NewFeedMetaStore(s.db)

	hash, err := store.GetFeedHash(s.ctx)
	s.NoError(err)
	s.Empty(hash)

	s.Require().NoError(store.SetFeedHash(s.ctx, "h1"))
	s.Require().NoError(store.SetFeedHash(s.ctx, "h2"))

	hash, err = store.GetFeedHash(s.ctx)
	s.NoError(err)
	s.Equal("h2", hash)
}

func (s *PostgresIntegrationSuite) TestTransactionManager_Commit() {
	tabs := NewTabStateStore(s.db)
	txManager := NewTransactionManager(s.db)

	_, err := tabs.IncrementViewedCount(s.ctx, "tab-1")
	s.Require().NoError(err)

	err = txManager.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := tabs.ResetViewedCount(txCtx, "tab-1"); err != nil {
			return err
		}
		return tabs.SetResumeIndex(txCtx, "tab-1", 1)
	})
	s.Require().NoError(err)

	state, err := tabs.GetTab(s.ctx, "tab-1")
	s.Require().NoError(err)
	s.Equal(1, state.ResumeIndex)
	s.Equal(0, state.ViewedCount)
}

func (s *PostgresIntegrationSuite) TestTransactionManager_Rollback() {
	tabs := NewTabStateStore(s.db)
	txManager := NewTransactionManager(s.db)

	s.Require().NoError(tabs.SetResumeIndex(s.ctx, "tab-1", 6))

	boom := errors.New("boom")
	err := txManager.WithTransaction(s.ctx, func(txCtx context.Context) error {
		if err := tabs.SetResumeIndex(txCtx, "tab-1", 1); err != nil {
			return err
		}
		return boom
	})
	s.ErrorIs(err, boom)

	resume, err := tabs.GetResumeIndex(s.ctx, "tab-1")
	s.NoError(err)
	s.Equal(6, resume)
}

func (s *PostgresIntegrationSuite) TestTransactionManager_NestedJoinsOuter() {
	tabs := NewTabStateStore(s.db)
	txManager := NewTransactionManager(s.db)

	boom := errors.New("boom")
	err := txManager.WithTransaction(s.ctx, func(txCtx context.Context) error {
		inner := txManager.WithTransaction(txCtx, func(innerCtx context.Context) error {
			s.Same(GetTxFromContext(txCtx), GetTxFromContext(innerCtx))
			return tabs.SetResumeIndex(innerCtx, "tab-1", 4)
		})
		if inner != nil {
			return inner
		}
		return boom
	})
	s.ErrorIs(err, boom)

	resume, err := tabs.GetResumeIndex(s.ctx, "tab-1")
	s.NoError(err)
	s.Equal(0, resume)
}
