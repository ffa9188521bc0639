package main

import (
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"news_feed/internal/config"
	"news_feed/internal/service"
	"news_feed/internal/storage/boltdb"
	"news_feed/internal/storage/postgres"
)

type storage struct {
	tabs      service.TabStateStore
	meta      service.FeedMetaStore
	txManager service.TransactionManager
	close     func() error
}

func (s *storage) Close() error {
	return s.close()
}

func openStorage(cfg config.StorageConfig, logger *slog.Logger) (*storage, error) {
	switch cfg.Driver {
	case config.StoragePostgres:
		db, err := sqlx.Connect("postgres", cfg.Postgres.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		logger.Info("connected to database", "host", cfg.Postgres.Host, "dbname", cfg.Postgres.DBName)

		return &storage{
			tabs:      postgres.NewTabStateStore(db),
			meta:      postgres.NewFeedMetaStore(db),
			txManager: postgres.NewTransactionManager(db),
			close:     db.Close,
		}, nil

	default:
		store, err := boltdb.NewStore(cfg.Bolt.Path, cfg.Bolt.Timeout)
		if err != nil {
			return nil, fmt.Errorf("open bolt store: %w", err)
		}
		logger.Info("opened bolt store", "path", cfg.Bolt.Path)

		return &storage{
			tabs:      store,
			meta:      store,
			txManager: store,
			close:     store.Close,
		}, nil
	}
}
