package store

import (
	"context"
	"fmt"

	"github.com/readreview/book-stack/internal/config"
	"github.com/readreview/book-stack/internal/logger"
	"github.com/readreview/book-stack/migrations"
)

// Storages aggregates every repository backed by the relational store.
// It is the single persistence entry point handed to the service layer.
type Storages struct {
	UserRepository   UserRepository
	BookRepository   BookRepository
	ReviewRepository ReviewRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies pending goose migrations, and
// constructs all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}

	if err := migrations.Migrate(db.DB); err != nil {
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		BookRepository:   NewBookRepository(db, log),
		ReviewRepository: NewReviewRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
