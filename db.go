package main

import (
	"context"
	"errors"
	"sync"

	"fintrack/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Store owns the database handle. The connection is established after the
// server starts listening, so every accessor has to tolerate a nil handle
// until Connect succeeds.
type Store struct {
	mu  sync.RWMutex
	db  *gorm.DB
	log *zap.Logger
}

func newStore(log *zap.Logger) *Store {
	return &Store{log: log}
}

// Connect opens the Postgres connection and runs schema migration. The
// bootstrap sequencer invokes it asynchronously; request handlers observe
// ErrStoreUnavailable until it succeeds.
func (s *Store) Connect(dsn string) error {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return err
	}
	// Migrate models individually so a failure on one doesn't block others.
	for _, m := range []any{
		&models.User{},
		&models.Income{},
		&models.Expense{},
		&models.Transaction{},
	} {
		if err := db.AutoMigrate(m); err != nil {
			s.log.Warn("migration warning", zap.Error(err))
		}
	}
	s.mu.Lock()
	s.db = db
	s.mu.Unlock()
	return nil
}

// conn returns a context-bound handle or ErrStoreUnavailable while the
// connection is still pending.
func (s *Store) conn(ctx context.Context) (*gorm.DB, error) {
	s.mu.RLock()
	db := s.db
	s.mu.RUnlock()
	if db == nil {
		return nil, ErrStoreUnavailable
	}
	return db.WithContext(ctx), nil
}

// Ready reports whether the persistence connection is established.
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.db != nil
}

func mapRecordError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
