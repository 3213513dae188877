package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-eightball/internal/config"
	"github.com/MKhiriev/go-eightball/internal/logger"
)

// ClientStorages groups all client-side repositories.
type ClientStorages struct {
	// ScheduleRepository is the SQLite-backed schedule cache.
	ScheduleRepository ScheduleRepository

	db *DB
}

// NewClientStorages opens the SQLite cache named by cfg.DB.DSN, applies
// pending migrations and wires the repositories.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ScheduleRepository: NewScheduleRepository(db, log),
		db:                 db,
	}, nil
}

// Close releases the database connection.
func (s *ClientStorages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
