package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/NiharGandhi/pent/internal/config"
	"github.com/NiharGandhi/pent/internal/logger"
)

// Storages groups all storage repositories into a single value that can be
// passed around the service layer.
type Storages struct {
	UserRepository UserRepository

	db *DB
}

// NewStorages opens the database named by cfg.DB, applies pending
// migrations and wires the repositories.
//
// The driver is taken from cfg.DB.Driver, or inferred from the DSN when
// empty: "postgres://", "postgresql://" and key/value DSNs containing
// "host=" select PostgreSQL; everything else selects SQLite.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	dialect, err := resolveDialect(cfg.DB)
	if err != nil {
		return nil, err
	}

	var db *DB
	if dialect == DialectPostgres {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, log),
		db:             db,
	}, nil
}

// Close releases the underlying database connection pool.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func resolveDialect(cfg config.DB) (Dialect, error) {
	switch strings.ToLower(cfg.Driver) {
	case "postgres", "pgx":
		return DialectPostgres, nil
	case "sqlite3", "sqlite":
		return DialectSQLite, nil
	case "":
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}

	dsn := strings.ToLower(cfg.DSN)
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return DialectPostgres, nil
	}

	return DialectSQLite, nil
}
