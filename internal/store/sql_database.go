package store

import (
	"context"
	"database/sql"
	"strings"

	"github.com/MKhiriev/go-fit-tracker/internal/config"
	"github.com/MKhiriev/go-fit-tracker/internal/logger"
	"github.com/MKhiriev/go-fit-tracker/migrations"
)

// Dialect identifies the SQL backend behind a [DB] connection.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

// DB wraps the pooled database/sql connection together with the dialect it
// speaks and an error classificator for that dialect.
type DB struct {
	*sql.DB
	dialect            Dialect
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens a database connection for the configured DSN. A
// "postgres://" or "postgresql://" scheme selects the PostgreSQL backend; any
// other value is treated as an SQLite file path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if strings.HasPrefix(cfg.DSN, "postgres://") || strings.HasPrefix(cfg.DSN, "postgresql://") {
		return NewConnectPostgres(ctx, cfg, log)
	}

	return NewConnectSQLite(ctx, cfg, log)
}

// Migrate applies all embedded schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, string(db.dialect))
}

// isUniqueViolation reports whether err is the backend's unique-constraint
// violation, used to map duplicate usernames to [ErrUsernameAlreadyExists].
func (db *DB) isUniqueViolation(err error) bool {
	switch db.dialect {
	case DialectPostgres:
		return isPostgresUniqueViolation(err)
	case DialectSQLite:
		return isSQLiteUniqueViolation(err)
	}

	return false
}
