package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	txMaxAttempts    = 3
	txInitialBackoff = 25 * time.Millisecond
)

// WithinTransaction runs fn as one atomic unit of work. Any error rolls the
// whole unit back. Serialization failures re-run the entire fn (the check AND
// the write, not just the write) up to txMaxAttempts with doubling backoff;
// callers always receive a terminal success or a terminal failure.
func WithinTransaction(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	backoff := txInitialBackoff
	var err error

	opts := txOptions(db)
	for attempt := 1; attempt <= txMaxAttempts; attempt++ {
		err = db.WithContext(ctx).Transaction(fn, opts)
		if err == nil || !isSerializationFailure(err) {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return err
}

// txOptions picks the isolation level for a unit of work. Postgres defaults
// to READ COMMITTED, where two concurrent check-then-write units can both
// pass the check and both commit; SERIALIZABLE makes the loser fail with
// 40001, which the retry loop above handles. sqlite transactions are
// serializable already, so the test database keeps the driver default.
func txOptions(db *gorm.DB) *sql.TxOptions {
	if db.Dialector.Name() == "postgres" {
		return &sql.TxOptions{Isolation: sql.LevelSerializable}
	}
	return &sql.TxOptions{}
}

// isSerializationFailure matches the transient conflicts worth retrying:
// postgres serialization failure (40001) and deadlock (40P01), and the
// sqlite busy/locked errors the test database raises under write contention.
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}

	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
