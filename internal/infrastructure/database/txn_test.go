package database

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type txRow struct {
	ID    uint `gorm:"primaryKey"`
	Value string
}

func openTxTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatal(err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&txRow{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestWithinTransactionCommits(t *testing.T) {
	db := openTxTestDB(t)

	err := WithinTransaction(context.Background(), db, func(tx *gorm.DB) error {
		return tx.Create(&txRow{Value: "committed"}).Error
	})
	if err != nil {
		t.Fatalf("WithinTransaction() error: %v", err)
	}

	var count int64
	db.Model(&txRow{}).Count(&count)
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

func TestWithinTransactionRollsBack(t *testing.T) {
	db := openTxTestDB(t)
	boom := errors.New("boom")

	err := WithinTransaction(context.Background(), db, func(tx *gorm.DB) error {
		if err := tx.Create(&txRow{Value: "doomed"}).Error; err != nil {
			return err
		}
		return boom
	})
	if err != boom {
		t.Fatalf("WithinTransaction() error = %v, want boom", err)
	}

	var count int64
	db.Model(&txRow{}).Count(&count)
	if count != 0 {
		t.Errorf("row count = %d, want 0 after rollback", count)
	}
}

func TestWithinTransactionRetriesSerializationFailure(t *testing.T) {
	db := openTxTestDB(t)

	attempts := 0
	err := WithinTransaction(context.Background(), db, func(tx *gorm.DB) error {
		attempts++
		if attempts < 3 {
			return &pgconn.PgError{Code: "40001"}
		}
		return tx.Create(&txRow{Value: "eventually"}).Error
	})
	if err != nil {
		t.Fatalf("WithinTransaction() error: %v", err)
	}
	if attempts != 3 {
		t.Errorf("attempts = %d, want 3", attempts)
	}
}

func TestWithinTransactionGivesUpAfterMaxAttempts(t *testing.T) {
	db := openTxTestDB(t)

	attempts := 0
	err := WithinTransaction(context.Background(), db, func(tx *gorm.DB) error {
		attempts++
		return &pgconn.PgError{Code: "40001"}
	})

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "40001" {
		t.Fatalf("WithinTransaction() error = %v, want the serialization failure", err)
	}
	if attempts != txMaxAttempts {
		t.Errorf("attempts = %d, want %d", attempts, txMaxAttempts)
	}
}

func TestTxOptionsIsolation(t *testing.T) {
	pg := &gorm.DB{Config: &gorm.Config{Dialector: postgres.New(postgres.Config{})}}
	if got := txOptions(pg).Isolation; got != sql.LevelSerializable {
		t.Errorf("postgres isolation = %v, want serializable", got)
	}

	lite := openTxTestDB(t)
	if got := txOptions(lite).Isolation; got != sql.LevelDefault {
		t.Errorf("sqlite isolation = %v, want the driver default", got)
	}
}

func TestIsSerializationFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"postgres serialization", &pgconn.PgError{Code: "40001"}, true},
		{"postgres deadlock", &pgconn.PgError{Code: "40P01"}, true},
		{"postgres unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"sqlite locked", errors.New("database is locked"), true},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isSerializationFailure(tt.err); got != tt.want {
				t.Errorf("isSerializationFailure() = %v, want %v", got, tt.want)
			}
		})
	}
}
