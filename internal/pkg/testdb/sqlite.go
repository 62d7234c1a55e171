// Package testdb opens throwaway databases with the production schema for
// tests that need real transactions without a PostgreSQL server.
package testdb

import (
	"fmt"
	"testing"

	"manufacturing/internal/adapters/out/postgres"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// SQLite returns a migrated in-memory database private to tb. All access goes
// through a single connection, so concurrent transactions serialize; read
// committed state only after the writing unit of work has finished.
func SQLite(tb testing.TB) *gorm.DB {
	tb.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", uuid.NewString())

	cfg := postgres.NewGormConfig()
	cfg.Logger = gormLogger.Default.LogMode(gormLogger.Silent)

	db, err := gorm.Open(sqlite.Open(dsn), cfg)
	if err != nil {
		tb.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		tb.Fatalf("sqlite handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	tb.Cleanup(func() {
		_ = sqlDB.Close()
	})

	if err = postgres.Migrate(db); err != nil {
		tb.Fatalf("migrate: %v", err)
	}

	return db
}
