// Package testutil holds helpers shared by package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"github.com/krishnapatidar458/Aligntogther-Assessment-todo/internal/infrastructure/db/gormdb"
	"gorm.io/gorm"
)

// OpenSQLite returns a migrated database in a fresh temp dir, closed on cleanup.
func OpenSQLite(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gormdb.Open(gormdb.DriverSQLite, filepath.Join(t.TempDir(), "todo.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := gormdb.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	t.Cleanup(func() {
		if err := gormdb.Close(db); err != nil {
			t.Errorf("close sqlite: %v", err)
		}
	})
	return db
}
