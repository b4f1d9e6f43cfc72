package migrations_test

import (
	"database/sql"
	"testing"

	"kb-go/internal/store/migrations"

	_ "github.com/mattn/go-sqlite3"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrateUp(t *testing.T) {
	t.Run("creates the documents table", func(t *testing.T) {
		db := openTestDB(t)

		if err := migrations.MigrateUp(db); err != nil {
			t.Fatalf("MigrateUp() error = %v", err)
		}

		if _, err := db.Exec(`INSERT INTO documents (key, data, updated_at) VALUES ('k', 'v', CURRENT_TIMESTAMP)`); err != nil {
			t.Errorf("insert into documents failed: %v", err)
		}
	})

	t.Run("is idempotent", func(t *testing.T) {
		db := openTestDB(t)

		if err := migrations.MigrateUp(db); err != nil {
			t.Fatalf("MigrateUp() error = %v", err)
		}
		if err := migrations.MigrateUp(db); err != nil {
			t.Errorf("second MigrateUp() error = %v", err)
		}
	})
}

func TestCheckStatus(t *testing.T) {
	t.Run("fails on an unmigrated database", func(t *testing.T) {
		db := openTestDB(t)

		if err := migrations.CheckStatus(db); err == nil {
			t.Error("CheckStatus() error = nil, want error")
		}
	})

	t.Run("passes after migration", func(t *testing.T) {
		db := openTestDB(t)

		if err := migrations.MigrateUp(db); err != nil {
			t.Fatalf("MigrateUp() error = %v", err)
		}
		if err := migrations.CheckStatus(db); err != nil {
			t.Errorf("CheckStatus() error = %v", err)
		}
	})
}
