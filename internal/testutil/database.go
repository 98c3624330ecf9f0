package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/ndewijer/surebet-tracker/internal/database"
)

// SetupTestDB creates an in-memory SQLite database for testing with every migration
// applied. The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when the single connection closes)
	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = MEMORY"); err != nil {
		t.Fatalf("Failed to set pragma: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db
}
