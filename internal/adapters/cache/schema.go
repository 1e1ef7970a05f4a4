package cache

import (
	"database/sql"
	"errors"
	"fmt"
)

// InitSchema creates the resolution cache table. The DDL is valid for both
// SQLite and Postgres backends.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	q := `
	CREATE TABLE IF NOT EXISTS resolution_cache (
		zip TEXT PRIMARY KEY,
		state_abbrev TEXT NOT NULL,
		state_name TEXT NOT NULL,
		city TEXT NOT NULL
	);
	`

	if _, err := db.Exec(q); err != nil {
		return fmt.Errorf("init schema: create resolution_cache table: %w", err)
	}

	return nil
}
