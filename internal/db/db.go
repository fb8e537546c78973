package db

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// MemoryDSN names a private in-memory database. Nothing written to it
// outlives the process.
const MemoryDSN = ":memory:"

// OpenDB opens the conversation store and applies the schema.
//
// An in-memory SQLite database exists per connection, so the pool is
// pinned to a single connection. Callers must not issue queries on the
// *sql.DB while a transaction from the same pool is open.
func OpenDB(dsn string) (*sql.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if err := Migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}
