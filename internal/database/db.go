package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Open creates (if needed) and connects to the embedded SQLite store at
// path and verifies the connection. Pragmas ride in the DSN so every
// pooled connection gets them: foreign_keys must be ON for the schema's
// cascade rules to fire, busy_timeout covers overlapping reader/writer
// calls, WAL keeps readers unblocked during writes.
func Open(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database: path is required")
	}
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	// SQLite serializes writes regardless of pool size; a handful of
	// connections covers overlapping reads.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(4)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
