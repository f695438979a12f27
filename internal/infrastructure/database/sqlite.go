package database

import (
	"context"
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// OpenSQLite opens dsn with the pure-Go sqlite driver and applies the
// payments schema. In-memory databases are pinned to one connection, since
// every connection would otherwise see its own empty database.
func OpenSQLite(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS payments (
			id TEXT PRIMARY KEY,
			payment_type TEXT NOT NULL,
			status TEXT NOT NULL,
			customer_id TEXT NOT NULL,
			order_id TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			document TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_payments_order_id ON payments (order_id);`,
		`CREATE INDEX IF NOT EXISTS idx_payments_customer_id ON payments (customer_id);`,
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
