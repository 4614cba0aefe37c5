package sqlite

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

const CurrentSchemaVersion = "1"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS meta (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id                 TEXT PRIMARY KEY,
		name               TEXT NOT NULL,
		sku                TEXT,
		brand              TEXT,
		category           TEXT,
		retail_price_cents INTEGER NOT NULL DEFAULT 0,
		avg_cost_cents     INTEGER NOT NULL DEFAULT 0,
		reorder_point      INTEGER NOT NULL DEFAULT 0,
		on_hand_qty        REAL NOT NULL DEFAULT 0,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS inventory_movements (
		id                      TEXT PRIMARY KEY,
		product_id              TEXT NOT NULL REFERENCES products(id) ON DELETE CASCADE,
		type                    TEXT NOT NULL CHECK (type IN ('RECEIVE', 'SALE', 'BACKBAR_USE', 'ADJUSTMENT')),
		qty_delta               REAL NOT NULL,
		unit_cost_cents         INTEGER,
		avg_cost_snapshot_cents INTEGER NOT NULL,
		reference_type          TEXT,
		reference_id            TEXT,
		note                    TEXT,
		created_at              TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id      TEXT PRIMARY KEY,
		sold_at TEXT NOT NULL,
		note    TEXT
	)`,
	`CREATE TABLE IF NOT EXISTS sale_lines (
		id                       TEXT PRIMARY KEY,
		sale_id                  TEXT NOT NULL REFERENCES sales(id) ON DELETE CASCADE,
		product_id               TEXT NOT NULL REFERENCES products(id) ON DELETE RESTRICT,
		qty                      REAL NOT NULL,
		unit_price_cents         INTEGER NOT NULL,
		unit_cost_snapshot_cents INTEGER NOT NULL,
		line_revenue_cents       INTEGER NOT NULL,
		line_cogs_cents          INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS expenses (
		id           TEXT PRIMARY KEY,
		occurred_at  TEXT NOT NULL,
		direction    TEXT NOT NULL CHECK (direction IN ('IN', 'OUT')),
		category     TEXT NOT NULL,
		amount_cents INTEGER NOT NULL,
		memo         TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_product_time ON inventory_movements(product_id, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_movements_type_time ON inventory_movements(type, created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_lines_product ON sale_lines(product_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sale_lines_sale ON sale_lines(sale_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_time ON sales(sold_at)`,
	`CREATE INDEX IF NOT EXISTS idx_expenses_time ON expenses(occurred_at)`,
}

// EnsureSchema creates missing tables and seeds the schema version. Safe to
// run on every start.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin schema transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schemaStatements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT OR IGNORE INTO meta (key, value) VALUES ('schema_version', ?)`, CurrentSchemaVersion,
	); err != nil {
		return fmt.Errorf("failed to seed schema version: %w", err)
	}

	return tx.Commit()
}

func SchemaVersion(ctx context.Context, db sqlx.QueryerContext) (string, error) {
	var v string
	if err := sqlx.GetContext(ctx, db, &v, `SELECT value FROM meta WHERE key = 'schema_version'`); err != nil {
		return "", fmt.Errorf("failed to read schema version: %w", err)
	}
	return v, nil
}
