// Package testutil opens throwaway stores for package tests.
package testutil

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
)

// Epoch is the instant fixed clocks start at in tests.
var Epoch = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

// NewTestDB opens a fresh store file under t.TempDir with the schema applied.
func NewTestDB(t *testing.T) *sqlite.TxManager {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.NewSQLite(ctx, &sqlite.Config{
		Path:         filepath.Join(t.TempDir(), "ledger.sqlite"),
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, sqlite.EnsureSchema(ctx, db))
	return sqlite.NewTxManager(db)
}

func NewClock() *clock.Fixed {
	return clock.NewFixed(Epoch)
}

// SumQtyDelta is the stock level a product's movement history adds up to.
func SumQtyDelta(t *testing.T, db *sqlx.DB, productID string) float64 {
	t.Helper()
	var sum float64
	require.NoError(t, db.Get(&sum,
		`SELECT COALESCE(SUM(qty_delta), 0.0) FROM inventory_movements WHERE product_id = ?`, productID))
	return sum
}
