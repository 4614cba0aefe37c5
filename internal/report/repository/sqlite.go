package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/report/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
)

const (
	sumIncoming = "COALESCE(SUM(CASE WHEN direction = 'IN' THEN amount_cents ELSE 0 END), 0) AS incoming_cents"
	sumOutgoing = "COALESCE(SUM(CASE WHEN direction = 'OUT' THEN amount_cents ELSE 0 END), 0) AS outgoing_cents"
)

type SQLiteRepository struct {
	TM *sqlite.TxManager
}

func NewSQLiteRepository(tm *sqlite.TxManager) *SQLiteRepository {
	return &SQLiteRepository{TM: tm}
}

func between(col string, r model.DateRange) sq.Sqlizer {
	return sq.Expr(col+" BETWEEN ? AND ?", r.From, r.To)
}

func (r *SQLiteRepository) get(ctx context.Context, dest any, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return sqlx.GetContext(ctx, r.TM.Querier(ctx), dest, query, args...)
}

func (r *SQLiteRepository) selectAll(ctx context.Context, dest any, b sq.SelectBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	return sqlx.SelectContext(ctx, r.TM.Querier(ctx), dest, query, args...)
}

func (r *SQLiteRepository) InventoryTotals(ctx context.Context) (*dto.InventoryTotals, error) {
	var t dto.InventoryTotals
	b := sq.Select(
		"COUNT(*) AS product_count",
		"COALESCE(SUM(on_hand_qty), 0.0) AS units_on_hand",
		"COALESCE(SUM(on_hand_qty * avg_cost_cents), 0.0) AS inventory_value_cents",
	).From("products")
	if err := r.get(ctx, &t, b); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteRepository) LedgerTotals(ctx context.Context, dr model.DateRange) (*dto.LedgerTotals, error) {
	var t dto.LedgerTotals
	b := sq.Select(sumIncoming, sumOutgoing).
		From("expenses").
		Where(between("occurred_at", dr))
	if err := r.get(ctx, &t, b); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteRepository) ProductSales(ctx context.Context, dr model.DateRange) ([]model.ProductPL, error) {
	rows := []model.ProductPL{}
	b := sq.Select(
		"p.id AS product_id",
		"p.name AS product_name",
		"p.brand",
		"p.category",
		"SUM(sl.qty) AS units_sold",
		"SUM(sl.line_revenue_cents) AS revenue_cents",
		"SUM(sl.line_cogs_cents) AS cogs_cents",
	).
		From("sale_lines sl").
		Join("sales s ON s.id = sl.sale_id").
		Join("products p ON p.id = sl.product_id").
		Where(between("s.sold_at", dr)).
		GroupBy("p.id").
		OrderBy("revenue_cents DESC", "p.name COLLATE NOCASE", "p.id")
	if err := r.selectAll(ctx, &rows, b); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLiteRepository) movementCosts(ctx context.Context, dr model.DateRange, where sq.Sqlizer) ([]dto.ProductCost, error) {
	rows := []dto.ProductCost{}
	b := sq.Select("product_id", "SUM(ABS(qty_delta) * avg_cost_snapshot_cents) AS cost_cents").
		From("inventory_movements").
		Where(where).
		Where(between("created_at", dr)).
		GroupBy("product_id")
	if err := r.selectAll(ctx, &rows, b); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLiteRepository) BackbarCosts(ctx context.Context, dr model.DateRange) ([]dto.ProductCost, error) {
	return r.movementCosts(ctx, dr, sq.Eq{"type": string(model.MovementBackbarUse)})
}

func (r *SQLiteRepository) ShrinkCosts(ctx context.Context, dr model.DateRange) ([]dto.ProductCost, error) {
	return r.movementCosts(ctx, dr, sq.And{
		sq.Eq{"type": string(model.MovementAdjustment)},
		sq.Lt{"qty_delta": 0},
	})
}

func (r *SQLiteRepository) CategoryTotals(ctx context.Context, dr model.DateRange) ([]model.CategoryTotal, error) {
	rows := []model.CategoryTotal{}
	b := sq.Select("category", sumIncoming, sumOutgoing).
		From("expenses").
		Where(between("occurred_at", dr)).
		GroupBy("category").
		OrderBy("outgoing_cents DESC", "category")
	if err := r.selectAll(ctx, &rows, b); err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *SQLiteRepository) LowStock(ctx context.Context) ([]model.Product, error) {
	rows := []model.Product{}
	b := sq.Select("*").
		From("products").
		Where("reorder_point > 0 AND on_hand_qty <= reorder_point").
		OrderBy("name COLLATE NOCASE", "id")
	if err := r.selectAll(ctx, &rows, b); err != nil {
		return nil, err
	}
	return rows, nil
}
