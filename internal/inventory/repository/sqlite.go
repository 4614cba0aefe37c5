package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-ledger-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
)

type SQLiteRepository struct {
	TM *sqlite.TxManager
}

func NewSQLiteRepository(tm *sqlite.TxManager) *SQLiteRepository {
	return &SQLiteRepository{TM: tm}
}

func (r *SQLiteRepository) LogMovement(ctx context.Context, m *model.InventoryMovement) error {
	query := `
        INSERT INTO inventory_movements (
            id, product_id, type, qty_delta, unit_cost_cents, avg_cost_snapshot_cents,
            reference_type, reference_id, note, created_at
        )
        VALUES (
            :id, :product_id, :type, :qty_delta, :unit_cost_cents, :avg_cost_snapshot_cents,
            :reference_type, :reference_id, :note, :created_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, r.TM.Querier(ctx), query, m)
	return err
}

func movementConditions(f *dto.MovementFilters) sq.And {
	where := sq.And{sq.Expr("created_at BETWEEN ? AND ?", f.Range.From, f.Range.To)}
	if f.ProductID != "" {
		where = append(where, sq.Eq{"product_id": f.ProductID})
	}
	if f.Type != "" {
		where = append(where, sq.Eq{"type": string(f.Type)})
	}
	return where
}

func (r *SQLiteRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	items := []model.InventoryMovement{}
	var count int
	q := r.TM.Querier(ctx)
	where := movementConditions(f)

	countQuery, args, err := sq.Select("COUNT(*)").From("inventory_movements").Where(where).ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.GetContext(ctx, q, &count, countQuery, args...); err != nil {
		return nil, 0, err
	}

	builder := sq.Select("*").From("inventory_movements").Where(where).OrderBy("created_at DESC", "id DESC")
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		builder = builder.Limit(uint64(f.PageSize)).Offset(uint64((page - 1) * f.PageSize))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, 0, err
	}
	if err := sqlx.SelectContext(ctx, q, &items, query, args...); err != nil {
		return nil, 0, err
	}

	return items, count, nil
}
