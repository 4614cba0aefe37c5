package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
)

type SQLiteRepository struct {
	TM *sqlite.TxManager
}

func NewSQLiteRepository(tm *sqlite.TxManager) *SQLiteRepository {
	return &SQLiteRepository{TM: tm}
}

func (r *SQLiteRepository) Create(ctx context.Context, s *model.Sale) error {
	query := `INSERT INTO sales (id, sold_at, note) VALUES (:id, :sold_at, :note)`
	_, err := sqlx.NamedExecContext(ctx, r.TM.Querier(ctx), query, s)
	return err
}

func (r *SQLiteRepository) CreateLine(ctx context.Context, l *model.SaleLine) error {
	query := `
        INSERT INTO sale_lines (
            id, sale_id, product_id, qty, unit_price_cents, unit_cost_snapshot_cents,
            line_revenue_cents, line_cogs_cents
        )
        VALUES (
            :id, :sale_id, :product_id, :qty, :unit_price_cents, :unit_cost_snapshot_cents,
            :line_revenue_cents, :line_cogs_cents
        )
    `
	_, err := sqlx.NamedExecContext(ctx, r.TM.Querier(ctx), query, l)
	return err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Sale, error) {
	var s model.Sale
	err := sqlx.GetContext(ctx, r.TM.Querier(ctx), &s, `SELECT * FROM sales WHERE id = ? LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *SQLiteRepository) FindLines(ctx context.Context, saleID string) ([]model.SaleLine, error) {
	lines := []model.SaleLine{}
	query := `SELECT * FROM sale_lines WHERE sale_id = ? ORDER BY id`
	if err := sqlx.SelectContext(ctx, r.TM.Querier(ctx), &lines, query, saleID); err != nil {
		return nil, err
	}
	return lines, nil
}
