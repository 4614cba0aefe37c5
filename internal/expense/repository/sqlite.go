package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
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

func (r *SQLiteRepository) Create(ctx context.Context, e *model.ExpenseEntry) error {
	query := `
        INSERT INTO expenses (id, occurred_at, direction, category, amount_cents, memo)
        VALUES (:id, :occurred_at, :direction, :category, :amount_cents, :memo)
    `
	_, err := sqlx.NamedExecContext(ctx, r.TM.Querier(ctx), query, e)
	return err
}

func (r *SQLiteRepository) FindAll(ctx context.Context, dr model.DateRange) ([]model.ExpenseEntry, error) {
	entries := []model.ExpenseEntry{}
	query, args, err := sq.Select("*").
		From("expenses").
		Where("occurred_at BETWEEN ? AND ?", dr.From, dr.To).
		OrderBy("occurred_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, err
	}
	if err := sqlx.SelectContext(ctx, r.TM.Querier(ctx), &entries, query, args...); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.TM.Querier(ctx).ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	return err
}
