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

func (r *SQLiteRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, sku, brand, category, retail_price_cents, avg_cost_cents,
            reorder_point, on_hand_qty, created_at, updated_at
        )
        VALUES (
            :id, :name, :sku, :brand, :category, :retail_price_cents, :avg_cost_cents,
            :reorder_point, :on_hand_qty, :created_at, :updated_at
        )
    `
	_, err := sqlx.NamedExecContext(ctx, r.TM.Querier(ctx), query, p)
	return err
}

func (r *SQLiteRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var product model.Product
	query := `SELECT * FROM products WHERE id = ? LIMIT 1`
	err := sqlx.GetContext(ctx, r.TM.Querier(ctx), &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *SQLiteRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT * FROM products ORDER BY name COLLATE NOCASE, id`
	if err := sqlx.SelectContext(ctx, r.TM.Querier(ctx), &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *SQLiteRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            sku = :sku,
            brand = :brand,
            category = :category,
            retail_price_cents = :retail_price_cents,
            avg_cost_cents = :avg_cost_cents,
            reorder_point = :reorder_point,
            on_hand_qty = :on_hand_qty,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := sqlx.NamedExecContext(ctx, r.TM.Querier(ctx), query, p)
	return err
}

func (r *SQLiteRepository) UpdateStock(ctx context.Context, id string, onHandQty float64, avgCostCents int64, at model.Timestamp) error {
	query := `UPDATE products SET on_hand_qty = ?, avg_cost_cents = ?, updated_at = ? WHERE id = ?`
	_, err := r.TM.Querier(ctx).ExecContext(ctx, query, onHandQty, avgCostCents, at, id)
	return err
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.TM.Querier(ctx).ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
	return err
}
