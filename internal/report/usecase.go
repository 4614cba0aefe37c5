package report

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

// UseCase is read-only.
type UseCase interface {
	Dashboard(ctx context.Context, r model.DateRange) (*model.Dashboard, error)
	ProductPL(ctx context.Context, r model.DateRange) ([]model.ProductPL, error)
	ExpensesByCategory(ctx context.Context, r model.DateRange) ([]model.CategoryTotal, error)
	LowStock(ctx context.Context) ([]model.Product, error)
}
