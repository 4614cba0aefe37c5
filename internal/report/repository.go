package report

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/report/dto"
)

type Repository interface {
	InventoryTotals(ctx context.Context) (*dto.InventoryTotals, error)
	LedgerTotals(ctx context.Context, r model.DateRange) (*dto.LedgerTotals, error)

	// ProductSales is filtered by sale time.
	ProductSales(ctx context.Context, r model.DateRange) ([]model.ProductPL, error)
	// BackbarCosts and ShrinkCosts are filtered by movement time.
	BackbarCosts(ctx context.Context, r model.DateRange) ([]dto.ProductCost, error)
	ShrinkCosts(ctx context.Context, r model.DateRange) ([]dto.ProductCost, error)

	CategoryTotals(ctx context.Context, r model.DateRange) ([]model.CategoryTotal, error)
	LowStock(ctx context.Context) ([]model.Product, error)
}
