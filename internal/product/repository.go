package product

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id string) (*model.Product, error)
	FindAll(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error

	// UpdateStock writes the cached projection maintained by inventory and sales.
	UpdateStock(ctx context.Context, id string, onHandQty float64, avgCostCents int64, at model.Timestamp) error
}
