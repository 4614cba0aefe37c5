package product

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/product/dto"
)

type UseCase interface {
	// UpsertProduct returns NotFound for an ID that matches no product.
	UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error)
	GetProduct(ctx context.Context, id string) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}
