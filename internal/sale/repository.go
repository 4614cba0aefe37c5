package sale

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, sale *model.Sale) error
	CreateLine(ctx context.Context, line *model.SaleLine) error
	FindByID(ctx context.Context, id string) (*model.Sale, error)
	FindLines(ctx context.Context, saleID string) ([]model.SaleLine, error)
}
