package inventory

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type UseCase interface {
	Adjust(ctx context.Context, input *dto.AdjustInput) (*dto.StockLevel, error)
	Receive(ctx context.Context, input *dto.ReceiveInput) (*dto.StockLevel, error)
	UseBackbar(ctx context.Context, input *dto.BackbarInput) (*dto.StockLevel, error)
	ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error)
}
