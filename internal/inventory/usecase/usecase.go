package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/internal/expense"
	"github.com/fekuna/omnipos-ledger-service/internal/inventory"
	"github.com/fekuna/omnipos-ledger-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/product"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger-service/pkg/ident"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

type inventoryUseCase struct {
	tx          sqlite.Transactor
	repo        inventory.Repository
	productRepo product.Repository
	expenseRepo expense.Repository
	clock       clock.Clock
	logger      logger.ZapLogger
}

func NewInventoryUseCase(
	tx sqlite.Transactor,
	repo inventory.Repository,
	productRepo product.Repository,
	expenseRepo expense.Repository,
	clk clock.Clock,
	log logger.ZapLogger,
) inventory.UseCase {
	return &inventoryUseCase{
		tx:          tx,
		repo:        repo,
		productRepo: productRepo,
		expenseRepo: expenseRepo,
		clock:       clk,
		logger:      log,
	}
}

// loadProduct must run inside the transaction so the read and the write
// that follows see the same row.
func (uc *inventoryUseCase) loadProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	if p == nil {
		return nil, apperror.NewNotFound("product", id)
	}
	return p, nil
}

func (uc *inventoryUseCase) Adjust(ctx context.Context, input *dto.AdjustInput) (*dto.StockLevel, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, apperror.NewInvalidArgument("product_id is required")
	}

	var level *dto.StockLevel
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		// 1. Get current product
		p, err := uc.loadProduct(ctx, input.ProductID)
		if err != nil {
			return err
		}

		// 2. Apply delta; negative stock is allowed
		now := model.NewTimestamp(uc.clock.Now())
		newQty := money.AddQty(p.OnHandQty, input.QtyDelta)
		if err := uc.productRepo.UpdateStock(ctx, p.ID, newQty, p.AvgCostCents, now); err != nil {
			return apperror.NewStoreFailure(err)
		}

		// 3. Log movement at the unchanged average cost
		movement := &model.InventoryMovement{
			ID:                   ident.New(ident.PrefixMovement),
			ProductID:            p.ID,
			Type:                 model.MovementAdjustment,
			QtyDelta:             input.QtyDelta,
			AvgCostSnapshotCents: p.AvgCostCents,
			Note:                 model.NullString(input.Note),
			CreatedAt:            now,
		}
		if err := uc.repo.LogMovement(ctx, movement); err != nil {
			return apperror.NewStoreFailure(err)
		}

		level = &dto.StockLevel{ProductID: p.ID, OnHandQty: newQty, AvgCostCents: p.AvgCostCents}
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	uc.logger.Info("inventory adjusted",
		zap.String("product_id", level.ProductID),
		zap.Float64("qty_delta", input.QtyDelta),
		zap.Float64("on_hand_qty", level.OnHandQty),
	)
	return level, nil
}

func (uc *inventoryUseCase) Receive(ctx context.Context, input *dto.ReceiveInput) (*dto.StockLevel, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, apperror.NewInvalidArgument("product_id is required")
	}
	if input.QtyReceived <= 0 {
		return nil, apperror.NewInvalidArgument("qty_received must be > 0")
	}
	if input.UnitCostCents < 0 {
		return nil, apperror.NewInvalidArgument("unit_cost_cents must be >= 0")
	}
	total, err := money.LineTotal(input.QtyReceived, input.UnitCostCents)
	if err != nil {
		return nil, apperror.NewInvalidArgument("receipt total out of range")
	}

	var level *dto.StockLevel
	err = uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.loadProduct(ctx, input.ProductID)
		if err != nil {
			return err
		}

		// 1. New average before the snapshot is taken
		now := model.NewTimestamp(uc.clock.Now())
		newQty := money.AddQty(p.OnHandQty, input.QtyReceived)
		newAvg, err := money.MovingAverage(p.OnHandQty, p.AvgCostCents, input.QtyReceived, input.UnitCostCents)
		if err != nil {
			return apperror.NewInvalidArgument("average cost out of range")
		}

		if err := uc.productRepo.UpdateStock(ctx, p.ID, newQty, newAvg, now); err != nil {
			return apperror.NewStoreFailure(err)
		}

		// 2. Movement
		unitCost := input.UnitCostCents
		movement := &model.InventoryMovement{
			ID:                   ident.New(ident.PrefixMovement),
			ProductID:            p.ID,
			Type:                 model.MovementReceive,
			QtyDelta:             input.QtyReceived,
			UnitCostCents:        &unitCost,
			AvgCostSnapshotCents: newAvg,
			Note:                 model.NullString(input.Note),
			CreatedAt:            now,
		}
		if err := uc.repo.LogMovement(ctx, movement); err != nil {
			return apperror.NewStoreFailure(err)
		}

		// 3. Purchase posting for the receipt total
		posting := expense.NewPosting(now, model.DirectionOut, model.CategoryInventoryPurchases, total,
			expense.Memo("Receive", input.Note, "Inventory receive"))
		if err := uc.expenseRepo.Create(ctx, posting); err != nil {
			return apperror.NewStoreFailure(err)
		}

		level = &dto.StockLevel{ProductID: p.ID, OnHandQty: newQty, AvgCostCents: newAvg}
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	uc.logger.Info("inventory received",
		zap.String("product_id", level.ProductID),
		zap.Float64("qty_received", input.QtyReceived),
		zap.Float64("on_hand_qty", level.OnHandQty),
		zap.Int64("avg_cost_cents", level.AvgCostCents),
	)
	return level, nil
}

func (uc *inventoryUseCase) UseBackbar(ctx context.Context, input *dto.BackbarInput) (*dto.StockLevel, error) {
	if strings.TrimSpace(input.ProductID) == "" {
		return nil, apperror.NewInvalidArgument("product_id is required")
	}
	if input.QtyUsed <= 0 {
		return nil, apperror.NewInvalidArgument("qty_used must be > 0")
	}

	var level *dto.StockLevel
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		p, err := uc.loadProduct(ctx, input.ProductID)
		if err != nil {
			return err
		}

		// Consumption never changes unit cost
		cost, err := money.LineTotal(input.QtyUsed, p.AvgCostCents)
		if err != nil {
			return apperror.NewInvalidArgument("backbar cost out of range")
		}
		now := model.NewTimestamp(uc.clock.Now())
		newQty := money.AddQty(p.OnHandQty, -input.QtyUsed)
		if err := uc.productRepo.UpdateStock(ctx, p.ID, newQty, p.AvgCostCents, now); err != nil {
			return apperror.NewStoreFailure(err)
		}

		movement := &model.InventoryMovement{
			ID:                   ident.New(ident.PrefixMovement),
			ProductID:            p.ID,
			Type:                 model.MovementBackbarUse,
			QtyDelta:             -input.QtyUsed,
			AvgCostSnapshotCents: p.AvgCostCents,
			Note:                 model.NullString(input.Note),
			CreatedAt:            now,
		}
		if err := uc.repo.LogMovement(ctx, movement); err != nil {
			return apperror.NewStoreFailure(err)
		}

		posting := expense.NewPosting(now, model.DirectionOut, model.CategoryBackbarSupplies, cost,
			expense.Memo("Backbar", input.Note, "Backbar use"))
		if err := uc.expenseRepo.Create(ctx, posting); err != nil {
			return apperror.NewStoreFailure(err)
		}

		level = &dto.StockLevel{ProductID: p.ID, OnHandQty: newQty, AvgCostCents: p.AvgCostCents}
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	uc.logger.Info("backbar used",
		zap.String("product_id", level.ProductID),
		zap.Float64("qty_used", input.QtyUsed),
		zap.Float64("on_hand_qty", level.OnHandQty),
	)
	return level, nil
}

func (uc *inventoryUseCase) ListMovements(ctx context.Context, filters *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	if filters.Type != "" && !filters.Type.Valid() {
		return nil, 0, apperror.NewInvalidArgument("unknown movement type").
			WithDetail("type", string(filters.Type))
	}
	items, total, err := uc.repo.ListMovements(ctx, filters)
	if err != nil {
		return nil, 0, apperror.NewStoreFailure(err)
	}
	return items, total, nil
}
