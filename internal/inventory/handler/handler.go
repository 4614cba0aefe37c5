package handler

import (
	"context"

	"go.uber.org/zap"

	ledgerv1 "github.com/fekuna/omnipos-ledger-service/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/internal/inventory"
	"github.com/fekuna/omnipos-ledger-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

type InventoryHandler struct {
	ledgerv1.UnimplementedInventoryServiceServer
	uc     inventory.UseCase
	logger logger.ZapLogger
}

func NewInventoryHandler(uc inventory.UseCase, log logger.ZapLogger) *InventoryHandler {
	return &InventoryHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *InventoryHandler) Adjust(ctx context.Context, req *ledgerv1.AdjustRequest) (*ledgerv1.AdjustResponse, error) {
	level, err := h.uc.Adjust(ctx, &dto.AdjustInput{
		ProductID: req.ProductID,
		QtyDelta:  req.QtyDelta,
		Note:      req.Note,
	})
	if err != nil {
		h.logger.Error("failed to adjust inventory", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.AdjustResponse{OnHandQty: level.OnHandQty}, nil
}

func (h *InventoryHandler) Receive(ctx context.Context, req *ledgerv1.ReceiveRequest) (*ledgerv1.ReceiveResponse, error) {
	unitCost, err := money.FromFloat(req.UnitCostCents)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument("unit_cost_cents out of range"))
	}

	level, err := h.uc.Receive(ctx, &dto.ReceiveInput{
		ProductID:     req.ProductID,
		QtyReceived:   req.QtyReceived,
		UnitCostCents: unitCost,
		Note:          req.Note,
	})
	if err != nil {
		h.logger.Error("failed to receive inventory", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.ReceiveResponse{OnHandQty: level.OnHandQty, AvgCostCents: level.AvgCostCents}, nil
}

func (h *InventoryHandler) UseBackbar(ctx context.Context, req *ledgerv1.UseBackbarRequest) (*ledgerv1.UseBackbarResponse, error) {
	level, err := h.uc.UseBackbar(ctx, &dto.BackbarInput{
		ProductID: req.ProductID,
		QtyUsed:   req.QtyUsed,
		Note:      req.Note,
	})
	if err != nil {
		h.logger.Error("failed to record backbar use", zap.String("product_id", req.ProductID), zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.UseBackbarResponse{OnHandQty: level.OnHandQty}, nil
}

func (h *InventoryHandler) ListMovements(ctx context.Context, req *ledgerv1.ListMovementsRequest) (*ledgerv1.ListMovementsResponse, error) {
	r, err := model.ParseRange(req.From, req.To)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument(err.Error()))
	}

	items, total, err := h.uc.ListMovements(ctx, &dto.MovementFilters{
		ProductID: req.ProductID,
		Type:      model.MovementType(req.Type),
		Range:     r,
		Page:      req.Page,
		PageSize:  req.PageSize,
	})
	if err != nil {
		h.logger.Error("failed to list movements", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}

	movements := make([]*ledgerv1.Movement, len(items))
	for i := range items {
		movements[i] = mapMovementToProto(&items[i])
	}
	return &ledgerv1.ListMovementsResponse{Movements: movements, Total: total}, nil
}

func mapMovementToProto(m *model.InventoryMovement) *ledgerv1.Movement {
	return &ledgerv1.Movement{
		ID:                   m.ID,
		ProductID:            m.ProductID,
		Type:                 string(m.Type),
		QtyDelta:             m.QtyDelta,
		UnitCostCents:        m.UnitCostCents,
		AvgCostSnapshotCents: m.AvgCostSnapshotCents,
		ReferenceType:        m.ReferenceType,
		ReferenceID:          m.ReferenceID,
		Note:                 m.Note,
		CreatedAt:            m.CreatedAt.String(),
	}
}
