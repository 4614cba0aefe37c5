package handler

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	ledgerv1 "github.com/fekuna/omnipos-ledger-service/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/sale"
	"github.com/fekuna/omnipos-ledger-service/internal/sale/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

type SaleHandler struct {
	ledgerv1.UnimplementedSaleServiceServer
	uc     sale.UseCase
	logger logger.ZapLogger
}

func NewSaleHandler(uc sale.UseCase, log logger.ZapLogger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *SaleHandler) Create(ctx context.Context, req *ledgerv1.CreateSaleRequest) (*ledgerv1.CreateSaleResponse, error) {
	soldAt, err := model.ParseOptionalTimestamp(req.SoldAt)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument(err.Error()))
	}

	input := &dto.CreateSaleInput{
		SoldAt: soldAt,
		Note:   req.Note,
		Lines:  make([]dto.SaleLineInput, 0, len(req.Lines)),
	}
	for i, ln := range req.Lines {
		if ln == nil {
			continue
		}
		line := dto.SaleLineInput{
			ProductID: ln.ProductID,
			Qty:       ln.Qty,
		}
		if ln.UnitPriceCents != nil {
			price, err := money.FromFloat(*ln.UnitPriceCents)
			if err != nil {
				return nil, apperror.GRPCStatus(apperror.NewInvalidArgument(
					fmt.Sprintf("line %d: unit_price_cents out of range", i+1)))
			}
			line.UnitPriceCents = &price
		}
		input.Lines = append(input.Lines, line)
	}

	s, err := h.uc.CreateSale(ctx, input)
	if err != nil {
		h.logger.Error("failed to create sale", zap.Int("lines", len(input.Lines)), zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.CreateSaleResponse{SaleID: s.ID}, nil
}

func (h *SaleHandler) Get(ctx context.Context, req *ledgerv1.GetSaleRequest) (*ledgerv1.Sale, error) {
	s, err := h.uc.GetSale(ctx, req.ID)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}

	lines := make([]*ledgerv1.SaleLine, len(s.Lines))
	for i, l := range s.Lines {
		lines[i] = &ledgerv1.SaleLine{
			ID:                    l.ID,
			ProductID:             l.ProductID,
			Qty:                   l.Qty,
			UnitPriceCents:        l.UnitPriceCents,
			UnitCostSnapshotCents: l.UnitCostSnapshotCents,
			LineRevenueCents:      l.LineRevenueCents,
			LineCogsCents:         l.LineCogsCents,
		}
	}

	return &ledgerv1.Sale{
		ID:     s.ID,
		SoldAt: s.SoldAt.String(),
		Note:   s.Note,
		Lines:  lines,
	}, nil
}
