package handler

import (
	"context"

	"go.uber.org/zap"

	ledgerv1 "github.com/fekuna/omnipos-ledger-service/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	productH "github.com/fekuna/omnipos-ledger-service/internal/product/handler"
	"github.com/fekuna/omnipos-ledger-service/internal/report"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

type ReportHandler struct {
	ledgerv1.UnimplementedReportServiceServer
	uc     report.UseCase
	logger logger.ZapLogger
}

func NewReportHandler(uc report.UseCase, log logger.ZapLogger) *ReportHandler {
	return &ReportHandler{
		uc:     uc,
		logger: log,
	}
}

func parseRange(req *ledgerv1.DateRange) (model.DateRange, error) {
	if req == nil {
		return model.DefaultRange(), nil
	}
	r, err := model.ParseRange(req.From, req.To)
	if err != nil {
		return r, apperror.NewInvalidArgument(err.Error())
	}
	return r, nil
}

func (h *ReportHandler) Dashboard(ctx context.Context, req *ledgerv1.DateRange) (*ledgerv1.DashboardResponse, error) {
	r, err := parseRange(req)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}

	d, err := h.uc.Dashboard(ctx, r)
	if err != nil {
		h.logger.Error("failed to build dashboard", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}

	return &ledgerv1.DashboardResponse{
		ProductCount:        d.ProductCount,
		UnitsOnHand:         d.UnitsOnHand,
		InventoryValueCents: d.InventoryValueCents,
		IncomingCents:       d.IncomingCents,
		OutgoingCents:       d.OutgoingCents,
		NetCents:            d.NetCents,
	}, nil
}

func (h *ReportHandler) ProductPL(ctx context.Context, req *ledgerv1.DateRange) (*ledgerv1.ProductPLResponse, error) {
	r, err := parseRange(req)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}

	rows, err := h.uc.ProductPL(ctx, r)
	if err != nil {
		h.logger.Error("failed to build product P&L", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}

	out := make([]*ledgerv1.ProductPLRow, len(rows))
	for i, row := range rows {
		out[i] = &ledgerv1.ProductPLRow{
			ProductID:        row.ProductID,
			ProductName:      row.ProductName,
			Brand:            row.Brand,
			Category:         row.Category,
			UnitsSold:        row.UnitsSold,
			RevenueCents:     row.RevenueCents,
			CogsCents:        row.CogsCents,
			GrossProfitCents: row.GrossProfitCents,
			GrossMargin:      row.GrossMargin,
			BackbarCents:     row.BackbarCents,
			ShrinkCents:      row.ShrinkCents,
		}
	}
	return &ledgerv1.ProductPLResponse{Rows: out}, nil
}

func (h *ReportHandler) ExpensesByCategory(ctx context.Context, req *ledgerv1.DateRange) (*ledgerv1.ExpensesByCategoryResponse, error) {
	r, err := parseRange(req)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}

	rows, err := h.uc.ExpensesByCategory(ctx, r)
	if err != nil {
		h.logger.Error("failed to group expenses", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}

	out := make([]*ledgerv1.CategoryTotal, len(rows))
	for i, row := range rows {
		out[i] = &ledgerv1.CategoryTotal{
			Category:      row.Category,
			IncomingCents: row.IncomingCents,
			OutgoingCents: row.OutgoingCents,
		}
	}
	return &ledgerv1.ExpensesByCategoryResponse{Rows: out}, nil
}

func (h *ReportHandler) LowStock(ctx context.Context, req *ledgerv1.LowStockRequest) (*ledgerv1.LowStockResponse, error) {
	products, err := h.uc.LowStock(ctx)
	if err != nil {
		h.logger.Error("failed to list low stock", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.LowStockResponse{Products: productH.MapProductsToProto(products)}, nil
}
