package usecase

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/report"
	"github.com/fekuna/omnipos-ledger-service/internal/report/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

type reportUseCase struct {
	repo   report.Repository
	logger logger.ZapLogger
}

func NewReportUseCase(repo report.Repository, log logger.ZapLogger) report.UseCase {
	return &reportUseCase{
		repo:   repo,
		logger: log,
	}
}

// Dashboard values stock at the current moving average, not at historical cost.
func (uc *reportUseCase) Dashboard(ctx context.Context, r model.DateRange) (*model.Dashboard, error) {
	inv, err := uc.repo.InventoryTotals(ctx)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	ledger, err := uc.repo.LedgerTotals(ctx, r)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}

	value, err := money.FromFloat(inv.InventoryValueCents)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}

	return &model.Dashboard{
		ProductCount:        inv.ProductCount,
		UnitsOnHand:         inv.UnitsOnHand,
		InventoryValueCents: value,
		IncomingCents:       ledger.IncomingCents,
		OutgoingCents:       ledger.OutgoingCents,
		NetCents:            ledger.IncomingCents - ledger.OutgoingCents,
	}, nil
}

func costIndex(rows []dto.ProductCost) (map[string]int64, error) {
	m := make(map[string]int64, len(rows))
	for _, row := range rows {
		cost, err := money.FromFloat(row.CostCents)
		if err != nil {
			return nil, err
		}
		m[row.ProductID] = cost
	}
	return m, nil
}

// ProductPL lists products sold in range. Revenue and COGS use sale time;
// backbar and shrink use movement time.
func (uc *reportUseCase) ProductPL(ctx context.Context, r model.DateRange) ([]model.ProductPL, error) {
	rows, err := uc.repo.ProductSales(ctx, r)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	backbar, err := uc.repo.BackbarCosts(ctx, r)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	shrink, err := uc.repo.ShrinkCosts(ctx, r)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}

	bb, err := costIndex(backbar)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	sh, err := costIndex(shrink)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	for i := range rows {
		row := &rows[i]
		row.GrossProfitCents = row.RevenueCents - row.CogsCents
		row.GrossMargin = money.Margin(row.GrossProfitCents, row.RevenueCents)
		row.BackbarCents = bb[row.ProductID]
		row.ShrinkCents = sh[row.ProductID]
	}
	return rows, nil
}

func (uc *reportUseCase) ExpensesByCategory(ctx context.Context, r model.DateRange) ([]model.CategoryTotal, error) {
	rows, err := uc.repo.CategoryTotals(ctx, r)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	return rows, nil
}

func (uc *reportUseCase) LowStock(ctx context.Context) ([]model.Product, error) {
	rows, err := uc.repo.LowStock(ctx)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	return rows, nil
}
