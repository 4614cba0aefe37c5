package usecase

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/internal/expense"
	"github.com/fekuna/omnipos-ledger-service/internal/inventory"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/product"
	"github.com/fekuna/omnipos-ledger-service/internal/sale"
	"github.com/fekuna/omnipos-ledger-service/internal/sale/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger-service/pkg/ident"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

type saleUseCase struct {
	tx           sqlite.Transactor
	repo         sale.Repository
	productRepo  product.Repository
	movementRepo inventory.Repository
	expenseRepo  expense.Repository
	clock        clock.Clock
	logger       logger.ZapLogger
}

func NewSaleUseCase(
	tx sqlite.Transactor,
	repo sale.Repository,
	productRepo product.Repository,
	movementRepo inventory.Repository,
	expenseRepo expense.Repository,
	clk clock.Clock,
	log logger.ZapLogger,
) sale.UseCase {
	return &saleUseCase{
		tx:           tx,
		repo:         repo,
		productRepo:  productRepo,
		movementRepo: movementRepo,
		expenseRepo:  expenseRepo,
		clock:        clk,
		logger:       log,
	}
}

func validateLines(lines []dto.SaleLineInput) error {
	for i, ln := range lines {
		if strings.TrimSpace(ln.ProductID) == "" {
			return apperror.NewInvalidArgument(fmt.Sprintf("line %d: product_id is required", i+1)).
				WithDetail("line", i+1)
		}
		if ln.Qty <= 0 {
			return apperror.NewInvalidArgument(fmt.Sprintf("line %d: qty must be > 0", i+1)).
				WithDetail("line", i+1)
		}
	}
	return nil
}

// CreateSale writes the header, every line with its stock movement, and one
// consolidated revenue posting in a single transaction. Stock may go negative.
func (uc *saleUseCase) CreateSale(ctx context.Context, input *dto.CreateSaleInput) (*model.Sale, error) {
	if err := validateLines(input.Lines); err != nil {
		return nil, err
	}

	s := &model.Sale{
		ID:     ident.New(ident.PrefixSale),
		SoldAt: model.NewTimestamp(uc.clock.Now()),
		Note:   model.NullString(input.Note),
	}
	if input.SoldAt != nil {
		s.SoldAt = *input.SoldAt
	}

	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		// 1. Header
		if err := uc.repo.Create(ctx, s); err != nil {
			return apperror.NewStoreFailure(err)
		}

		// 2. Lines
		var totalRevenue int64
		lines := make([]model.SaleLine, 0, len(input.Lines))
		for i, ln := range input.Lines {
			line, err := uc.recordLine(ctx, s, i+1, ln)
			if err != nil {
				return err
			}
			totalRevenue += line.LineRevenueCents
			lines = append(lines, *line)
		}
		s.Lines = lines

		// 3. One revenue posting per sale, dated at the sale time
		posting := expense.NewPosting(s.SoldAt, model.DirectionIn, model.CategoryRetailSales, totalRevenue,
			expense.Memo("Sale", input.Note, "Sale "+s.ID))
		if err := uc.expenseRepo.Create(ctx, posting); err != nil {
			return apperror.NewStoreFailure(err)
		}
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	uc.logger.Info("sale recorded",
		zap.String("sale_id", s.ID),
		zap.Int("lines", len(s.Lines)),
	)
	return s, nil
}

func (uc *saleUseCase) recordLine(ctx context.Context, s *model.Sale, n int, ln dto.SaleLineInput) (*model.SaleLine, error) {
	p, err := uc.productRepo.FindByID(ctx, ln.ProductID)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	if p == nil {
		return nil, apperror.NewInvalidArgument(fmt.Sprintf("line %d: product not found", n)).
			WithDetail("line", n).
			WithDetail("product_id", ln.ProductID)
	}

	unitPrice := p.RetailPriceCents
	if ln.UnitPriceCents != nil {
		unitPrice = *ln.UnitPriceCents
	}
	unitCost := p.AvgCostCents

	revenue, err := money.LineTotal(ln.Qty, unitPrice)
	if err != nil {
		return nil, apperror.NewInvalidArgument(fmt.Sprintf("line %d: revenue out of range", n)).
			WithDetail("line", n)
	}
	cogs, err := money.LineTotal(ln.Qty, unitCost)
	if err != nil {
		return nil, apperror.NewInvalidArgument(fmt.Sprintf("line %d: cost out of range", n)).
			WithDetail("line", n)
	}

	line := &model.SaleLine{
		ID:                    ident.New(ident.PrefixSaleLine),
		SaleID:                s.ID,
		ProductID:             p.ID,
		Qty:                   ln.Qty,
		UnitPriceCents:        unitPrice,
		UnitCostSnapshotCents: unitCost,
		LineRevenueCents:      revenue,
		LineCogsCents:         cogs,
	}

	now := model.NewTimestamp(uc.clock.Now())
	if err := uc.productRepo.UpdateStock(ctx, p.ID, money.AddQty(p.OnHandQty, -ln.Qty), p.AvgCostCents, now); err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	if err := uc.repo.CreateLine(ctx, line); err != nil {
		return nil, apperror.NewStoreFailure(err)
	}

	refType, refID := model.ReferenceSale, s.ID
	movement := &model.InventoryMovement{
		ID:                   ident.New(ident.PrefixMovement),
		ProductID:            p.ID,
		Type:                 model.MovementSale,
		QtyDelta:             -ln.Qty,
		AvgCostSnapshotCents: unitCost,
		ReferenceType:        &refType,
		ReferenceID:          &refID,
		Note:                 s.Note,
		CreatedAt:            now,
	}
	if err := uc.movementRepo.LogMovement(ctx, movement); err != nil {
		return nil, apperror.NewStoreFailure(err)
	}

	return line, nil
}

func (uc *saleUseCase) GetSale(ctx context.Context, id string) (*model.Sale, error) {
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	if s == nil {
		return nil, apperror.NewNotFound("sale", id)
	}

	lines, err := uc.repo.FindLines(ctx, s.ID)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	s.Lines = lines
	return s, nil
}
