package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/internal/inventory"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/product"
	"github.com/fekuna/omnipos-ledger-service/internal/product/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger-service/pkg/ident"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

const (
	noteOpeningStock = "Opening stock"
	noteStockEdit    = "Stock set on product edit"
)

type productUseCase struct {
	tx           sqlite.Transactor
	repo         product.Repository
	movementRepo inventory.Repository
	clock        clock.Clock
	logger       logger.ZapLogger
}

func NewProductUseCase(tx sqlite.Transactor, repo product.Repository, movementRepo inventory.Repository, clk clock.Clock, log logger.ZapLogger) product.UseCase {
	return &productUseCase{
		tx:           tx,
		repo:         repo,
		movementRepo: movementRepo,
		clock:        clk,
		logger:       log,
	}
}

// UpsertProduct writes on_hand_qty directly, so any change is mirrored by an
// ADJUSTMENT movement to keep the movement sum equal to stock.
func (uc *productUseCase) UpsertProduct(ctx context.Context, input *dto.UpsertProductInput) (*model.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewInvalidArgument("name is required")
	}

	var saved *model.Product
	err := uc.tx.RunInTransaction(ctx, func(ctx context.Context) error {
		now := model.NewTimestamp(uc.clock.Now())
		p := &model.Product{
			ID:               input.ID,
			Name:             name,
			SKU:              model.NullString(input.SKU),
			Brand:            model.NullString(input.Brand),
			Category:         model.NullString(input.Category),
			RetailPriceCents: input.RetailPriceCents,
			AvgCostCents:     input.AvgCostCents,
			ReorderPoint:     input.ReorderPoint,
			OnHandQty:        input.OnHandQty,
			CreatedAt:        now,
			UpdatedAt:        now,
		}

		var oldQty float64
		note := noteOpeningStock
		if p.ID == "" {
			p.ID = ident.New(ident.PrefixProduct)
			if err := uc.repo.Create(ctx, p); err != nil {
				return apperror.NewStoreFailure(err)
			}
		} else {
			existing, err := uc.repo.FindByID(ctx, p.ID)
			if err != nil {
				return apperror.NewStoreFailure(err)
			}
			if existing == nil {
				return apperror.NewNotFound("product", p.ID)
			}
			p.CreatedAt = existing.CreatedAt
			oldQty = existing.OnHandQty
			note = noteStockEdit
			if err := uc.repo.Update(ctx, p); err != nil {
				return apperror.NewStoreFailure(err)
			}
		}

		if delta := money.AddQty(p.OnHandQty, -oldQty); delta != 0 {
			movement := &model.InventoryMovement{
				ID:                   ident.New(ident.PrefixMovement),
				ProductID:            p.ID,
				Type:                 model.MovementAdjustment,
				QtyDelta:             delta,
				AvgCostSnapshotCents: p.AvgCostCents,
				Note:                 &note,
				CreatedAt:            now,
			}
			if err := uc.movementRepo.LogMovement(ctx, movement); err != nil {
				return apperror.NewStoreFailure(err)
			}
		}

		saved = p
		return nil
	})
	if err != nil {
		return nil, apperror.Wrap(err)
	}

	uc.logger.Info("product saved", zap.String("product_id", saved.ID), zap.String("name", saved.Name))
	return saved, nil
}

func (uc *productUseCase) GetProduct(ctx context.Context, id string) (*model.Product, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	if p == nil {
		return nil, apperror.NewNotFound("product", id)
	}
	return p, nil
}

func (uc *productUseCase) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := uc.repo.FindAll(ctx)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	return products, nil
}

// DeleteProduct cascades to movements. Sale lines block it.
func (uc *productUseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if sqlite.IsForeignKeyViolation(err) {
			return apperror.NewConflict("product has sale history and cannot be deleted").
				WithDetail("id", id).
				WithCause(err)
		}
		return apperror.NewStoreFailure(err)
	}
	uc.logger.Info("product deleted", zap.String("product_id", id))
	return nil
}
