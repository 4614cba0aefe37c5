package handler

import (
	"context"

	"go.uber.org/zap"

	ledgerv1 "github.com/fekuna/omnipos-ledger-service/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/internal/product"
	"github.com/fekuna/omnipos-ledger-service/internal/product/dto"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

type ProductHandler struct {
	ledgerv1.UnimplementedProductServiceServer
	uc     product.UseCase
	logger logger.ZapLogger
}

func NewProductHandler(uc product.UseCase, log logger.ZapLogger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ProductHandler) Upsert(ctx context.Context, req *ledgerv1.UpsertProductRequest) (*ledgerv1.UpsertProductResponse, error) {
	retail, err := money.FromFloat(req.RetailPriceCents)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument("retail_price_cents out of range"))
	}
	avgCost, err := money.FromFloat(req.AvgCostCents)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument("avg_cost_cents out of range"))
	}

	input := &dto.UpsertProductInput{
		ID:               req.ID,
		Name:             req.Name,
		SKU:              req.SKU,
		Brand:            req.Brand,
		Category:         req.Category,
		RetailPriceCents: retail,
		AvgCostCents:     avgCost,
		ReorderPoint:     req.ReorderPoint,
		OnHandQty:        req.OnHandQty,
	}

	p, err := h.uc.UpsertProduct(ctx, input)
	if err != nil {
		h.logger.Error("failed to upsert product", zap.String("id", req.ID), zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}

	return &ledgerv1.UpsertProductResponse{ID: p.ID}, nil
}

func (h *ProductHandler) Get(ctx context.Context, req *ledgerv1.GetProductRequest) (*ledgerv1.Product, error) {
	p, err := h.uc.GetProduct(ctx, req.ID)
	if err != nil {
		return nil, apperror.GRPCStatus(err)
	}
	return MapProductToProto(p), nil
}

func (h *ProductHandler) List(ctx context.Context, req *ledgerv1.ListProductsRequest) (*ledgerv1.ListProductsResponse, error) {
	products, err := h.uc.ListProducts(ctx)
	if err != nil {
		h.logger.Error("failed to list products", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.ListProductsResponse{Products: MapProductsToProto(products)}, nil
}

func (h *ProductHandler) Delete(ctx context.Context, req *ledgerv1.DeleteProductRequest) (*ledgerv1.Empty, error) {
	if err := h.uc.DeleteProduct(ctx, req.ID); err != nil {
		h.logger.Error("failed to delete product", zap.String("id", req.ID), zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.Empty{}, nil
}

func MapProductToProto(p *model.Product) *ledgerv1.Product {
	return &ledgerv1.Product{
		ID:               p.ID,
		Name:             p.Name,
		SKU:              p.SKU,
		Brand:            p.Brand,
		Category:         p.Category,
		RetailPriceCents: p.RetailPriceCents,
		AvgCostCents:     p.AvgCostCents,
		ReorderPoint:     p.ReorderPoint,
		OnHandQty:        p.OnHandQty,
		CreatedAt:        p.CreatedAt.String(),
		UpdatedAt:        p.UpdatedAt.String(),
	}
}

func MapProductsToProto(products []model.Product) []*ledgerv1.Product {
	out := make([]*ledgerv1.Product, len(products))
	for i := range products {
		out[i] = MapProductToProto(&products[i])
	}
	return out
}
