package dto

import "github.com/fekuna/omnipos-ledger-service/internal/model"

type CreateSaleInput struct {
	// SoldAt defaults to now when nil.
	SoldAt *model.Timestamp
	Note   string
	Lines  []SaleLineInput
}

type SaleLineInput struct {
	ProductID string
	Qty       float64
	// UnitPriceCents falls back to the product's retail price when nil.
	UnitPriceCents *int64
}
