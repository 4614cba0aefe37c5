package dto

import "github.com/fekuna/omnipos-ledger-service/internal/model"

type MovementFilters struct {
	ProductID string
	Type      model.MovementType
	Range     model.DateRange
	Page      int
	PageSize  int // 0 returns every matching row
}

// StockLevel is the product projection after a stock operation.
type StockLevel struct {
	ProductID    string
	OnHandQty    float64
	AvgCostCents int64
}
