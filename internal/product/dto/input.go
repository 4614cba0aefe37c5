package dto

// UpsertProductInput creates a product when ID is empty and replaces the
// editable fields otherwise. Blank optional strings are stored as NULL.
//
// Upsert fails with InvalidArgument for a blank Name and with NotFound when
// ID is set but names no product; it never creates a product under a
// caller-chosen ID.
type UpsertProductInput struct {
	ID               string
	Name             string
	SKU              string
	Brand            string
	Category         string
	RetailPriceCents int64
	AvgCostCents     int64
	ReorderPoint     int64
	OnHandQty        float64
}
