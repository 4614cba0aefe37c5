package dto

type InventoryTotals struct {
	ProductCount        int64   `db:"product_count"`
	UnitsOnHand         float64 `db:"units_on_hand"`
	InventoryValueCents float64 `db:"inventory_value_cents"`
}

type LedgerTotals struct {
	IncomingCents int64 `db:"incoming_cents"`
	OutgoingCents int64 `db:"outgoing_cents"`
}

// ProductCost is a movement-derived cost roll-up for one product.
type ProductCost struct {
	ProductID string  `db:"product_id"`
	CostCents float64 `db:"cost_cents"`
}
