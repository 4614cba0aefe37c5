package model

type Product struct {
	ID               string    `db:"id" json:"id"`
	Name             string    `db:"name" json:"name"`
	SKU              *string   `db:"sku" json:"sku"`
	Brand            *string   `db:"brand" json:"brand"`
	Category         *string   `db:"category" json:"category"`
	RetailPriceCents int64     `db:"retail_price_cents" json:"retail_price_cents"`
	AvgCostCents     int64     `db:"avg_cost_cents" json:"avg_cost_cents"`
	ReorderPoint     int64     `db:"reorder_point" json:"reorder_point"`
	OnHandQty        float64   `db:"on_hand_qty" json:"on_hand_qty"`
	CreatedAt        Timestamp `db:"created_at" json:"created_at"`
	UpdatedAt        Timestamp `db:"updated_at" json:"updated_at"`
}
