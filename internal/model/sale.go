package model

type Sale struct {
	ID     string     `db:"id"`
	SoldAt Timestamp  `db:"sold_at"`
	Note   *string    `db:"note"`
	Lines  []SaleLine `db:"-"`
}

type SaleLine struct {
	ID                    string  `db:"id"`
	SaleID                string  `db:"sale_id"`
	ProductID             string  `db:"product_id"`
	Qty                   float64 `db:"qty"`
	UnitPriceCents        int64   `db:"unit_price_cents"`
	UnitCostSnapshotCents int64   `db:"unit_cost_snapshot_cents"`
	LineRevenueCents      int64   `db:"line_revenue_cents"`
	LineCogsCents         int64   `db:"line_cogs_cents"`
}
