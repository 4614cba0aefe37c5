package model

type Dashboard struct {
	ProductCount        int64   `json:"product_count"`
	UnitsOnHand         float64 `json:"units_on_hand"`
	InventoryValueCents int64   `json:"inventory_value_cents"`
	IncomingCents       int64   `json:"incoming_cents"`
	OutgoingCents       int64   `json:"outgoing_cents"`
	NetCents            int64   `json:"net_cents"`
}

type ProductPL struct {
	ProductID        string  `db:"product_id"`
	ProductName      string  `db:"product_name"`
	Brand            *string `db:"brand"`
	Category         *string `db:"category"`
	UnitsSold        float64 `db:"units_sold"`
	RevenueCents     int64   `db:"revenue_cents"`
	CogsCents        int64   `db:"cogs_cents"`
	GrossProfitCents int64   `db:"-"`
	GrossMargin      float64 `db:"-"`
	BackbarCents     int64   `db:"-"`
	ShrinkCents      int64   `db:"-"`
}

type CategoryTotal struct {
	Category      string `db:"category"`
	IncomingCents int64  `db:"incoming_cents"`
	OutgoingCents int64  `db:"outgoing_cents"`
}
