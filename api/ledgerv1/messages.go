package ledgerv1

// Timestamps are ISO-8601 strings. Money is minor units; request amounts are
// JSON numbers and are rounded half-up to whole units by the handlers.

type Empty struct{}

type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// Products

type Product struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	SKU              *string `json:"sku"`
	Brand            *string `json:"brand"`
	Category         *string `json:"category"`
	RetailPriceCents int64   `json:"retail_price_cents"`
	AvgCostCents     int64   `json:"avg_cost_cents"`
	ReorderPoint     int64   `json:"reorder_point"`
	OnHandQty        float64 `json:"on_hand_qty"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

type UpsertProductRequest struct {
	ID               string  `json:"id,omitempty"`
	Name             string  `json:"name"`
	SKU              string  `json:"sku,omitempty"`
	Brand            string  `json:"brand,omitempty"`
	Category         string  `json:"category,omitempty"`
	RetailPriceCents float64 `json:"retail_price_cents"`
	AvgCostCents     float64 `json:"avg_cost_cents"`
	ReorderPoint     int64   `json:"reorder_point"`
	OnHandQty        float64 `json:"on_hand_qty"`
}

type UpsertProductResponse struct {
	ID string `json:"id"`
}

type GetProductRequest struct {
	ID string `json:"id"`
}

type ListProductsRequest struct{}

type ListProductsResponse struct {
	Products []*Product `json:"products"`
}

type DeleteProductRequest struct {
	ID string `json:"id"`
}

// Inventory

type Movement struct {
	ID                   string  `json:"id"`
	ProductID            string  `json:"product_id"`
	Type                 string  `json:"type"`
	QtyDelta             float64 `json:"qty_delta"`
	UnitCostCents        *int64  `json:"unit_cost_cents"`
	AvgCostSnapshotCents int64   `json:"avg_cost_snapshot_cents"`
	ReferenceType        *string `json:"reference_type"`
	ReferenceID          *string `json:"reference_id"`
	Note                 *string `json:"note"`
	CreatedAt            string  `json:"created_at"`
}

type AdjustRequest struct {
	ProductID string  `json:"product_id"`
	QtyDelta  float64 `json:"qty_delta"`
	Note      string  `json:"note,omitempty"`
}

type AdjustResponse struct {
	OnHandQty float64 `json:"on_hand_qty"`
}

type ReceiveRequest struct {
	ProductID     string  `json:"product_id"`
	QtyReceived   float64 `json:"qty_received"`
	UnitCostCents float64 `json:"unit_cost_cents"`
	Note          string  `json:"note,omitempty"`
}

type ReceiveResponse struct {
	OnHandQty    float64 `json:"on_hand_qty"`
	AvgCostCents int64   `json:"avg_cost_cents"`
}

type UseBackbarRequest struct {
	ProductID string  `json:"product_id"`
	QtyUsed   float64 `json:"qty_used"`
	Note      string  `json:"note,omitempty"`
}

type UseBackbarResponse struct {
	OnHandQty float64 `json:"on_hand_qty"`
}

type ListMovementsRequest struct {
	ProductID string `json:"product_id,omitempty"`
	Type      string `json:"type,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Page      int    `json:"page,omitempty"`
	PageSize  int    `json:"page_size,omitempty"`
}

type ListMovementsResponse struct {
	Movements []*Movement `json:"movements"`
	Total     int         `json:"total"`
}

// Sales

type SaleLineInput struct {
	ProductID      string   `json:"product_id"`
	Qty            float64  `json:"qty"`
	UnitPriceCents *float64 `json:"unit_price_cents,omitempty"`
}

type CreateSaleRequest struct {
	SoldAt string           `json:"sold_at,omitempty"`
	Note   string           `json:"note,omitempty"`
	Lines  []*SaleLineInput `json:"lines"`
}

type CreateSaleResponse struct {
	SaleID string `json:"sale_id"`
}

type GetSaleRequest struct {
	ID string `json:"id"`
}

type SaleLine struct {
	ID                    string  `json:"id"`
	ProductID             string  `json:"product_id"`
	Qty                   float64 `json:"qty"`
	UnitPriceCents        int64   `json:"unit_price_cents"`
	UnitCostSnapshotCents int64   `json:"unit_cost_snapshot_cents"`
	LineRevenueCents      int64   `json:"line_revenue_cents"`
	LineCogsCents         int64   `json:"line_cogs_cents"`
}

type Sale struct {
	ID     string      `json:"id"`
	SoldAt string      `json:"sold_at"`
	Note   *string     `json:"note"`
	Lines  []*SaleLine `json:"lines"`
}

// Expenses

type Expense struct {
	ID          string  `json:"id"`
	OccurredAt  string  `json:"occurred_at"`
	Direction   string  `json:"direction"`
	Category    string  `json:"category"`
	AmountCents int64   `json:"amount_cents"`
	Memo        *string `json:"memo"`
}

type ListExpensesRequest = DateRange

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type CreateExpenseRequest struct {
	OccurredAt  string  `json:"occurred_at,omitempty"`
	Direction   string  `json:"direction"`
	Category    string  `json:"category"`
	AmountCents float64 `json:"amount_cents"`
	Memo        string  `json:"memo,omitempty"`
}

type CreateExpenseResponse struct {
	ID string `json:"id"`
}

type DeleteExpenseRequest struct {
	ID string `json:"id"`
}

// Reports

type DashboardResponse struct {
	ProductCount        int64   `json:"product_count"`
	UnitsOnHand         float64 `json:"units_on_hand"`
	InventoryValueCents int64   `json:"inventory_value_cents"`
	IncomingCents       int64   `json:"incoming_cents"`
	OutgoingCents       int64   `json:"outgoing_cents"`
	NetCents            int64   `json:"net_cents"`
}

type ProductPLRow struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	Brand            *string `json:"brand"`
	Category         *string `json:"category"`
	UnitsSold        float64 `json:"units_sold"`
	RevenueCents     int64   `json:"revenue_cents"`
	CogsCents        int64   `json:"cogs_cents"`
	GrossProfitCents int64   `json:"gross_profit_cents"`
	GrossMargin      float64 `json:"gross_margin"`
	BackbarCents     int64   `json:"backbar_cents"`
	ShrinkCents      int64   `json:"shrink_cents"`
}

type ProductPLResponse struct {
	Rows []*ProductPLRow `json:"rows"`
}

type CategoryTotal struct {
	Category      string `json:"category"`
	IncomingCents int64  `json:"incoming_cents"`
	OutgoingCents int64  `json:"outgoing_cents"`
}

type ExpensesByCategoryResponse struct {
	Rows []*CategoryTotal `json:"rows"`
}

type LowStockRequest struct{}

type LowStockResponse struct {
	Products []*Product `json:"products"`
}
