package dto

type AdjustInput struct {
	ProductID string
	QtyDelta  float64
	Note      string
}

type ReceiveInput struct {
	ProductID     string
	QtyReceived   float64
	UnitCostCents int64
	Note          string
}

type BackbarInput struct {
	ProductID string
	QtyUsed   float64
	Note      string
}
