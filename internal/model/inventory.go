package model

type MovementType string

const (
	MovementReceive    MovementType = "RECEIVE"
	MovementSale       MovementType = "SALE"
	MovementBackbarUse MovementType = "BACKBAR_USE"
	MovementAdjustment MovementType = "ADJUSTMENT"
)

func (t MovementType) Valid() bool {
	switch t {
	case MovementReceive, MovementSale, MovementBackbarUse, MovementAdjustment:
		return true
	}
	return false
}

const ReferenceSale = "SALE"

// InventoryMovement is append-only. AvgCostSnapshotCents is the product's
// average cost at the moment the movement was written.
type InventoryMovement struct {
	ID                   string       `db:"id"`
	ProductID            string       `db:"product_id"`
	Type                 MovementType `db:"type"`
	QtyDelta             float64      `db:"qty_delta"`
	UnitCostCents        *int64       `db:"unit_cost_cents"`
	AvgCostSnapshotCents int64        `db:"avg_cost_snapshot_cents"`
	ReferenceType        *string      `db:"reference_type"`
	ReferenceID          *string      `db:"reference_id"`
	Note                 *string      `db:"note"`
	CreatedAt            Timestamp    `db:"created_at"`
}
