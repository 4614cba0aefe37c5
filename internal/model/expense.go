package model

type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

func (d Direction) Valid() bool {
	return d == DirectionIn || d == DirectionOut
}

type ExpenseEntry struct {
	ID          string    `db:"id"`
	OccurredAt  Timestamp `db:"occurred_at"`
	Direction   Direction `db:"direction"`
	Category    string    `db:"category"`
	AmountCents int64     `db:"amount_cents"`
	Memo        *string   `db:"memo"`
}
