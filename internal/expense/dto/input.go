package dto

import "github.com/fekuna/omnipos-ledger-service/internal/model"

type CreateExpenseInput struct {
	// OccurredAt defaults to now when nil.
	OccurredAt  *model.Timestamp
	Direction   model.Direction
	Category    string
	AmountCents int64
	Memo        string
}
