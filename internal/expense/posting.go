package expense

import (
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/ident"
)

// NewPosting builds the ledger entry that inventory and sales write alongside
// their own records.
func NewPosting(at model.Timestamp, dir model.Direction, category string, amountCents int64, memo string) *model.ExpenseEntry {
	return &model.ExpenseEntry{
		ID:          ident.New(ident.PrefixExpense),
		OccurredAt:  at,
		Direction:   dir,
		Category:    category,
		AmountCents: amountCents,
		Memo:        model.NullString(memo),
	}
}

// Memo prefixes a caller note, or falls back when there is none.
func Memo(prefix, note, fallback string) string {
	if note == "" {
		return fallback
	}
	return prefix + ": " + note
}
