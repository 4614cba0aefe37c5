package expense

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, entry *model.ExpenseEntry) error
	FindAll(ctx context.Context, r model.DateRange) ([]model.ExpenseEntry, error)
	Delete(ctx context.Context, id string) error
}
