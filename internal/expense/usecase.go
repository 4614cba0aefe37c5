package expense

import (
	"context"

	"github.com/fekuna/omnipos-ledger-service/internal/expense/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
)

type UseCase interface {
	ListExpenses(ctx context.Context, r model.DateRange) ([]model.ExpenseEntry, error)
	CreateExpense(ctx context.Context, input *dto.CreateExpenseInput) (*model.ExpenseEntry, error)
	DeleteExpense(ctx context.Context, id string) error
}
