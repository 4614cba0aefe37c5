package usecase

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/internal/expense"
	"github.com/fekuna/omnipos-ledger-service/internal/expense/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/ident"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

type expenseUseCase struct {
	repo   expense.Repository
	clock  clock.Clock
	logger logger.ZapLogger
}

func NewExpenseUseCase(repo expense.Repository, clk clock.Clock, log logger.ZapLogger) expense.UseCase {
	return &expenseUseCase{
		repo:   repo,
		clock:  clk,
		logger: log,
	}
}

func (uc *expenseUseCase) ListExpenses(ctx context.Context, r model.DateRange) ([]model.ExpenseEntry, error) {
	entries, err := uc.repo.FindAll(ctx, r)
	if err != nil {
		return nil, apperror.NewStoreFailure(err)
	}
	return entries, nil
}

func (uc *expenseUseCase) CreateExpense(ctx context.Context, input *dto.CreateExpenseInput) (*model.ExpenseEntry, error) {
	if !input.Direction.Valid() {
		return nil, apperror.NewInvalidArgument("direction must be IN or OUT").
			WithDetail("direction", string(input.Direction))
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, apperror.NewInvalidArgument("category is required")
	}

	occurredAt := model.NewTimestamp(uc.clock.Now())
	if input.OccurredAt != nil {
		occurredAt = *input.OccurredAt
	}

	entry := &model.ExpenseEntry{
		ID:          ident.New(ident.PrefixExpense),
		OccurredAt:  occurredAt,
		Direction:   input.Direction,
		Category:    category,
		AmountCents: input.AmountCents,
		Memo:        model.NullString(input.Memo),
	}

	if err := uc.repo.Create(ctx, entry); err != nil {
		return nil, apperror.NewStoreFailure(err)
	}

	uc.logger.Info("expense recorded",
		zap.String("expense_id", entry.ID),
		zap.String("direction", string(entry.Direction)),
		zap.Int64("amount_cents", entry.AmountCents),
	)
	return entry, nil
}

// DeleteExpense does not check existence; deleting an unknown id succeeds.
func (uc *expenseUseCase) DeleteExpense(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return apperror.NewStoreFailure(err)
	}
	uc.logger.Info("expense deleted", zap.String("expense_id", id))
	return nil
}
