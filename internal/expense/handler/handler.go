package handler

import (
	"context"

	"go.uber.org/zap"

	ledgerv1 "github.com/fekuna/omnipos-ledger-service/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/internal/expense"
	"github.com/fekuna/omnipos-ledger-service/internal/expense/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	"github.com/fekuna/omnipos-ledger-service/pkg/apperror"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/money"
)

type ExpenseHandler struct {
	ledgerv1.UnimplementedExpenseServiceServer
	uc     expense.UseCase
	logger logger.ZapLogger
}

func NewExpenseHandler(uc expense.UseCase, log logger.ZapLogger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *ExpenseHandler) List(ctx context.Context, req *ledgerv1.ListExpensesRequest) (*ledgerv1.ListExpensesResponse, error) {
	r, err := model.ParseRange(req.From, req.To)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument(err.Error()))
	}

	entries, err := h.uc.ListExpenses(ctx, r)
	if err != nil {
		h.logger.Error("failed to list expenses", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}

	out := make([]*ledgerv1.Expense, len(entries))
	for i, e := range entries {
		out[i] = &ledgerv1.Expense{
			ID:          e.ID,
			OccurredAt:  e.OccurredAt.String(),
			Direction:   string(e.Direction),
			Category:    e.Category,
			AmountCents: e.AmountCents,
			Memo:        e.Memo,
		}
	}
	return &ledgerv1.ListExpensesResponse{Expenses: out}, nil
}

func (h *ExpenseHandler) Create(ctx context.Context, req *ledgerv1.CreateExpenseRequest) (*ledgerv1.CreateExpenseResponse, error) {
	occurredAt, err := model.ParseOptionalTimestamp(req.OccurredAt)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument(err.Error()))
	}
	amount, err := money.FromFloat(req.AmountCents)
	if err != nil {
		return nil, apperror.GRPCStatus(apperror.NewInvalidArgument("amount_cents out of range"))
	}

	entry, err := h.uc.CreateExpense(ctx, &dto.CreateExpenseInput{
		OccurredAt:  occurredAt,
		Direction:   model.Direction(req.Direction),
		Category:    req.Category,
		AmountCents: amount,
		Memo:        req.Memo,
	})
	if err != nil {
		h.logger.Error("failed to create expense", zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.CreateExpenseResponse{ID: entry.ID}, nil
}

func (h *ExpenseHandler) Delete(ctx context.Context, req *ledgerv1.DeleteExpenseRequest) (*ledgerv1.Empty, error) {
	if err := h.uc.DeleteExpense(ctx, req.ID); err != nil {
		h.logger.Error("failed to delete expense", zap.String("id", req.ID), zap.Error(err))
		return nil, apperror.GRPCStatus(err)
	}
	return &ledgerv1.Empty{}, nil
}
