package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fekuna/omnipos-ledger-service/internal/app"
	invDto "github.com/fekuna/omnipos-ledger-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/model"
	prodDto "github.com/fekuna/omnipos-ledger-service/internal/product/dto"
	saleDto "github.com/fekuna/omnipos-ledger-service/internal/sale/dto"
	"github.com/fekuna/omnipos-ledger-service/internal/testutil"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

type scenario struct {
	uc   *app.UseCases
	a, b string
}

func price(v int64) *int64 { return &v }

// seed builds two sold products and one idle product:
//
//	A: receive 10@400, sell 3 at retail 1000, backbar 1, adjust -2, adjust +1
//	B: receive 4@100, sell 1 at 5000
//	C: opening stock 10, never sold, never received
func seed(t *testing.T) *scenario {
	t.Helper()
	ctx := context.Background()
	tm := testutil.NewTestDB(t)
	uc := app.NewUseCases(tm, testutil.NewClock(), logger.NewNop())

	a, err := uc.Product.UpsertProduct(ctx, &prodDto.UpsertProductInput{Name: "Argan Oil", Brand: "Moroccan", RetailPriceCents: 1000, ReorderPoint: 5})
	require.NoError(t, err)
	b, err := uc.Product.UpsertProduct(ctx, &prodDto.UpsertProductInput{Name: "Blow Dry Spray", RetailPriceCents: 2000})
	require.NoError(t, err)
	_, err = uc.Product.UpsertProduct(ctx, &prodDto.UpsertProductInput{Name: "Clay", OnHandQty: 10, ReorderPoint: 2})
	require.NoError(t, err)

	_, err = uc.Inventory.Receive(ctx, &invDto.ReceiveInput{ProductID: a.ID, QtyReceived: 10, UnitCostCents: 400})
	require.NoError(t, err)
	_, err = uc.Inventory.Receive(ctx, &invDto.ReceiveInput{ProductID: b.ID, QtyReceived: 4, UnitCostCents: 100})
	require.NoError(t, err)

	_, err = uc.Sale.CreateSale(ctx, &saleDto.CreateSaleInput{Lines: []saleDto.SaleLineInput{
		{ProductID: a.ID, Qty: 3},
		{ProductID: b.ID, Qty: 1, UnitPriceCents: price(5000)},
	}})
	require.NoError(t, err)

	_, err = uc.Inventory.UseBackbar(ctx, &invDto.BackbarInput{ProductID: a.ID, QtyUsed: 1})
	require.NoError(t, err)
	_, err = uc.Inventory.Adjust(ctx, &invDto.AdjustInput{ProductID: a.ID, QtyDelta: -2, Note: "damaged"})
	require.NoError(t, err)
	_, err = uc.Inventory.Adjust(ctx, &invDto.AdjustInput{ProductID: a.ID, QtyDelta: 1, Note: "found"})
	require.NoError(t, err)

	return &scenario{uc: uc, a: a.ID, b: b.ID}
}

func TestDashboard(t *testing.T) {
	s := seed(t)

	d, err := s.uc.Report.Dashboard(context.Background(), model.DefaultRange())
	require.NoError(t, err)

	assert.Equal(t, int64(3), d.ProductCount)
	assert.InDelta(t, 18.0, d.UnitsOnHand, 1e-9)
	assert.Equal(t, int64(2300), d.InventoryValueCents)
	assert.Equal(t, int64(8000), d.IncomingCents)
	assert.Equal(t, int64(4800), d.OutgoingCents)
	assert.Equal(t, int64(3200), d.NetCents)
}

func TestDashboard_NetMatchesLedgerInRange(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	// Every entry sits at the fixed clock instant, so a window starting
	// later drops the ledger but keeps the stock valuation.
	later := model.DateRange{From: model.NewTimestamp(testutil.Epoch.Add(time.Millisecond)), To: model.RangeEnd}
	d, err := s.uc.Report.Dashboard(ctx, later)
	require.NoError(t, err)
	assert.Zero(t, d.IncomingCents)
	assert.Zero(t, d.OutgoingCents)
	assert.Zero(t, d.NetCents)
	assert.Equal(t, int64(2300), d.InventoryValueCents)

	exact := model.DateRange{From: model.NewTimestamp(testutil.Epoch), To: model.NewTimestamp(testutil.Epoch)}
	entries, err := s.uc.Expense.ListExpenses(ctx, exact)
	require.NoError(t, err)

	var in, out int64
	for _, e := range entries {
		if e.Direction == model.DirectionIn {
			in += e.AmountCents
		} else {
			out += e.AmountCents
		}
	}
	d, err = s.uc.Report.Dashboard(ctx, exact)
	require.NoError(t, err)
	assert.Equal(t, in-out, d.NetCents)
}

func TestProductPL(t *testing.T) {
	s := seed(t)

	rows, err := s.uc.Report.ProductPL(context.Background(), model.DefaultRange())
	require.NoError(t, err)
	require.Len(t, rows, 2, "only products with sales in range")

	b, a := rows[0], rows[1]
	assert.Equal(t, s.b, b.ProductID, "ordered by revenue")
	assert.Equal(t, int64(5000), b.RevenueCents)
	assert.Equal(t, int64(100), b.CogsCents)
	assert.Equal(t, int64(4900), b.GrossProfitCents)
	assert.InDelta(t, 0.98, b.GrossMargin, 1e-9)
	assert.Zero(t, b.BackbarCents)
	assert.Zero(t, b.ShrinkCents)

	assert.Equal(t, s.a, a.ProductID)
	assert.Equal(t, "Argan Oil", a.ProductName)
	require.NotNil(t, a.Brand)
	assert.Equal(t, "Moroccan", *a.Brand)
	assert.Equal(t, 3.0, a.UnitsSold)
	assert.Equal(t, int64(3000), a.RevenueCents)
	assert.Equal(t, int64(1200), a.CogsCents)
	assert.Equal(t, int64(1800), a.GrossProfitCents)
	assert.InDelta(t, 0.6, a.GrossMargin, 1e-9)
	assert.Equal(t, int64(400), a.BackbarCents)
	assert.Equal(t, int64(800), a.ShrinkCents, "only negative adjustments count as shrink")
}

func TestProductPL_Idempotent(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	first, err := s.uc.Report.ProductPL(ctx, model.DefaultRange())
	require.NoError(t, err)
	second, err := s.uc.Report.ProductPL(ctx, model.DefaultRange())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProductPL_SaleTimeAndMovementTimeDiverge(t *testing.T) {
	ctx := context.Background()
	s := seed(t)

	backdated := model.NewTimestamp(testutil.Epoch.Add(-48 * time.Hour))
	_, err := s.uc.Sale.CreateSale(ctx, &saleDto.CreateSaleInput{
		SoldAt: &backdated,
		Lines:  []saleDto.SaleLineInput{{ProductID: s.a, Qty: 1}},
	})
	require.NoError(t, err)

	old := model.DateRange{
		From: model.NewTimestamp(testutil.Epoch.Add(-49 * time.Hour)),
		To:   model.NewTimestamp(testutil.Epoch.Add(-47 * time.Hour)),
	}
	rows, err := s.uc.Report.ProductPL(ctx, old)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(1000), rows[0].RevenueCents)
	assert.Zero(t, rows[0].BackbarCents, "backbar use happened at movement time, outside the window")

	current := model.DateRange{From: model.NewTimestamp(testutil.Epoch), To: model.NewTimestamp(testutil.Epoch)}
	rows, err = s.uc.Report.ProductPL(ctx, current)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(3000), rows[1].RevenueCents, "backdated sale excluded")
}

func TestExpensesByCategory(t *testing.T) {
	s := seed(t)

	rows, err := s.uc.Report.ExpensesByCategory(context.Background(), model.DefaultRange())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, model.CategoryInventoryPurchases, rows[0].Category)
	assert.Equal(t, int64(4400), rows[0].OutgoingCents)
	assert.Equal(t, model.CategoryBackbarSupplies, rows[1].Category)
	assert.Equal(t, int64(400), rows[1].OutgoingCents)
	assert.Equal(t, model.CategoryRetailSales, rows[2].Category)
	assert.Equal(t, int64(8000), rows[2].IncomingCents)
	assert.Zero(t, rows[2].OutgoingCents)
}

func TestLowStock(t *testing.T) {
	s := seed(t)

	rows, err := s.uc.Report.LowStock(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, s.a, rows[0].ID)
	assert.Equal(t, 5.0, rows[0].OnHandQty)
}

func TestReports_EmptyStore(t *testing.T) {
	ctx := context.Background()
	uc := app.NewUseCases(testutil.NewTestDB(t), testutil.NewClock(), logger.NewNop())

	d, err := uc.Report.Dashboard(ctx, model.DefaultRange())
	require.NoError(t, err)
	assert.Equal(t, &model.Dashboard{}, d)

	rows, err := uc.Report.ProductPL(ctx, model.DefaultRange())
	require.NoError(t, err)
	assert.Empty(t, rows)

	cats, err := uc.Report.ExpensesByCategory(ctx, model.DefaultRange())
	require.NoError(t, err)
	assert.Empty(t, cats)
}
