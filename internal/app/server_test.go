package app

import (
	"context"
	"encoding/json"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	ledgerv1 "github.com/fekuna/omnipos-ledger-service/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/internal/testutil"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
)

func dial(t *testing.T) (*grpc.ClientConn, *Server) {
	t.Helper()

	srv := NewServer(testutil.NewTestDB(t), testutil.NewClock(), logger.NewNop())
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.GRPC.Serve(lis) }()
	t.Cleanup(srv.GRPC.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn, srv
}

func TestServer_RoundTrip(t *testing.T) {
	ctx := context.Background()
	conn, _ := dial(t)

	products := ledgerv1.NewProductServiceClient(conn)
	inventory := ledgerv1.NewInventoryServiceClient(conn)
	sales := ledgerv1.NewSaleServiceClient(conn)
	reports := ledgerv1.NewReportServiceClient(conn)
	expenses := ledgerv1.NewExpenseServiceClient(conn)

	created, err := products.Upsert(ctx, &ledgerv1.UpsertProductRequest{Name: "Shampoo", Brand: " ", RetailPriceCents: 1500})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := products.Get(ctx, &ledgerv1.GetProductRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, "Shampoo", got.Name)
	assert.Nil(t, got.Brand)
	assert.Equal(t, "2024-03-01T09:00:00.000Z", got.CreatedAt)

	recv, err := inventory.Receive(ctx, &ledgerv1.ReceiveRequest{ProductID: created.ID, QtyReceived: 4, UnitCostCents: 500})
	require.NoError(t, err)
	assert.Equal(t, 4.0, recv.OnHandQty)
	assert.Equal(t, int64(500), recv.AvgCostCents)

	sale, err := sales.Create(ctx, &ledgerv1.CreateSaleRequest{
		Note:  "walk-in",
		Lines: []*ledgerv1.SaleLineInput{{ProductID: created.ID, Qty: 2}},
	})
	require.NoError(t, err)

	fetched, err := sales.Get(ctx, &ledgerv1.GetSaleRequest{ID: sale.SaleID})
	require.NoError(t, err)
	require.Len(t, fetched.Lines, 1)
	assert.Equal(t, int64(3000), fetched.Lines[0].LineRevenueCents)
	assert.Equal(t, int64(1000), fetched.Lines[0].LineCogsCents)

	moves, err := inventory.ListMovements(ctx, &ledgerv1.ListMovementsRequest{ProductID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, 2, moves.Total)

	dash, err := reports.Dashboard(ctx, &ledgerv1.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), dash.ProductCount)
	assert.Equal(t, int64(1000), dash.InventoryValueCents)
	assert.Equal(t, int64(3000), dash.IncomingCents)
	assert.Equal(t, int64(2000), dash.OutgoingCents)
	assert.Equal(t, int64(1000), dash.NetCents)

	pl, err := reports.ProductPL(ctx, &ledgerv1.DateRange{From: "2024-03-01", To: "2024-03-02"})
	require.NoError(t, err)
	require.Len(t, pl.Rows, 1)
	assert.Equal(t, int64(2000), pl.Rows[0].GrossProfitCents)

	list, err := expenses.List(ctx, &ledgerv1.ListExpensesRequest{})
	require.NoError(t, err)
	assert.Len(t, list.Expenses, 2)
}

func TestServer_ErrorCodes(t *testing.T) {
	ctx := context.Background()
	conn, _ := dial(t)

	products := ledgerv1.NewProductServiceClient(conn)
	sales := ledgerv1.NewSaleServiceClient(conn)
	reports := ledgerv1.NewReportServiceClient(conn)

	_, err := products.Get(ctx, &ledgerv1.GetProductRequest{ID: "prd_missing"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = products.Upsert(ctx, &ledgerv1.UpsertProductRequest{Name: "   "})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = products.Upsert(ctx, &ledgerv1.UpsertProductRequest{ID: "prd_missing", Name: "Ghost"})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = reports.Dashboard(ctx, &ledgerv1.DateRange{From: "last week"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	created, err := products.Upsert(ctx, &ledgerv1.UpsertProductRequest{Name: "Mask", RetailPriceCents: 900})
	require.NoError(t, err)
	_, err = sales.Create(ctx, &ledgerv1.CreateSaleRequest{Lines: []*ledgerv1.SaleLineInput{{ProductID: created.ID, Qty: 1}}})
	require.NoError(t, err)

	_, err = products.Delete(ctx, &ledgerv1.DeleteProductRequest{ID: created.ID})
	assert.Equal(t, codes.FailedPrecondition, status.Code(err))
}

func TestServer_Health(t *testing.T) {
	ctx := context.Background()
	conn, srv := dial(t)
	client := healthpb.NewHealthClient(conn)

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ledgerv1.SaleService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.Status)

	srv.Health.Shutdown()
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: ledgerv1.SaleService_ServiceDesc.ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.Status)
}

func TestServer_FractionalAmountsAreRounded(t *testing.T) {
	ctx := context.Background()
	conn, _ := dial(t)
	expenses := ledgerv1.NewExpenseServiceClient(conn)
	products := ledgerv1.NewProductServiceClient(conn)
	sales := ledgerv1.NewSaleServiceClient(conn)

	_, err := expenses.Create(ctx, &ledgerv1.CreateExpenseRequest{Direction: "OUT", Category: "Rent", AmountCents: 1250.5})
	require.NoError(t, err)
	list, err := expenses.List(ctx, &ledgerv1.ListExpensesRequest{})
	require.NoError(t, err)
	require.Len(t, list.Expenses, 1)
	assert.Equal(t, int64(1251), list.Expenses[0].AmountCents)

	created, err := products.Upsert(ctx, &ledgerv1.UpsertProductRequest{Name: "Toner", RetailPriceCents: 999.4})
	require.NoError(t, err)
	got, err := products.Get(ctx, &ledgerv1.GetProductRequest{ID: created.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(999), got.RetailPriceCents)

	unit := 100.5
	sale, err := sales.Create(ctx, &ledgerv1.CreateSaleRequest{
		Lines: []*ledgerv1.SaleLineInput{{ProductID: created.ID, Qty: 2, UnitPriceCents: &unit}},
	})
	require.NoError(t, err)
	fetched, err := sales.Get(ctx, &ledgerv1.GetSaleRequest{ID: sale.SaleID})
	require.NoError(t, err)
	assert.Equal(t, int64(101), fetched.Lines[0].UnitPriceCents)
	assert.Equal(t, int64(202), fetched.Lines[0].LineRevenueCents)
}

func TestServer_AmountOutOfRange(t *testing.T) {
	ctx := context.Background()
	conn, _ := dial(t)
	expenses := ledgerv1.NewExpenseServiceClient(conn)
	inventory := ledgerv1.NewInventoryServiceClient(conn)
	products := ledgerv1.NewProductServiceClient(conn)

	_, err := expenses.Create(ctx, &ledgerv1.CreateExpenseRequest{Direction: "OUT", Category: "Rent", AmountCents: 1e30})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	created, err := products.Upsert(ctx, &ledgerv1.UpsertProductRequest{Name: "Gel"})
	require.NoError(t, err)
	_, err = inventory.Receive(ctx, &ledgerv1.ReceiveRequest{ProductID: created.ID, QtyReceived: 1e17, UnitCostCents: 1000})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	moves, err := inventory.ListMovements(ctx, &ledgerv1.ListMovementsRequest{ProductID: created.ID})
	require.NoError(t, err)
	assert.Zero(t, moves.Total)
	list, err := expenses.List(ctx, &ledgerv1.ListExpensesRequest{})
	require.NoError(t, err)
	assert.Empty(t, list.Expenses)
}

func TestServer_MalformedRequestIsInvalidArgument(t *testing.T) {
	ctx := context.Background()
	conn, _ := dial(t)

	for _, body := range []string{
		`{"direction":"OUT","category":"Rent","amount_cents":"lots"}`,
		`{"direction":"OUT","category":"Rent","amount_cents":true}`,
		`[1, 2]`,
	} {
		var out ledgerv1.CreateExpenseResponse
		err := conn.Invoke(ctx, ledgerv1.ExpenseService_Create_FullMethodName, json.RawMessage(body), &out,
			grpc.CallContentSubtype(ledgerv1.CodecName))

		st := status.Convert(err)
		assert.Equal(t, codes.InvalidArgument, st.Code(), body)
		assert.NotContains(t, st.Message(), "Go struct", body)
		assert.NotContains(t, st.Message(), "CreateExpenseRequest", body)
	}
}
