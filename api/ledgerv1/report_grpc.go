package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ReportService_Dashboard_FullMethodName          = "/ledger.v1.ReportService/Dashboard"
	ReportService_ProductPL_FullMethodName          = "/ledger.v1.ReportService/ProductPL"
	ReportService_ExpensesByCategory_FullMethodName = "/ledger.v1.ReportService/ExpensesByCategory"
	ReportService_LowStock_FullMethodName           = "/ledger.v1.ReportService/LowStock"
)

type ReportServiceClient interface {
	Dashboard(ctx context.Context, in *DateRange, opts ...grpc.CallOption) (*DashboardResponse, error)
	ProductPL(ctx context.Context, in *DateRange, opts ...grpc.CallOption) (*ProductPLResponse, error)
	ExpensesByCategory(ctx context.Context, in *DateRange, opts ...grpc.CallOption) (*ExpensesByCategoryResponse, error)
	LowStock(ctx context.Context, in *LowStockRequest, opts ...grpc.CallOption) (*LowStockResponse, error)
}

type reportServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewReportServiceClient returns a client that always uses the JSON codec.
func NewReportServiceClient(cc grpc.ClientConnInterface) ReportServiceClient {
	return &reportServiceClient{cc}
}

func (c *reportServiceClient) Dashboard(ctx context.Context, in *DateRange, opts ...grpc.CallOption) (*DashboardResponse, error) {
	return invoke[DashboardResponse](ctx, c.cc, ReportService_Dashboard_FullMethodName, in, opts)
}

func (c *reportServiceClient) ProductPL(ctx context.Context, in *DateRange, opts ...grpc.CallOption) (*ProductPLResponse, error) {
	return invoke[ProductPLResponse](ctx, c.cc, ReportService_ProductPL_FullMethodName, in, opts)
}

func (c *reportServiceClient) ExpensesByCategory(ctx context.Context, in *DateRange, opts ...grpc.CallOption) (*ExpensesByCategoryResponse, error) {
	return invoke[ExpensesByCategoryResponse](ctx, c.cc, ReportService_ExpensesByCategory_FullMethodName, in, opts)
}

func (c *reportServiceClient) LowStock(ctx context.Context, in *LowStockRequest, opts ...grpc.CallOption) (*LowStockResponse, error) {
	return invoke[LowStockResponse](ctx, c.cc, ReportService_LowStock_FullMethodName, in, opts)
}

type ReportServiceServer interface {
	Dashboard(context.Context, *DateRange) (*DashboardResponse, error)
	ProductPL(context.Context, *DateRange) (*ProductPLResponse, error)
	ExpensesByCategory(context.Context, *DateRange) (*ExpensesByCategoryResponse, error)
	LowStock(context.Context, *LowStockRequest) (*LowStockResponse, error)
}

// UnimplementedReportServiceServer can be embedded to stay forward compatible.
type UnimplementedReportServiceServer struct{}

func (UnimplementedReportServiceServer) Dashboard(context.Context, *DateRange) (*DashboardResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Dashboard not implemented")
}

func (UnimplementedReportServiceServer) ProductPL(context.Context, *DateRange) (*ProductPLResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ProductPL not implemented")
}

func (UnimplementedReportServiceServer) ExpensesByCategory(context.Context, *DateRange) (*ExpensesByCategoryResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ExpensesByCategory not implemented")
}

func (UnimplementedReportServiceServer) LowStock(context.Context, *LowStockRequest) (*LowStockResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method LowStock not implemented")
}

func RegisterReportServiceServer(s grpc.ServiceRegistrar, srv ReportServiceServer) {
	s.RegisterService(&ReportService_ServiceDesc, srv)
}

var ReportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ledger.v1.ReportService",
	HandlerType: (*ReportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Dashboard",
			Handler: unaryHandler(ReportService_Dashboard_FullMethodName, func(srv any, ctx context.Context, in *DateRange) (*DashboardResponse, error) {
				return srv.(ReportServiceServer).Dashboard(ctx, in)
			}),
		},
		{
			MethodName: "ProductPL",
			Handler: unaryHandler(ReportService_ProductPL_FullMethodName, func(srv any, ctx context.Context, in *DateRange) (*ProductPLResponse, error) {
				return srv.(ReportServiceServer).ProductPL(ctx, in)
			}),
		},
		{
			MethodName: "ExpensesByCategory",
			Handler: unaryHandler(ReportService_ExpensesByCategory_FullMethodName, func(srv any, ctx context.Context, in *DateRange) (*ExpensesByCategoryResponse, error) {
				return srv.(ReportServiceServer).ExpensesByCategory(ctx, in)
			}),
		},
		{
			MethodName: "LowStock",
			Handler: unaryHandler(ReportService_LowStock_FullMethodName, func(srv any, ctx context.Context, in *LowStockRequest) (*LowStockResponse, error) {
				return srv.(ReportServiceServer).LowStock(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/report.proto",
}
