package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	SaleService_Create_FullMethodName = "/ledger.v1.SaleService/Create"
	SaleService_Get_FullMethodName    = "/ledger.v1.SaleService/Get"
)

type SaleServiceClient interface {
	Create(ctx context.Context, in *CreateSaleRequest, opts ...grpc.CallOption) (*CreateSaleResponse, error)
	Get(ctx context.Context, in *GetSaleRequest, opts ...grpc.CallOption) (*Sale, error)
}

type saleServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewSaleServiceClient returns a client that always uses the JSON codec.
func NewSaleServiceClient(cc grpc.ClientConnInterface) SaleServiceClient {
	return &saleServiceClient{cc}
}

func (c *saleServiceClient) Create(ctx context.Context, in *CreateSaleRequest, opts ...grpc.CallOption) (*CreateSaleResponse, error) {
	return invoke[CreateSaleResponse](ctx, c.cc, SaleService_Create_FullMethodName, in, opts)
}

func (c *saleServiceClient) Get(ctx context.Context, in *GetSaleRequest, opts ...grpc.CallOption) (*Sale, error) {
	return invoke[Sale](ctx, c.cc, SaleService_Get_FullMethodName, in, opts)
}

type SaleServiceServer interface {
	Create(context.Context, *CreateSaleRequest) (*CreateSaleResponse, error)
	Get(context.Context, *GetSaleRequest) (*Sale, error)
}

// UnimplementedSaleServiceServer can be embedded to stay forward compatible.
type UnimplementedSaleServiceServer struct{}

func (UnimplementedSaleServiceServer) Create(context.Context, *CreateSaleRequest) (*CreateSaleResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Create not implemented")
}

func (UnimplementedSaleServiceServer) Get(context.Context, *GetSaleRequest) (*Sale, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}

func RegisterSaleServiceServer(s grpc.ServiceRegistrar, srv SaleServiceServer) {
	s.RegisterService(&SaleService_ServiceDesc, srv)
}

var SaleService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ledger.v1.SaleService",
	HandlerType: (*SaleServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Create",
			Handler: unaryHandler(SaleService_Create_FullMethodName, func(srv any, ctx context.Context, in *CreateSaleRequest) (*CreateSaleResponse, error) {
				return srv.(SaleServiceServer).Create(ctx, in)
			}),
		},
		{
			MethodName: "Get",
			Handler: unaryHandler(SaleService_Get_FullMethodName, func(srv any, ctx context.Context, in *GetSaleRequest) (*Sale, error) {
				return srv.(SaleServiceServer).Get(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/sale.proto",
}
