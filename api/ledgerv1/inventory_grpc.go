package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	InventoryService_Adjust_FullMethodName        = "/ledger.v1.InventoryService/Adjust"
	InventoryService_Receive_FullMethodName       = "/ledger.v1.InventoryService/Receive"
	InventoryService_UseBackbar_FullMethodName    = "/ledger.v1.InventoryService/UseBackbar"
	InventoryService_ListMovements_FullMethodName = "/ledger.v1.InventoryService/ListMovements"
)

type InventoryServiceClient interface {
	Adjust(ctx context.Context, in *AdjustRequest, opts ...grpc.CallOption) (*AdjustResponse, error)
	Receive(ctx context.Context, in *ReceiveRequest, opts ...grpc.CallOption) (*ReceiveResponse, error)
	UseBackbar(ctx context.Context, in *UseBackbarRequest, opts ...grpc.CallOption) (*UseBackbarResponse, error)
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewInventoryServiceClient returns a client that always uses the JSON codec.
func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc}
}

func (c *inventoryServiceClient) Adjust(ctx context.Context, in *AdjustRequest, opts ...grpc.CallOption) (*AdjustResponse, error) {
	return invoke[AdjustResponse](ctx, c.cc, InventoryService_Adjust_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) Receive(ctx context.Context, in *ReceiveRequest, opts ...grpc.CallOption) (*ReceiveResponse, error) {
	return invoke[ReceiveResponse](ctx, c.cc, InventoryService_Receive_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) UseBackbar(ctx context.Context, in *UseBackbarRequest, opts ...grpc.CallOption) (*UseBackbarResponse, error) {
	return invoke[UseBackbarResponse](ctx, c.cc, InventoryService_UseBackbar_FullMethodName, in, opts)
}

func (c *inventoryServiceClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	return invoke[ListMovementsResponse](ctx, c.cc, InventoryService_ListMovements_FullMethodName, in, opts)
}

type InventoryServiceServer interface {
	Adjust(context.Context, *AdjustRequest) (*AdjustResponse, error)
	Receive(context.Context, *ReceiveRequest) (*ReceiveResponse, error)
	UseBackbar(context.Context, *UseBackbarRequest) (*UseBackbarResponse, error)
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
}

// UnimplementedInventoryServiceServer can be embedded to stay forward compatible.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) Adjust(context.Context, *AdjustRequest) (*AdjustResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Adjust not implemented")
}

func (UnimplementedInventoryServiceServer) Receive(context.Context, *ReceiveRequest) (*ReceiveResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Receive not implemented")
}

func (UnimplementedInventoryServiceServer) UseBackbar(context.Context, *UseBackbarRequest) (*UseBackbarResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method UseBackbar not implemented")
}

func (UnimplementedInventoryServiceServer) ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMovements not implemented")
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ledger.v1.InventoryService",
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Adjust",
			Handler: unaryHandler(InventoryService_Adjust_FullMethodName, func(srv any, ctx context.Context, in *AdjustRequest) (*AdjustResponse, error) {
				return srv.(InventoryServiceServer).Adjust(ctx, in)
			}),
		},
		{
			MethodName: "Receive",
			Handler: unaryHandler(InventoryService_Receive_FullMethodName, func(srv any, ctx context.Context, in *ReceiveRequest) (*ReceiveResponse, error) {
				return srv.(InventoryServiceServer).Receive(ctx, in)
			}),
		},
		{
			MethodName: "UseBackbar",
			Handler: unaryHandler(InventoryService_UseBackbar_FullMethodName, func(srv any, ctx context.Context, in *UseBackbarRequest) (*UseBackbarResponse, error) {
				return srv.(InventoryServiceServer).UseBackbar(ctx, in)
			}),
		},
		{
			MethodName: "ListMovements",
			Handler: unaryHandler(InventoryService_ListMovements_FullMethodName, func(srv any, ctx context.Context, in *ListMovementsRequest) (*ListMovementsResponse, error) {
				return srv.(InventoryServiceServer).ListMovements(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/inventory.proto",
}
