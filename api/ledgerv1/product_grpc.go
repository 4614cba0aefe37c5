package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ProductService_Upsert_FullMethodName = "/ledger.v1.ProductService/Upsert"
	ProductService_Get_FullMethodName    = "/ledger.v1.ProductService/Get"
	ProductService_List_FullMethodName   = "/ledger.v1.ProductService/List"
	ProductService_Delete_FullMethodName = "/ledger.v1.ProductService/Delete"
)

type ProductServiceClient interface {
	Upsert(ctx context.Context, in *UpsertProductRequest, opts ...grpc.CallOption) (*UpsertProductResponse, error)
	Get(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*Product, error)
	List(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error)
	Delete(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error)
}

type productServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewProductServiceClient returns a client that always uses the JSON codec.
func NewProductServiceClient(cc grpc.ClientConnInterface) ProductServiceClient {
	return &productServiceClient{cc}
}

func (c *productServiceClient) Upsert(ctx context.Context, in *UpsertProductRequest, opts ...grpc.CallOption) (*UpsertProductResponse, error) {
	return invoke[UpsertProductResponse](ctx, c.cc, ProductService_Upsert_FullMethodName, in, opts)
}

func (c *productServiceClient) Get(ctx context.Context, in *GetProductRequest, opts ...grpc.CallOption) (*Product, error) {
	return invoke[Product](ctx, c.cc, ProductService_Get_FullMethodName, in, opts)
}

func (c *productServiceClient) List(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, ProductService_List_FullMethodName, in, opts)
}

func (c *productServiceClient) Delete(ctx context.Context, in *DeleteProductRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, ProductService_Delete_FullMethodName, in, opts)
}

type ProductServiceServer interface {
	Upsert(context.Context, *UpsertProductRequest) (*UpsertProductResponse, error)
	Get(context.Context, *GetProductRequest) (*Product, error)
	List(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	Delete(context.Context, *DeleteProductRequest) (*Empty, error)
}

// UnimplementedProductServiceServer can be embedded to stay forward compatible.
type UnimplementedProductServiceServer struct{}

func (UnimplementedProductServiceServer) Upsert(context.Context, *UpsertProductRequest) (*UpsertProductResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Upsert not implemented")
}

func (UnimplementedProductServiceServer) Get(context.Context, *GetProductRequest) (*Product, error) {
	return nil, status.Error(codes.Unimplemented, "method Get not implemented")
}

func (UnimplementedProductServiceServer) List(context.Context, *ListProductsRequest) (*ListProductsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}

func (UnimplementedProductServiceServer) Delete(context.Context, *DeleteProductRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}

func RegisterProductServiceServer(s grpc.ServiceRegistrar, srv ProductServiceServer) {
	s.RegisterService(&ProductService_ServiceDesc, srv)
}

var ProductService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ledger.v1.ProductService",
	HandlerType: (*ProductServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Upsert",
			Handler: unaryHandler(ProductService_Upsert_FullMethodName, func(srv any, ctx context.Context, in *UpsertProductRequest) (*UpsertProductResponse, error) {
				return srv.(ProductServiceServer).Upsert(ctx, in)
			}),
		},
		{
			MethodName: "Get",
			Handler: unaryHandler(ProductService_Get_FullMethodName, func(srv any, ctx context.Context, in *GetProductRequest) (*Product, error) {
				return srv.(ProductServiceServer).Get(ctx, in)
			}),
		},
		{
			MethodName: "List",
			Handler: unaryHandler(ProductService_List_FullMethodName, func(srv any, ctx context.Context, in *ListProductsRequest) (*ListProductsResponse, error) {
				return srv.(ProductServiceServer).List(ctx, in)
			}),
		},
		{
			MethodName: "Delete",
			Handler: unaryHandler(ProductService_Delete_FullMethodName, func(srv any, ctx context.Context, in *DeleteProductRequest) (*Empty, error) {
				return srv.(ProductServiceServer).Delete(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/product.proto",
}
