package ledgerv1

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	ExpenseService_List_FullMethodName   = "/ledger.v1.ExpenseService/List"
	ExpenseService_Create_FullMethodName = "/ledger.v1.ExpenseService/Create"
	ExpenseService_Delete_FullMethodName = "/ledger.v1.ExpenseService/Delete"
)

type ExpenseServiceClient interface {
	List(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error)
	Create(ctx context.Context, in *CreateExpenseRequest, opts ...grpc.CallOption) (*CreateExpenseResponse, error)
	Delete(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*Empty, error)
}

type expenseServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewExpenseServiceClient returns a client that always uses the JSON codec.
func NewExpenseServiceClient(cc grpc.ClientConnInterface) ExpenseServiceClient {
	return &expenseServiceClient{cc}
}

func (c *expenseServiceClient) List(ctx context.Context, in *ListExpensesRequest, opts ...grpc.CallOption) (*ListExpensesResponse, error) {
	return invoke[ListExpensesResponse](ctx, c.cc, ExpenseService_List_FullMethodName, in, opts)
}

func (c *expenseServiceClient) Create(ctx context.Context, in *CreateExpenseRequest, opts ...grpc.CallOption) (*CreateExpenseResponse, error) {
	return invoke[CreateExpenseResponse](ctx, c.cc, ExpenseService_Create_FullMethodName, in, opts)
}

func (c *expenseServiceClient) Delete(ctx context.Context, in *DeleteExpenseRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, ExpenseService_Delete_FullMethodName, in, opts)
}

type ExpenseServiceServer interface {
	List(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error)
	Create(context.Context, *CreateExpenseRequest) (*CreateExpenseResponse, error)
	Delete(context.Context, *DeleteExpenseRequest) (*Empty, error)
}

// UnimplementedExpenseServiceServer can be embedded to stay forward compatible.
type UnimplementedExpenseServiceServer struct{}

func (UnimplementedExpenseServiceServer) List(context.Context, *ListExpensesRequest) (*ListExpensesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method List not implemented")
}

func (UnimplementedExpenseServiceServer) Create(context.Context, *CreateExpenseRequest) (*CreateExpenseResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method Create not implemented")
}

func (UnimplementedExpenseServiceServer) Delete(context.Context, *DeleteExpenseRequest) (*Empty, error) {
	return nil, status.Error(codes.Unimplemented, "method Delete not implemented")
}

func RegisterExpenseServiceServer(s grpc.ServiceRegistrar, srv ExpenseServiceServer) {
	s.RegisterService(&ExpenseService_ServiceDesc, srv)
}

var ExpenseService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "ledger.v1.ExpenseService",
	HandlerType: (*ExpenseServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "List",
			Handler: unaryHandler(ExpenseService_List_FullMethodName, func(srv any, ctx context.Context, in *ListExpensesRequest) (*ListExpensesResponse, error) {
				return srv.(ExpenseServiceServer).List(ctx, in)
			}),
		},
		{
			MethodName: "Create",
			Handler: unaryHandler(ExpenseService_Create_FullMethodName, func(srv any, ctx context.Context, in *CreateExpenseRequest) (*CreateExpenseResponse, error) {
				return srv.(ExpenseServiceServer).Create(ctx, in)
			}),
		},
		{
			MethodName: "Delete",
			Handler: unaryHandler(ExpenseService_Delete_FullMethodName, func(srv any, ctx context.Context, in *DeleteExpenseRequest) (*Empty, error) {
				return srv.(ExpenseServiceServer).Delete(ctx, in)
			}),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "ledger/v1/expense.proto",
}
