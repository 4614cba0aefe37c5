// Package app wires repositories, use cases and handlers into a gRPC server.
package app

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	ledgerv1 "github.com/fekuna/omnipos-ledger-service/api/ledgerv1"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"
	"github.com/fekuna/omnipos-ledger-service/pkg/middleware"

	expH "github.com/fekuna/omnipos-ledger-service/internal/expense/handler"
	invH "github.com/fekuna/omnipos-ledger-service/internal/inventory/handler"
	prodH "github.com/fekuna/omnipos-ledger-service/internal/product/handler"
	repH "github.com/fekuna/omnipos-ledger-service/internal/report/handler"
	saleH "github.com/fekuna/omnipos-ledger-service/internal/sale/handler"
)

type Server struct {
	GRPC   *grpc.Server
	Health *health.Server
}

func NewServer(tm *sqlite.TxManager, clk clock.Clock, log logger.ZapLogger) *Server {
	uc := NewUseCases(tm, clk, log)

	// gRPC server
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			middleware.RecoveryInterceptor(log),
			middleware.LoggingInterceptor(log),
		),
	)

	ledgerv1.RegisterProductServiceServer(grpcServer, prodH.NewProductHandler(uc.Product, log))
	ledgerv1.RegisterInventoryServiceServer(grpcServer, invH.NewInventoryHandler(uc.Inventory, log))
	ledgerv1.RegisterSaleServiceServer(grpcServer, saleH.NewSaleHandler(uc.Sale, log))
	ledgerv1.RegisterExpenseServiceServer(grpcServer, expH.NewExpenseHandler(uc.Expense, log))
	ledgerv1.RegisterReportServiceServer(grpcServer, repH.NewReportHandler(uc.Report, log))

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	for _, svc := range []string{
		ledgerv1.ProductService_ServiceDesc.ServiceName,
		ledgerv1.InventoryService_ServiceDesc.ServiceName,
		ledgerv1.SaleService_ServiceDesc.ServiceName,
		ledgerv1.ExpenseService_ServiceDesc.ServiceName,
		ledgerv1.ReportService_ServiceDesc.ServiceName,
	} {
		healthServer.SetServingStatus(svc, healthpb.HealthCheckResponse_SERVING)
	}

	reflection.Register(grpcServer)

	return &Server{GRPC: grpcServer, Health: healthServer}
}

// Shutdown flips health to NOT_SERVING before draining in-flight calls.
func (s *Server) Shutdown() {
	s.Health.Shutdown()
	s.GRPC.GracefulStop()
}
