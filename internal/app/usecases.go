package app

import (
	"go.uber.org/zap"

	"github.com/fekuna/omnipos-ledger-service/internal/expense"
	"github.com/fekuna/omnipos-ledger-service/internal/inventory"
	"github.com/fekuna/omnipos-ledger-service/internal/product"
	"github.com/fekuna/omnipos-ledger-service/internal/report"
	"github.com/fekuna/omnipos-ledger-service/internal/sale"
	"github.com/fekuna/omnipos-ledger-service/pkg/clock"
	"github.com/fekuna/omnipos-ledger-service/pkg/database/sqlite"
	"github.com/fekuna/omnipos-ledger-service/pkg/logger"

	expRepoPkg "github.com/fekuna/omnipos-ledger-service/internal/expense/repository"
	expUCPkg "github.com/fekuna/omnipos-ledger-service/internal/expense/usecase"
	invRepoPkg "github.com/fekuna/omnipos-ledger-service/internal/inventory/repository"
	invUCPkg "github.com/fekuna/omnipos-ledger-service/internal/inventory/usecase"
	prodRepoPkg "github.com/fekuna/omnipos-ledger-service/internal/product/repository"
	prodUCPkg "github.com/fekuna/omnipos-ledger-service/internal/product/usecase"
	repRepoPkg "github.com/fekuna/omnipos-ledger-service/internal/report/repository"
	repUCPkg "github.com/fekuna/omnipos-ledger-service/internal/report/usecase"
	saleRepoPkg "github.com/fekuna/omnipos-ledger-service/internal/sale/repository"
	saleUCPkg "github.com/fekuna/omnipos-ledger-service/internal/sale/usecase"
)

type UseCases struct {
	Product   product.UseCase
	Inventory inventory.UseCase
	Sale      sale.UseCase
	Expense   expense.UseCase
	Report    report.UseCase
}

// NewUseCases builds every engine over one store. All of them share the
// transaction manager, so an operation that spans engines stays atomic.
// Each engine logs with an "engine" field.
func NewUseCases(tm *sqlite.TxManager, clk clock.Clock, log logger.ZapLogger) *UseCases {
	engine := func(name string) logger.ZapLogger {
		return log.With(zap.String("engine", name))
	}

	// 1. Repositories
	prodRepo := prodRepoPkg.NewSQLiteRepository(tm)
	invRepo := invRepoPkg.NewSQLiteRepository(tm)
	expRepo := expRepoPkg.NewSQLiteRepository(tm)
	saleRepo := saleRepoPkg.NewSQLiteRepository(tm)
	repRepo := repRepoPkg.NewSQLiteRepository(tm)

	// 2. UseCases
	return &UseCases{
		Product:   prodUCPkg.NewProductUseCase(tm, prodRepo, invRepo, clk, engine("product")),
		Inventory: invUCPkg.NewInventoryUseCase(tm, invRepo, prodRepo, expRepo, clk, engine("inventory")),
		Sale:      saleUCPkg.NewSaleUseCase(tm, saleRepo, prodRepo, invRepo, expRepo, clk, engine("sale")),
		Expense:   expUCPkg.NewExpenseUseCase(expRepo, clk, engine("expense")),
		Report:    repUCPkg.NewReportUseCase(repRepo, engine("report")),
	}
}
