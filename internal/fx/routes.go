package fx

import (
	"time"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/payable"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/receivable"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/middleware"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/routes"

	"go.uber.org/fx"
)

// RoutesModule fornece o handler e o rate limiter da API
var RoutesModule = fx.Module("routes",
	fx.Provide(
		newHandler,
		newRateLimiter,
	),
)

func newHandler(
	operatorSvc *operator.Service,
	accountSvc *account.Service,
	receivableSvc *receivable.Service,
	payableSvc *payable.Service,
	cashLedgerSvc *cashledger.Service,
) *routes.Handler {
	return &routes.Handler{
		OperatorService:   operatorSvc,
		AccountService:    accountSvc,
		ReceivableService: receivableSvc,
		PayableService:    payableSvc,
		CashLedgerService: cashLedgerSvc,
	}
}

func newRateLimiter() *middleware.RateLimiter {
	return middleware.NewRateLimiter(100, time.Minute)
}
