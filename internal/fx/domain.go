package fx

import (
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/payable"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/receivable"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/infrastructure"

	"go.uber.org/fx"
)

// DomainModule fornece todos os services do domínio
var DomainModule = fx.Module("domain",
	fx.Provide(
		newAccountService,
		newOperatorService,
		newCashLedgerService,
		newReceivableService,
		newPayableService,
	),
)

func newAccountService(
	repo *infrastructure.AccountRepository,
	ledgerRepo *infrastructure.CashLedgerRepository,
) *account.Service {
	return account.NewService(repo, ledgerRepo)
}

func newOperatorService(
	repo *infrastructure.OperatorRepository,
	accountSvc *account.Service,
) *operator.Service {
	return operator.NewService(repo, accountSvc)
}

func newCashLedgerService(
	repo *infrastructure.CashLedgerRepository,
	accountRepo *infrastructure.AccountRepository,
	tx *infrastructure.TxManager,
) *cashledger.Service {
	return cashledger.NewService(repo, accountRepo, tx)
}

func newReceivableService(
	repo *infrastructure.ReceivableRepository,
	operatorSvc *operator.Service,
	accountRepo *infrastructure.AccountRepository,
	ledgerRepo *infrastructure.CashLedgerRepository,
	tx *infrastructure.TxManager,
) *receivable.Service {
	return receivable.NewService(repo, operatorSvc, accountRepo, ledgerRepo, tx)
}

func newPayableService(
	repo *infrastructure.PayableRepository,
	accountRepo *infrastructure.AccountRepository,
	ledgerRepo *infrastructure.CashLedgerRepository,
	tx *infrastructure.TxManager,
) *payable.Service {
	return payable.NewService(repo, accountRepo, ledgerRepo, tx)
}
