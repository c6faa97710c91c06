package fx

import (
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/config"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/infrastructure"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

var InfrastructureModule = fx.Module("infrastructure",
	fx.Provide(
		newDatabase,
		newTxManager,
		newOperatorRepository,
		newAccountRepository,
		newReceivableRepository,
		newPayableRepository,
		newCashLedgerRepository,
	),
)

func newDatabase(cfg *config.Config) (*gorm.DB, error) {
	return infrastructure.NewDb(cfg)
}

func newTxManager(db *gorm.DB) *infrastructure.TxManager {
	return infrastructure.NewTxManager(db)
}

func newOperatorRepository(db *gorm.DB) *infrastructure.OperatorRepository {
	return &infrastructure.OperatorRepository{DB: db}
}

func newAccountRepository(db *gorm.DB) *infrastructure.AccountRepository {
	return &infrastructure.AccountRepository{DB: db}
}

func newReceivableRepository(db *gorm.DB) *infrastructure.ReceivableRepository {
	return &infrastructure.ReceivableRepository{DB: db}
}

func newPayableRepository(db *gorm.DB) *infrastructure.PayableRepository {
	return &infrastructure.PayableRepository{DB: db}
}

func newCashLedgerRepository(db *gorm.DB) *infrastructure.CashLedgerRepository {
	return &infrastructure.CashLedgerRepository{DB: db}
}
