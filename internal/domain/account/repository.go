package account

import (
	"context"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Repository interface {
	Create(ctx context.Context, account *Account) error
	Update(ctx context.Context, account *Account) error
	GetById(ctx context.Context, accountID ulid.ULID) (*Account, error)
	List(ctx context.Context, pagination *pkg.PaginationParams) ([]*Account, int64, error)
	// UpdateBalanceWithTx aplica delta ao saldo com UPDATE ... SET balance =
	// balance + delta dentro da transação tx.
	UpdateBalanceWithTx(ctx context.Context, tx interface{}, accountID ulid.ULID, delta decimal.Decimal) error
}
