package cashledger

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Filter struct {
	Direction *Direction
	Origin    *Origin
	AccountId *ulid.ULID
	From      *time.Time
	To        *time.Time
}

type Repository interface {
	Create(ctx context.Context, entry *Entry) error
	CreateWithTx(ctx context.Context, tx interface{}, entry *Entry) error
	GetById(ctx context.Context, entryID ulid.ULID) (*Entry, error)
	List(ctx context.Context, filter *Filter, pagination *pkg.PaginationParams) ([]*Entry, int64, error)
	// FindActiveByReferenceWithTx retorna os lançamentos não excluídos com a
	// tag de referência e origem dadas, lidos dentro da transação tx.
	FindActiveByReferenceWithTx(ctx context.Context, tx interface{}, reference string, origin Origin) ([]*Entry, error)
	SoftDeleteWithTx(ctx context.Context, tx interface{}, entryID ulid.ULID, deletedAt time.Time) error
	// SumByAccount soma IN menos OUT dos lançamentos não excluídos da conta.
	SumByAccount(ctx context.Context, accountID ulid.ULID) (decimal.Decimal, error)
}
