package receivable

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Filter struct {
	Status     *Status
	OperatorId *ulid.ULID
	SaleId     *ulid.ULID
	Method     *operator.PaymentMethod
	From       *time.Time
	To         *time.Time
}

type Repository interface {
	// CreateBatchWithTx insere todas as parcelas dentro da transação tx;
	// falha parcial não deixa nenhuma linha.
	CreateBatchWithTx(ctx context.Context, tx interface{}, receivables []*Receivable) error
	GetById(ctx context.Context, receivableID ulid.ULID) (*Receivable, error)
	GetBySaleId(ctx context.Context, saleID ulid.ULID) ([]*Receivable, error)
	List(ctx context.Context, filter *Filter, pagination *pkg.PaginationParams) ([]*Receivable, int64, error)
	// MarkReceivedWithTx aplica PENDING -> RECEIVED com UPDATE condicional
	// (WHERE status = PENDING) e retorna as linhas afetadas; zero significa
	// que outra confirmação chegou antes.
	MarkReceivedWithTx(ctx context.Context, tx interface{}, receivableID ulid.ULID, confirmedAt time.Time, confirmedBy string) (int64, error)
	// MarkPendingWithTx aplica RECEIVED -> PENDING (WHERE status = RECEIVED),
	// limpando os metadados de confirmação.
	MarkPendingWithTx(ctx context.Context, tx interface{}, receivableID ulid.ULID) (int64, error)
}
