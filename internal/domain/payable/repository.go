package payable

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Filter struct {
	Status   *Status
	Category *string
	Creditor *string
	GroupId  *ulid.ULID
	From     *time.Time
	To       *time.Time
}

// Repository retorna apenas contas não excluídas; as linhas soft-deleted
// permanecem no banco para auditoria.
type Repository interface {
	CreateBatchWithTx(ctx context.Context, tx interface{}, bills []*Bill) error
	Update(ctx context.Context, bill *Bill) error
	UpdateWithTx(ctx context.Context, tx interface{}, bill *Bill) error
	GetById(ctx context.Context, billID ulid.ULID) (*Bill, error)
	GetActiveByGroupId(ctx context.Context, groupID ulid.ULID) ([]*Bill, error)
	List(ctx context.Context, filter *Filter, pagination *pkg.PaginationParams) ([]*Bill, int64, error)
	SoftDeleteWithTx(ctx context.Context, tx interface{}, billID ulid.ULID, deletedAt time.Time) error
	SoftDeleteGroupWithTx(ctx context.Context, tx interface{}, groupID ulid.ULID, deletedAt time.Time) (int64, error)
	// FindLegacySeries localiza candidatas a irmãs de registros antigos sem
	// group_id: mesma descrição e credor, sem grupo, não excluídas.
	FindLegacySeries(ctx context.Context, description, creditor string) ([]*Bill, error)
}
