package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type CashLedgerRepository struct {
	DB *gorm.DB
}

var _ cashledger.Repository = (*CashLedgerRepository)(nil)

type ledgerEntryDB struct {
	Id          string          `gorm:"type:varchar(26);primaryKey"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Direction   string          `gorm:"type:varchar(5);not null;index"`
	Category    string          `gorm:"type:varchar(100)"`
	MovedAt     time.Time       `gorm:"not null;index"`
	Origin      string          `gorm:"type:varchar(10);not null"`
	Reference   string          `gorm:"type:varchar(64);index"`
	AccountId   *string         `gorm:"type:varchar(26);index"`
	DeletedAt   *time.Time      `gorm:"index"`
	CreatedAt   time.Time       `gorm:"not null"`
}

func (ledgerEntryDB) TableName() string {
	return "cash_ledger_entries"
}

func toDomainEntry(edb *ledgerEntryDB) (*cashledger.Entry, error) {
	id, err := pkg.ParseULID(edb.Id)
	if err != nil {
		return nil, err
	}

	accountID, err := pkg.ParseULIDPtr(edb.AccountId)
	if err != nil {
		return nil, err
	}

	return &cashledger.Entry{
		Id:          id,
		Description: edb.Description,
		Amount:      edb.Amount,
		Direction:   cashledger.Direction(edb.Direction),
		Category:    edb.Category,
		MovedAt:     edb.MovedAt,
		Origin:      cashledger.Origin(edb.Origin),
		Reference:   edb.Reference,
		AccountId:   accountID,
		DeletedAt:   edb.DeletedAt,
		CreatedAt:   edb.CreatedAt,
	}, nil
}

func toDBEntry(e *cashledger.Entry) *ledgerEntryDB {
	var accountID *string
	if e.AccountId != nil {
		s := e.AccountId.String()
		accountID = &s
	}

	return &ledgerEntryDB{
		Id:          e.Id.String(),
		Description: e.Description,
		Amount:      e.Amount,
		Direction:   string(e.Direction),
		Category:    e.Category,
		MovedAt:     e.MovedAt,
		Origin:      string(e.Origin),
		Reference:   e.Reference,
		AccountId:   accountID,
		DeletedAt:   e.DeletedAt,
		CreatedAt:   e.CreatedAt,
	}
}

func (r *CashLedgerRepository) Create(ctx context.Context, entry *cashledger.Entry) error {
	edb := toDBEntry(entry)
	return r.DB.WithContext(ctx).Table("cash_ledger_entries").Create(edb).Error
}

func (r *CashLedgerRepository) CreateWithTx(ctx context.Context, tx interface{}, entry *cashledger.Entry) error {
	dbTx := tx.(*gorm.DB)
	edb := toDBEntry(entry)
	return dbTx.WithContext(ctx).Table("cash_ledger_entries").Create(edb).Error
}

func (r *CashLedgerRepository) GetById(ctx context.Context, entryID ulid.ULID) (*cashledger.Entry, error) {
	var edb ledgerEntryDB
	err := r.DB.WithContext(ctx).Where("id = ? AND deleted_at IS NULL", entryID.String()).First(&edb).Error
	if err != nil {
		return nil, err
	}
	return toDomainEntry(&edb)
}

func (r *CashLedgerRepository) List(ctx context.Context, filter *cashledger.Filter, pagination *pkg.PaginationParams) ([]*cashledger.Entry, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("cash_ledger_entries").Where("deleted_at IS NULL")

	if filter != nil {
		if filter.Direction != nil {
			baseQuery = baseQuery.Where("direction = ?", string(*filter.Direction))
		}
		if filter.Origin != nil {
			baseQuery = baseQuery.Where("origin = ?", string(*filter.Origin))
		}
		if filter.AccountId != nil {
			baseQuery = baseQuery.Where("account_id = ?", filter.AccountId.String())
		}
		if filter.From != nil {
			baseQuery = baseQuery.Where("moved_at >= ?", *filter.From)
		}
		if filter.To != nil {
			baseQuery = baseQuery.Where("moved_at <= ?", *filter.To)
		}
	}

	return pkg.Paginate(baseQuery, pagination, "moved_at DESC", toDomainEntry)
}

func (r *CashLedgerRepository) FindActiveByReferenceWithTx(ctx context.Context, tx interface{}, reference string, origin cashledger.Origin) ([]*cashledger.Entry, error) {
	dbTx := tx.(*gorm.DB)

	var rows []ledgerEntryDB
	err := dbTx.WithContext(ctx).Table("cash_ledger_entries").
		Where("reference = ? AND origin = ? AND deleted_at IS NULL", reference, string(origin)).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*cashledger.Entry, 0, len(rows))
	for i := range rows {
		entry, err := toDomainEntry(&rows[i])
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r *CashLedgerRepository) SoftDeleteWithTx(ctx context.Context, tx interface{}, entryID ulid.ULID, deletedAt time.Time) error {
	dbTx := tx.(*gorm.DB)
	return dbTx.WithContext(ctx).Model(&ledgerEntryDB{}).
		Where("id = ? AND deleted_at IS NULL", entryID.String()).
		UpdateColumn("deleted_at", deletedAt).Error
}

// SumByAccount soma IN menos OUT dos lançamentos não excluídos da conta; é a
// leitura usada na reconciliação do saldo armazenado.
func (r *CashLedgerRepository) SumByAccount(ctx context.Context, accountID ulid.ULID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := r.DB.WithContext(ctx).Model(&ledgerEntryDB{}).
		Where("account_id = ? AND deleted_at IS NULL", accountID.String()).
		Select("COALESCE(SUM(CASE WHEN direction = 'IN' THEN amount ELSE -amount END), 0)").
		Scan(&total).Error
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
