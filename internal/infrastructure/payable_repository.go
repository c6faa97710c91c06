package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/payable"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type PayableRepository struct {
	DB *gorm.DB
}

var _ payable.Repository = (*PayableRepository)(nil)

type billDB struct {
	Id               string          `gorm:"type:varchar(26);primaryKey"`
	Description      string          `gorm:"type:varchar(255);not null"`
	Notes            string          `gorm:"type:varchar(255)"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueDate          time.Time       `gorm:"type:date;not null;index"`
	PaymentDate      *time.Time      `gorm:"type:date"`
	Status           string          `gorm:"type:varchar(10);not null;index"`
	Category         string          `gorm:"type:varchar(100)"`
	Creditor         string          `gorm:"type:varchar(100)"`
	GroupId          *string         `gorm:"type:varchar(26);index"`
	InstallmentIndex int             `gorm:"not null;default:1"`
	InstallmentTotal int             `gorm:"not null;default:1"`
	AccountId        *string         `gorm:"type:varchar(26);index"`
	DeletedAt        *time.Time      `gorm:"index"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

func (billDB) TableName() string {
	return "payable_bills"
}

func toDomainBill(bdb *billDB) (*payable.Bill, error) {
	id, err := pkg.ParseULID(bdb.Id)
	if err != nil {
		return nil, err
	}

	groupID, err := pkg.ParseULIDPtr(bdb.GroupId)
	if err != nil {
		return nil, err
	}

	accountID, err := pkg.ParseULIDPtr(bdb.AccountId)
	if err != nil {
		return nil, err
	}

	return &payable.Bill{
		Id:               id,
		Description:      bdb.Description,
		Notes:            bdb.Notes,
		Amount:           bdb.Amount,
		DueDate:          bdb.DueDate,
		PaymentDate:      bdb.PaymentDate,
		Status:           payable.Status(bdb.Status),
		Category:         bdb.Category,
		Creditor:         bdb.Creditor,
		GroupId:          groupID,
		InstallmentIndex: bdb.InstallmentIndex,
		InstallmentTotal: bdb.InstallmentTotal,
		AccountId:        accountID,
		DeletedAt:        bdb.DeletedAt,
		CreatedAt:        bdb.CreatedAt,
		UpdatedAt:        bdb.UpdatedAt,
	}, nil
}

func toDBBill(b *payable.Bill) *billDB {
	var groupID *string
	if b.GroupId != nil {
		s := b.GroupId.String()
		groupID = &s
	}

	var accountID *string
	if b.AccountId != nil {
		s := b.AccountId.String()
		accountID = &s
	}

	return &billDB{
		Id:               b.Id.String(),
		Description:      b.Description,
		Notes:            b.Notes,
		Amount:           b.Amount,
		DueDate:          b.DueDate,
		PaymentDate:      b.PaymentDate,
		Status:           string(b.Status),
		Category:         b.Category,
		Creditor:         b.Creditor,
		GroupId:          groupID,
		InstallmentIndex: b.InstallmentIndex,
		InstallmentTotal: b.InstallmentTotal,
		AccountId:        accountID,
		DeletedAt:        b.DeletedAt,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
	}
}

func (r *PayableRepository) CreateBatchWithTx(ctx context.Context, tx interface{}, bills []*payable.Bill) error {
	dbTx := tx.(*gorm.DB)
	rows := make([]*billDB, 0, len(bills))
	for _, bill := range bills {
		rows = append(rows, toDBBill(bill))
	}
	return dbTx.WithContext(ctx).Table("payable_bills").Create(rows).Error
}

func (r *PayableRepository) Update(ctx context.Context, bill *payable.Bill) error {
	return r.updateWith(r.DB.WithContext(ctx), bill)
}

func (r *PayableRepository) UpdateWithTx(ctx context.Context, tx interface{}, bill *payable.Bill) error {
	dbTx := tx.(*gorm.DB)
	return r.updateWith(dbTx.WithContext(ctx), bill)
}

// updateWith escreve todas as colunas mutáveis, inclusive as anuláveis
// (payment_date, group_id, account_id), que Updates com struct ignoraria.
func (r *PayableRepository) updateWith(db *gorm.DB, bill *payable.Bill) error {
	bdb := toDBBill(bill)
	return db.Model(&billDB{}).
		Where("id = ? AND deleted_at IS NULL", bdb.Id).
		Select("description", "notes", "amount", "due_date", "payment_date",
			"status", "category", "creditor", "account_id", "updated_at").
		Updates(bdb).Error
}

func (r *PayableRepository) GetById(ctx context.Context, billID ulid.ULID) (*payable.Bill, error) {
	var bdb billDB
	err := r.DB.WithContext(ctx).
		Where("id = ? AND deleted_at IS NULL", billID.String()).
		First(&bdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainBill(&bdb)
}

func (r *PayableRepository) GetActiveByGroupId(ctx context.Context, groupID ulid.ULID) ([]*payable.Bill, error) {
	var rows []billDB
	err := r.DB.WithContext(ctx).Table("payable_bills").
		Where("group_id = ? AND deleted_at IS NULL", groupID.String()).
		Order("installment_index ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBills(rows)
}

func (r *PayableRepository) List(ctx context.Context, filter *payable.Filter, pagination *pkg.PaginationParams) ([]*payable.Bill, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("payable_bills").Where("deleted_at IS NULL")

	if filter != nil {
		if filter.Status != nil {
			baseQuery = baseQuery.Where("status = ?", string(*filter.Status))
		}
		if filter.Category != nil {
			baseQuery = baseQuery.Where("category = ?", *filter.Category)
		}
		if filter.Creditor != nil {
			baseQuery = baseQuery.Where("creditor = ?", *filter.Creditor)
		}
		if filter.GroupId != nil {
			baseQuery = baseQuery.Where("group_id = ?", filter.GroupId.String())
		}
		if filter.From != nil {
			baseQuery = baseQuery.Where("due_date >= ?", *filter.From)
		}
		if filter.To != nil {
			baseQuery = baseQuery.Where("due_date <= ?", *filter.To)
		}
	}

	return pkg.Paginate(baseQuery, pagination, "due_date ASC", toDomainBill)
}

func (r *PayableRepository) SoftDeleteWithTx(ctx context.Context, tx interface{}, billID ulid.ULID, deletedAt time.Time) error {
	dbTx := tx.(*gorm.DB)
	return dbTx.WithContext(ctx).Model(&billDB{}).
		Where("id = ? AND deleted_at IS NULL", billID.String()).
		UpdateColumn("deleted_at", deletedAt).Error
}

func (r *PayableRepository) SoftDeleteGroupWithTx(ctx context.Context, tx interface{}, groupID ulid.ULID, deletedAt time.Time) (int64, error) {
	dbTx := tx.(*gorm.DB)
	result := dbTx.WithContext(ctx).Model(&billDB{}).
		Where("group_id = ? AND deleted_at IS NULL", groupID.String()).
		UpdateColumn("deleted_at", deletedAt)
	return result.RowsAffected, result.Error
}

func (r *PayableRepository) FindLegacySeries(ctx context.Context, description, creditor string) ([]*payable.Bill, error) {
	var rows []billDB
	err := r.DB.WithContext(ctx).Table("payable_bills").
		Where("description = ? AND creditor = ? AND group_id IS NULL AND deleted_at IS NULL", description, creditor).
		Order("due_date ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainBills(rows)
}

func toDomainBills(rows []billDB) ([]*payable.Bill, error) {
	bills := make([]*payable.Bill, 0, len(rows))
	for i := range rows {
		bill, err := toDomainBill(&rows[i])
		if err != nil {
			return nil, err
		}
		bills = append(bills, bill)
	}
	return bills, nil
}
