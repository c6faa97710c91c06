package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type AccountRepository struct {
	DB *gorm.DB
}

var _ account.Repository = (*AccountRepository)(nil)

type bankAccountDB struct {
	Id        string          `gorm:"type:varchar(26);primaryKey"`
	Name      string          `gorm:"type:varchar(100);not null"`
	Bank      string          `gorm:"type:varchar(100)"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	IsActive  bool            `gorm:"not null;default:true"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

func (bankAccountDB) TableName() string {
	return "bank_accounts"
}

func toDomainAccount(adb *bankAccountDB) (*account.Account, error) {
	id, err := pkg.ParseULID(adb.Id)
	if err != nil {
		return nil, err
	}

	return &account.Account{
		Id:        id,
		Name:      adb.Name,
		Bank:      adb.Bank,
		Balance:   adb.Balance,
		IsActive:  adb.IsActive,
		CreatedAt: adb.CreatedAt,
		UpdatedAt: adb.UpdatedAt,
	}, nil
}

func toDBAccount(a *account.Account) *bankAccountDB {
	return &bankAccountDB{
		Id:        a.Id.String(),
		Name:      a.Name,
		Bank:      a.Bank,
		Balance:   a.Balance,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	return r.DB.WithContext(ctx).Table("bank_accounts").Create(adb).Error
}

// Update nunca escreve balance: saldo só muda por UpdateBalanceWithTx.
func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	adb := toDBAccount(a)
	return r.DB.WithContext(ctx).Model(&bankAccountDB{}).
		Where("id = ?", adb.Id).
		Select("name", "bank", "is_active", "updated_at").
		Updates(adb).Error
}

func (r *AccountRepository) GetById(ctx context.Context, accountID ulid.ULID) (*account.Account, error) {
	var adb bankAccountDB
	err := r.DB.WithContext(ctx).Where("id = ?", accountID.String()).First(&adb).Error
	if err != nil {
		return nil, err
	}
	return toDomainAccount(&adb)
}

func (r *AccountRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*account.Account, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("bank_accounts")
	return pkg.Paginate(baseQuery, pagination, "created_at DESC", toDomainAccount)
}

func (r *AccountRepository) UpdateBalanceWithTx(ctx context.Context, tx interface{}, accountID ulid.ULID, delta decimal.Decimal) error {
	dbTx := tx.(*gorm.DB)
	return dbTx.WithContext(ctx).Model(&bankAccountDB{}).
		Where("id = ?", accountID.String()).
		UpdateColumns(map[string]interface{}{
			"balance":    gorm.Expr("balance + ?", delta),
			"updated_at": time.Now(),
		}).Error
}
