package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type OperatorRepository struct {
	DB *gorm.DB
}

var _ operator.Repository = (*OperatorRepository)(nil)

type operatorProfileDB struct {
	Id                          string              `gorm:"type:varchar(26);primaryKey"`
	Name                        string              `gorm:"type:varchar(100);not null"`
	AccountId                   string              `gorm:"type:varchar(26);index;not null"`
	DebitFeePercent             decimal.NullDecimal `gorm:"type:decimal(5,2)"`
	DebitTermDays               int                 `gorm:"not null;default:1"`
	CreditCashFeePercent        decimal.NullDecimal `gorm:"type:decimal(5,2)"`
	CreditCashTermDays          int                 `gorm:"not null;default:30"`
	CreditInstallmentFeePercent decimal.NullDecimal `gorm:"type:decimal(5,2)"`
	CreditInstallmentTermDays   int                 `gorm:"not null;default:30"`
	AutoAnticipation            bool                `gorm:"not null;default:false"`
	AnticipationFeePercent      decimal.NullDecimal `gorm:"type:decimal(5,2)"`
	IsActive                    bool                `gorm:"not null;default:true"`
	CreatedAt                   time.Time           `gorm:"not null"`
	UpdatedAt                   time.Time           `gorm:"not null"`
}

func (operatorProfileDB) TableName() string {
	return "card_operator_profiles"
}

func toDomainOperator(odb *operatorProfileDB) (*operator.Profile, error) {
	id, err := pkg.ParseULID(odb.Id)
	if err != nil {
		return nil, err
	}

	accountID, err := pkg.ParseULID(odb.AccountId)
	if err != nil {
		return nil, err
	}

	return &operator.Profile{
		Id:                          id,
		Name:                        odb.Name,
		AccountId:                   accountID,
		DebitFeePercent:             fromNullDecimal(odb.DebitFeePercent),
		DebitTermDays:               odb.DebitTermDays,
		CreditCashFeePercent:        fromNullDecimal(odb.CreditCashFeePercent),
		CreditCashTermDays:          odb.CreditCashTermDays,
		CreditInstallmentFeePercent: fromNullDecimal(odb.CreditInstallmentFeePercent),
		CreditInstallmentTermDays:   odb.CreditInstallmentTermDays,
		AutoAnticipation:            odb.AutoAnticipation,
		AnticipationFeePercent:      fromNullDecimal(odb.AnticipationFeePercent),
		IsActive:                    odb.IsActive,
		CreatedAt:                   odb.CreatedAt,
		UpdatedAt:                   odb.UpdatedAt,
	}, nil
}

func toDBOperator(p *operator.Profile) *operatorProfileDB {
	return &operatorProfileDB{
		Id:                          p.Id.String(),
		Name:                        p.Name,
		AccountId:                   p.AccountId.String(),
		DebitFeePercent:             toNullDecimal(p.DebitFeePercent),
		DebitTermDays:               p.DebitTermDays,
		CreditCashFeePercent:        toNullDecimal(p.CreditCashFeePercent),
		CreditCashTermDays:          p.CreditCashTermDays,
		CreditInstallmentFeePercent: toNullDecimal(p.CreditInstallmentFeePercent),
		CreditInstallmentTermDays:   p.CreditInstallmentTermDays,
		AutoAnticipation:            p.AutoAnticipation,
		AnticipationFeePercent:      toNullDecimal(p.AnticipationFeePercent),
		IsActive:                    p.IsActive,
		CreatedAt:                   p.CreatedAt,
		UpdatedAt:                   p.UpdatedAt,
	}
}

func fromNullDecimal(d decimal.NullDecimal) *decimal.Decimal {
	if !d.Valid {
		return nil
	}
	v := d.Decimal
	return &v
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func (r *OperatorRepository) Create(ctx context.Context, profile *operator.Profile) error {
	odb := toDBOperator(profile)
	return r.DB.WithContext(ctx).Table("card_operator_profiles").Create(odb).Error
}

func (r *OperatorRepository) Update(ctx context.Context, profile *operator.Profile) error {
	odb := toDBOperator(profile)
	return r.DB.WithContext(ctx).Model(&operatorProfileDB{}).
		Where("id = ?", odb.Id).
		Select("*").Omit("id", "created_at").
		Updates(odb).Error
}

func (r *OperatorRepository) Delete(ctx context.Context, profileID ulid.ULID) error {
	return r.DB.WithContext(ctx).Model(&operatorProfileDB{}).
		Where("id = ?", profileID.String()).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		}).Error
}

func (r *OperatorRepository) GetById(ctx context.Context, profileID ulid.ULID) (*operator.Profile, error) {
	var odb operatorProfileDB
	err := r.DB.WithContext(ctx).Where("id = ?", profileID.String()).First(&odb).Error
	if err != nil {
		return nil, err
	}
	return toDomainOperator(&odb)
}

func (r *OperatorRepository) List(ctx context.Context, pagination *pkg.PaginationParams) ([]*operator.Profile, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("card_operator_profiles")
	return pkg.Paginate(baseQuery, pagination, "name ASC", toDomainOperator)
}
