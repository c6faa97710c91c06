package infrastructure

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/receivable"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type ReceivableRepository struct {
	DB *gorm.DB
}

var _ receivable.Repository = (*ReceivableRepository)(nil)

type receivableDB struct {
	Id               string          `gorm:"type:varchar(26);primaryKey"`
	SaleId           string          `gorm:"type:varchar(26);index;not null"`
	OperatorId       string          `gorm:"type:varchar(26);index;not null"`
	AccountId        string          `gorm:"type:varchar(26);not null"`
	Method           string          `gorm:"type:varchar(10);not null"`
	InstallmentIndex int             `gorm:"not null"`
	InstallmentTotal int             `gorm:"not null"`
	GrossAmount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FeePercent       decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	FeeAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AnticipationFee  decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	NetAmount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Anticipated      bool            `gorm:"not null;default:false"`
	SaleDate         time.Time       `gorm:"not null"`
	ExpectedDate     time.Time       `gorm:"type:date;not null;index"`
	Status           string          `gorm:"type:varchar(10);not null;index"`
	ConfirmedAt      *time.Time      `gorm:"type:timestamp"`
	ConfirmedBy      string          `gorm:"type:varchar(100)"`
	CreatedAt        time.Time       `gorm:"not null"`
	UpdatedAt        time.Time       `gorm:"not null"`
}

func (receivableDB) TableName() string {
	return "receivables"
}

func toDomainReceivable(rdb *receivableDB) (*receivable.Receivable, error) {
	id, err := pkg.ParseULID(rdb.Id)
	if err != nil {
		return nil, err
	}

	saleID, err := pkg.ParseULID(rdb.SaleId)
	if err != nil {
		return nil, err
	}

	operatorID, err := pkg.ParseULID(rdb.OperatorId)
	if err != nil {
		return nil, err
	}

	accountID, err := pkg.ParseULID(rdb.AccountId)
	if err != nil {
		return nil, err
	}

	return &receivable.Receivable{
		Id:               id,
		SaleId:           saleID,
		OperatorId:       operatorID,
		AccountId:        accountID,
		Method:           operator.PaymentMethod(rdb.Method),
		InstallmentIndex: rdb.InstallmentIndex,
		InstallmentTotal: rdb.InstallmentTotal,
		GrossAmount:      rdb.GrossAmount,
		FeePercent:       rdb.FeePercent,
		FeeAmount:        rdb.FeeAmount,
		AnticipationFee:  rdb.AnticipationFee,
		NetAmount:        rdb.NetAmount,
		Anticipated:      rdb.Anticipated,
		SaleDate:         rdb.SaleDate,
		ExpectedDate:     rdb.ExpectedDate,
		Status:           receivable.Status(rdb.Status),
		ConfirmedAt:      rdb.ConfirmedAt,
		ConfirmedBy:      rdb.ConfirmedBy,
		CreatedAt:        rdb.CreatedAt,
		UpdatedAt:        rdb.UpdatedAt,
	}, nil
}

func toDBReceivable(rec *receivable.Receivable) *receivableDB {
	return &receivableDB{
		Id:               rec.Id.String(),
		SaleId:           rec.SaleId.String(),
		OperatorId:       rec.OperatorId.String(),
		AccountId:        rec.AccountId.String(),
		Method:           string(rec.Method),
		InstallmentIndex: rec.InstallmentIndex,
		InstallmentTotal: rec.InstallmentTotal,
		GrossAmount:      rec.GrossAmount,
		FeePercent:       rec.FeePercent,
		FeeAmount:        rec.FeeAmount,
		AnticipationFee:  rec.AnticipationFee,
		NetAmount:        rec.NetAmount,
		Anticipated:      rec.Anticipated,
		SaleDate:         rec.SaleDate,
		ExpectedDate:     rec.ExpectedDate,
		Status:           string(rec.Status),
		ConfirmedAt:      rec.ConfirmedAt,
		ConfirmedBy:      rec.ConfirmedBy,
		CreatedAt:        rec.CreatedAt,
		UpdatedAt:        rec.UpdatedAt,
	}
}

func (r *ReceivableRepository) CreateBatchWithTx(ctx context.Context, tx interface{}, receivables []*receivable.Receivable) error {
	dbTx := tx.(*gorm.DB)
	rows := make([]*receivableDB, 0, len(receivables))
	for _, rec := range receivables {
		rows = append(rows, toDBReceivable(rec))
	}
	return dbTx.WithContext(ctx).Table("receivables").Create(rows).Error
}

func (r *ReceivableRepository) GetById(ctx context.Context, receivableID ulid.ULID) (*receivable.Receivable, error) {
	var rdb receivableDB
	err := r.DB.WithContext(ctx).Where("id = ?", receivableID.String()).First(&rdb).Error
	if err != nil {
		return nil, err
	}
	return toDomainReceivable(&rdb)
}

func (r *ReceivableRepository) GetBySaleId(ctx context.Context, saleID ulid.ULID) ([]*receivable.Receivable, error) {
	var rows []receivableDB
	err := r.DB.WithContext(ctx).Table("receivables").
		Where("sale_id = ?", saleID.String()).
		Order("installment_index ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	receivables := make([]*receivable.Receivable, 0, len(rows))
	for i := range rows {
		rec, err := toDomainReceivable(&rows[i])
		if err != nil {
			return nil, err
		}
		receivables = append(receivables, rec)
	}
	return receivables, nil
}

func (r *ReceivableRepository) List(ctx context.Context, filter *receivable.Filter, pagination *pkg.PaginationParams) ([]*receivable.Receivable, int64, error) {
	baseQuery := r.DB.WithContext(ctx).Table("receivables")

	if filter != nil {
		if filter.Status != nil {
			baseQuery = baseQuery.Where("status = ?", string(*filter.Status))
		}
		if filter.OperatorId != nil {
			baseQuery = baseQuery.Where("operator_id = ?", filter.OperatorId.String())
		}
		if filter.SaleId != nil {
			baseQuery = baseQuery.Where("sale_id = ?", filter.SaleId.String())
		}
		if filter.Method != nil {
			baseQuery = baseQuery.Where("method = ?", string(*filter.Method))
		}
		if filter.From != nil {
			baseQuery = baseQuery.Where("expected_date >= ?", *filter.From)
		}
		if filter.To != nil {
			baseQuery = baseQuery.Where("expected_date <= ?", *filter.To)
		}
	}

	return pkg.Paginate(baseQuery, pagination, "expected_date ASC", toDomainReceivable)
}

// MarkReceivedWithTx usa UPDATE condicional no status para serializar
// confirmações concorrentes: só uma ganha a linha, as demais leem zero
// linhas afetadas.
func (r *ReceivableRepository) MarkReceivedWithTx(ctx context.Context, tx interface{}, receivableID ulid.ULID, confirmedAt time.Time, confirmedBy string) (int64, error) {
	dbTx := tx.(*gorm.DB)
	result := dbTx.WithContext(ctx).Model(&receivableDB{}).
		Where("id = ? AND status = ?", receivableID.String(), string(receivable.StatusPending)).
		Updates(map[string]interface{}{
			"status":       string(receivable.StatusReceived),
			"confirmed_at": confirmedAt,
			"confirmed_by": confirmedBy,
			"updated_at":   time.Now(),
		})
	return result.RowsAffected, result.Error
}

func (r *ReceivableRepository) MarkPendingWithTx(ctx context.Context, tx interface{}, receivableID ulid.ULID) (int64, error) {
	dbTx := tx.(*gorm.DB)
	result := dbTx.WithContext(ctx).Model(&receivableDB{}).
		Where("id = ? AND status = ?", receivableID.String(), string(receivable.StatusReceived)).
		Updates(map[string]interface{}{
			"status":       string(receivable.StatusPending),
			"confirmed_at": nil,
			"confirmed_by": "",
			"updated_at":   time.Now(),
		})
	return result.RowsAffected, result.Error
}
