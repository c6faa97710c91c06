package receivable

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
)

// Receivable é uma parcela a receber da operadora de cartão por uma venda.
// Taxa, antecipação e conta de destino são fotografados do perfil da
// operadora no momento da geração; net = gross - fee - anticipationFee vale
// desde a criação e nunca é recalculado.
type Receivable struct {
	Id               ulid.ULID              `gorm:"type:varchar(26);primaryKey" json:"id"`
	SaleId           ulid.ULID              `gorm:"type:varchar(26);index:idx_receivables_sale_id;not null" json:"saleId"`
	OperatorId       ulid.ULID              `gorm:"type:varchar(26);index:idx_receivables_operator_id;not null" json:"operatorId"`
	AccountId        ulid.ULID              `gorm:"type:varchar(26);not null" json:"accountId"`
	Method           operator.PaymentMethod `gorm:"type:varchar(10);not null" json:"method"`
	InstallmentIndex int                    `gorm:"not null" json:"installmentIndex"`
	InstallmentTotal int                    `gorm:"not null" json:"installmentTotal"`
	GrossAmount      decimal.Decimal        `gorm:"type:decimal(15,2);not null" json:"grossAmount"`
	FeePercent       decimal.Decimal        `gorm:"type:decimal(5,2);not null" json:"feePercent"`
	FeeAmount        decimal.Decimal        `gorm:"type:decimal(15,2);not null" json:"feeAmount"`
	AnticipationFee  decimal.Decimal        `gorm:"type:decimal(15,2);not null;default:0" json:"anticipationFee"`
	NetAmount        decimal.Decimal        `gorm:"type:decimal(15,2);not null" json:"netAmount"`
	Anticipated      bool                   `gorm:"not null;default:false" json:"anticipated"`
	SaleDate         time.Time              `gorm:"not null" json:"saleDate"`
	ExpectedDate     time.Time              `gorm:"type:date;not null;index:idx_receivables_expected_date" json:"expectedDate"`
	Status           Status                 `gorm:"type:varchar(10);not null;default:'PENDING';index:idx_receivables_status" json:"status"`
	ConfirmedAt      *time.Time             `gorm:"type:timestamp" json:"confirmedAt"`
	ConfirmedBy      string                 `gorm:"type:varchar(100)" json:"confirmedBy"`
	CreatedAt        time.Time              `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time              `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Receivable) TableName() string {
	return "receivables"
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusReceived Status = "RECEIVED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusReceived:
		return true
	}
	return false
}
