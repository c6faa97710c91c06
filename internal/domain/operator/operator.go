package operator

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Profile é a configuração comercial de uma operadora de cartão: taxa e
// prazo de repasse por forma de pagamento, mais a antecipação automática
// opcional. Os recebíveis gerados carregam uma cópia dos valores resolvidos,
// então editar o perfil nunca altera recebíveis já gerados.
type Profile struct {
	Id                          ulid.ULID        `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name                        string           `gorm:"type:varchar(100);not null" json:"name"`
	AccountId                   ulid.ULID        `gorm:"type:varchar(26);index:idx_operators_account_id;not null" json:"accountId"`
	DebitFeePercent             *decimal.Decimal `gorm:"type:decimal(5,2)" json:"debitFeePercent"`
	DebitTermDays               int              `gorm:"not null;default:1" json:"debitTermDays"`
	CreditCashFeePercent        *decimal.Decimal `gorm:"type:decimal(5,2)" json:"creditCashFeePercent"`
	CreditCashTermDays          int              `gorm:"not null;default:30" json:"creditCashTermDays"`
	CreditInstallmentFeePercent *decimal.Decimal `gorm:"type:decimal(5,2)" json:"creditInstallmentFeePercent"`
	CreditInstallmentTermDays   int              `gorm:"not null;default:30" json:"creditInstallmentTermDays"`
	AutoAnticipation            bool             `gorm:"not null;default:false" json:"autoAnticipation"`
	AnticipationFeePercent      *decimal.Decimal `gorm:"type:decimal(5,2)" json:"anticipationFeePercent"`
	IsActive                    bool             `gorm:"not null;default:true" json:"isActive"`
	CreatedAt                   time.Time        `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt                   time.Time        `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Profile) TableName() string {
	return "card_operator_profiles"
}

type PaymentMethod string

const (
	MethodDebit  PaymentMethod = "DEBIT"
	MethodCredit PaymentMethod = "CREDIT"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case MethodDebit, MethodCredit:
		return true
	}
	return false
}
