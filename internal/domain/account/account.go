package account

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Account é uma conta bancária da oficina. O saldo só muda por operações que
// também produzem lançamento no livro caixa (baixa/estorno de recebível,
// pagamento/estorno de conta, lançamento manual), sempre via incremento
// atômico no banco; nunca por read-modify-write na aplicação.
type Account struct {
	Id        ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	Name      string          `gorm:"type:varchar(100);not null" json:"name"`
	Bank      string          `gorm:"type:varchar(100)" json:"bank"`
	Balance   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0" json:"balance"`
	IsActive  bool            `gorm:"not null;default:true" json:"isActive"`
	CreatedAt time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Account) TableName() string {
	return "bank_accounts"
}
