package cashledger

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Entry é um lançamento do livro caixa. O livro é append-only: estornos
// marcam deleted_at e nunca removem a linha, preservando a trilha de
// auditoria. MovedAt registra o instante real da ação que gerou o
// lançamento, não a data de negócio (vencimento, venda).
type Entry struct {
	Id          ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	Description string          `gorm:"type:varchar(255);not null" json:"description"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Direction   Direction       `gorm:"type:varchar(5);not null;index:idx_cash_entries_direction" json:"direction"`
	Category    string          `gorm:"type:varchar(100)" json:"category"`
	MovedAt     time.Time       `gorm:"not null;index:idx_cash_entries_moved_at" json:"movedAt"`
	Origin      Origin          `gorm:"type:varchar(10);not null" json:"origin"`
	Reference   string          `gorm:"type:varchar(64);index:idx_cash_entries_reference" json:"reference"`
	AccountId   *ulid.ULID      `gorm:"type:varchar(26);index:idx_cash_entries_account_id" json:"accountId"`
	DeletedAt   *time.Time      `gorm:"index:idx_cash_entries_deleted_at" json:"deletedAt"`
	CreatedAt   time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
}

func (Entry) TableName() string {
	return "cash_ledger_entries"
}

type Direction string

const (
	DirectionIn  Direction = "IN"
	DirectionOut Direction = "OUT"
)

func (d Direction) IsValid() bool {
	switch d {
	case DirectionIn, DirectionOut:
		return true
	}
	return false
}

type Origin string

const (
	OriginManual    Origin = "MANUAL"
	OriginAutomatic Origin = "AUTOMATIC"
)

// ReceivableReference e BillReference montam a tag que liga um lançamento
// AUTOMATIC ao evento de domínio que o gerou.
func ReceivableReference(id ulid.ULID) string {
	return "receivable:" + id.String()
}

func BillReference(id ulid.ULID) string {
	return "bill:" + id.String()
}
