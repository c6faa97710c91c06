package payable

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Bill é uma despesa da oficina, possivelmente parte de uma série recorrente.
// Bills de uma mesma série compartilham GroupId; entre irmãs só vencimento e
// valor podem divergir. PaymentDate é não-nulo se e somente se o status é
// PAID.
type Bill struct {
	Id               ulid.ULID       `gorm:"type:varchar(26);primaryKey" json:"id"`
	Description      string          `gorm:"type:varchar(255);not null" json:"description"`
	Notes            string          `gorm:"type:varchar(255)" json:"notes"`
	Amount           decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	DueDate          time.Time       `gorm:"type:date;not null;index:idx_payable_bills_due_date" json:"dueDate"`
	PaymentDate      *time.Time      `gorm:"type:date" json:"paymentDate"`
	Status           Status          `gorm:"type:varchar(10);not null;default:'PENDING';index:idx_payable_bills_status" json:"status"`
	Category         string          `gorm:"type:varchar(100)" json:"category"`
	Creditor         string          `gorm:"type:varchar(100)" json:"creditor"`
	GroupId          *ulid.ULID      `gorm:"type:varchar(26);index:idx_payable_bills_group_id" json:"groupId"`
	InstallmentIndex int             `gorm:"not null;default:1" json:"installmentIndex"`
	InstallmentTotal int             `gorm:"not null;default:1" json:"installmentTotal"`
	AccountId        *ulid.ULID      `gorm:"type:varchar(26);index:idx_payable_bills_account_id" json:"accountId"`
	DeletedAt        *time.Time      `gorm:"index:idx_payable_bills_deleted_at" json:"deletedAt"`
	CreatedAt        time.Time       `gorm:"autoCreateTime;not null" json:"createdAt"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime;not null" json:"updatedAt"`
}

func (Bill) TableName() string {
	return "payable_bills"
}

type Status string

const (
	StatusPending Status = "PENDING"
	StatusPaid    Status = "PAID"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid:
		return true
	}
	return false
}
