package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/payable"
)

type BillCreateRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Notes       string          `json:"notes" binding:"omitempty,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	DueDate     time.Time       `json:"due_date" binding:"required"`
	Status      string          `json:"status" binding:"omitempty,oneof=PENDING PAID"`
	PaymentDate *time.Time      `json:"payment_date" binding:"omitempty"`
	Category    string          `json:"category" binding:"omitempty,max=100"`
	Creditor    string          `json:"creditor" binding:"omitempty,max=100"`
	AccountId   string          `json:"account_id" binding:"omitempty"`
	Repeat      int             `json:"repeat" binding:"omitempty,gte=0"`
}

type BillUpdateRequest struct {
	Description *string          `json:"description" binding:"omitempty,max=255"`
	Notes       *string          `json:"notes" binding:"omitempty,max=255"`
	Amount      *decimal.Decimal `json:"amount" binding:"omitempty"`
	DueDate     *time.Time       `json:"due_date" binding:"omitempty"`
	Status      *string          `json:"status" binding:"omitempty,oneof=PENDING PAID"`
	PaymentDate *time.Time       `json:"payment_date" binding:"omitempty"`
	Category    *string          `json:"category" binding:"omitempty,max=100"`
	Creditor    *string          `json:"creditor" binding:"omitempty,max=100"`
	AccountId   *string          `json:"account_id" binding:"omitempty"`
}

type BillPayRequest struct {
	PaymentDate *time.Time `json:"payment_date" binding:"omitempty"`
	AccountId   string     `json:"account_id" binding:"omitempty"`
}

type BillCreateResponse struct {
	Message string          `json:"message"`
	Bills   []*payable.Bill `json:"bills"`
}

type BillSingleResponse struct {
	Bill *payable.Bill `json:"bill"`
}
