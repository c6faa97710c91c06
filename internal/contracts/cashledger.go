package contracts

import (
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
)

type LedgerEntryCreateRequest struct {
	Description string          `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Direction   string          `json:"direction" binding:"required,oneof=IN OUT"`
	Category    string          `json:"category" binding:"omitempty,max=100"`
	Reference   string          `json:"reference" binding:"omitempty,max=64"`
	AccountId   string          `json:"account_id" binding:"omitempty"`
}

type LedgerEntryCreateResponse struct {
	Message string            `json:"message"`
	Entry   *cashledger.Entry `json:"entry"`
}

type LedgerEntrySingleResponse struct {
	Entry *cashledger.Entry `json:"entry"`
}
