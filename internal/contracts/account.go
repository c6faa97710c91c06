package contracts

import (
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
)

type AccountCreateRequest struct {
	Name string `json:"name" binding:"required,max=100"`
	Bank string `json:"bank" binding:"omitempty,max=100"`
}

type AccountUpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	Bank     *string `json:"bank" binding:"omitempty,max=100"`
	IsActive *bool   `json:"is_active" binding:"omitempty"`
}

type AccountCreateResponse struct {
	Message string           `json:"message"`
	Account *account.Account `json:"account"`
}

type AccountSingleResponse struct {
	Account *account.Account `json:"account"`
}

type AccountReconciliationResponse struct {
	AccountId     string          `json:"accountId"`
	StoredBalance decimal.Decimal `json:"storedBalance"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	Difference    decimal.Decimal `json:"difference"`
	Consistent    bool            `json:"consistent"`
}
