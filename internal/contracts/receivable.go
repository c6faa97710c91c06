package contracts

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/receivable"
)

type ReceivableGenerateRequest struct {
	SaleId       string          `json:"sale_id" binding:"required"`
	OperatorId   string          `json:"operator_id" binding:"required"`
	Method       string          `json:"method" binding:"required,oneof=DEBIT CREDIT"`
	GrossAmount  decimal.Decimal `json:"gross_amount" binding:"required"`
	Installments int             `json:"installments" binding:"omitempty,gte=1"`
	SaleDate     time.Time       `json:"sale_date" binding:"required"`
}

type ReceivableConfirmRequest struct {
	ConfirmedBy string `json:"confirmed_by" binding:"required,max=100"`
}

type ReceivableGenerateResponse struct {
	Message     string                   `json:"message"`
	Receivables []*receivable.Receivable `json:"receivables"`
}

type ReceivableSingleResponse struct {
	Receivable *receivable.Receivable `json:"receivable"`
}

type ReceivableListBySaleResponse struct {
	Receivables []*receivable.Receivable `json:"receivables"`
	Total       int                      `json:"total"`
}
