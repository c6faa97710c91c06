package contracts

import (
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
)

type OperatorCreateRequest struct {
	Name                        string           `json:"name" binding:"required,max=100"`
	AccountId                   string           `json:"account_id" binding:"required"`
	DebitFeePercent             *decimal.Decimal `json:"debit_fee_percent" binding:"omitempty"`
	DebitTermDays               int              `json:"debit_term_days" binding:"omitempty,gte=0"`
	CreditCashFeePercent        *decimal.Decimal `json:"credit_cash_fee_percent" binding:"omitempty"`
	CreditCashTermDays          int              `json:"credit_cash_term_days" binding:"omitempty,gte=0"`
	CreditInstallmentFeePercent *decimal.Decimal `json:"credit_installment_fee_percent" binding:"omitempty"`
	CreditInstallmentTermDays   int              `json:"credit_installment_term_days" binding:"omitempty,gte=0"`
	AutoAnticipation            bool             `json:"auto_anticipation" binding:"omitempty"`
	AnticipationFeePercent      *decimal.Decimal `json:"anticipation_fee_percent" binding:"omitempty"`
}

type OperatorUpdateRequest struct {
	Name                        *string          `json:"name" binding:"omitempty,max=100"`
	AccountId                   *string          `json:"account_id" binding:"omitempty"`
	DebitFeePercent             *decimal.Decimal `json:"debit_fee_percent" binding:"omitempty"`
	DebitTermDays               *int             `json:"debit_term_days" binding:"omitempty,gte=0"`
	CreditCashFeePercent        *decimal.Decimal `json:"credit_cash_fee_percent" binding:"omitempty"`
	CreditCashTermDays          *int             `json:"credit_cash_term_days" binding:"omitempty,gte=0"`
	CreditInstallmentFeePercent *decimal.Decimal `json:"credit_installment_fee_percent" binding:"omitempty"`
	CreditInstallmentTermDays   *int             `json:"credit_installment_term_days" binding:"omitempty,gte=0"`
	AutoAnticipation            *bool            `json:"auto_anticipation" binding:"omitempty"`
	AnticipationFeePercent      *decimal.Decimal `json:"anticipation_fee_percent" binding:"omitempty"`
	IsActive                    *bool            `json:"is_active" binding:"omitempty"`
}

type OperatorCreateResponse struct {
	Message  string            `json:"message"`
	Operator *operator.Profile `json:"operator"`
}

type OperatorSingleResponse struct {
	Operator *operator.Profile `json:"operator"`
}
