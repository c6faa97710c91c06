package operator

import (
	"github.com/shopspring/decimal"

	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
)

// FeeTerms é o resultado da resolução de taxa para uma parcela: percentual
// aplicável, prazo de repasse em dias e, quando a antecipação automática
// está ligada, o percentual adicional destacado como dedução própria. Com
// Anticipated o prazo deixa de valer e o repasse cai no próximo dia útil.
type FeeTerms struct {
	FeePercent          decimal.Decimal
	TermDays            int
	Anticipated         bool
	AnticipationPercent decimal.Decimal
}

// ResolveFees resolve taxa e prazo para uma parcela da venda. Débito ignora o
// parcelamento; crédito à vista usa a taxa de crédito em 1x; crédito
// parcelado usa a mesma taxa flat para todas as parcelas, independente do
// índice. Função pura, sem efeitos colaterais.
func (p *Profile) ResolveFees(method PaymentMethod, installmentIndex, totalInstallments int) (*FeeTerms, error) {
	if !method.IsValid() {
		return nil, appErrors.NewValidationError("method", "forma de pagamento inválida")
	}

	if totalInstallments < 1 {
		return nil, appErrors.NewValidationError("installments", "deve ser maior ou igual a 1")
	}

	if installmentIndex < 1 || installmentIndex > totalInstallments {
		return nil, appErrors.NewValidationError("installment_index", "fora do intervalo de parcelas")
	}

	var (
		feePercent *decimal.Decimal
		termDays   int
	)

	switch {
	case method == MethodDebit:
		feePercent = p.DebitFeePercent
		termDays = p.DebitTermDays
	case totalInstallments == 1:
		feePercent = p.CreditCashFeePercent
		termDays = p.CreditCashTermDays
	default:
		feePercent = p.CreditInstallmentFeePercent
		termDays = p.CreditInstallmentTermDays
	}

	if feePercent == nil {
		return nil, appErrors.ErrInvalidConfiguration.WithDetails(map[string]interface{}{
			"operator": p.Id.String(),
			"method":   string(method),
		})
	}

	terms := &FeeTerms{
		FeePercent: *feePercent,
		TermDays:   termDays,
	}

	if p.AutoAnticipation {
		if p.AnticipationFeePercent == nil {
			return nil, appErrors.ErrInvalidConfiguration.WithDetails(map[string]interface{}{
				"operator": p.Id.String(),
				"method":   string(method),
				"field":    "anticipation_fee_percent",
			})
		}
		terms.Anticipated = true
		terms.AnticipationPercent = *p.AnticipationFeePercent
	}

	return terms, nil
}
