package receivable

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/operator"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/shared"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

// installmentSpacingDays é o espaçamento entre parcelas de crédito além do
// prazo base da operadora.
const installmentSpacingDays = 30

type Service struct {
	Repository      Repository
	OperatorService *operator.Service
	AccountRepo     account.Repository
	LedgerRepo      cashledger.Repository
	Tx              shared.TxManager
}

func NewService(
	repo Repository,
	operatorSvc *operator.Service,
	accountRepo account.Repository,
	ledgerRepo cashledger.Repository,
	tx shared.TxManager,
) *Service {
	return &Service{
		Repository:      repo,
		OperatorService: operatorSvc,
		AccountRepo:     accountRepo,
		LedgerRepo:      ledgerRepo,
		Tx:              tx,
	}
}

// GenerateForSale expande um pagamento em cartão nas parcelas a receber da
// operadora. O valor bruto é dividido em centavos inteiros, com o resto da
// divisão somado à última parcela para a soma fechar exata. Todas as
// parcelas são gravadas em uma única transação.
func (s *Service) GenerateForSale(ctx context.Context, req *GenerateRequest) ([]*Receivable, error) {
	if !req.GrossAmount.IsPositive() {
		return nil, appErrors.ErrInvalidAmount
	}

	if !req.GrossAmount.Round(2).Equal(req.GrossAmount) {
		return nil, appErrors.NewValidationError("gross_amount", "deve ter no máximo duas casas decimais")
	}

	if req.Installments < 1 {
		return nil, appErrors.NewValidationError("installments", "deve ser maior ou igual a 1")
	}

	if req.Method == operator.MethodDebit && req.Installments != 1 {
		return nil, appErrors.NewValidationError("installments", "débito não admite parcelamento")
	}

	profile, err := s.OperatorService.GetProfileByID(ctx, req.OperatorId)
	if err != nil {
		return nil, err
	}

	saleDate := req.SaleDate
	if saleDate.IsZero() {
		saleDate = time.Now()
	}

	grossCents := req.GrossAmount.Shift(2).IntPart()
	n := int64(req.Installments)
	shareCents := grossCents / n
	remainderCents := grossCents % n

	now := time.Now()
	receivables := make([]*Receivable, 0, req.Installments)

	for i := 1; i <= req.Installments; i++ {
		terms, err := profile.ResolveFees(req.Method, i, req.Installments)
		if err != nil {
			return nil, err
		}

		cents := shareCents
		if i == req.Installments {
			cents += remainderCents
		}
		share := decimal.New(cents, -2)

		fee := share.Mul(terms.FeePercent).Div(decimal.NewFromInt(100)).Round(2)
		anticipationFee := decimal.Zero
		if terms.Anticipated {
			anticipationFee = share.Mul(terms.AnticipationPercent).Div(decimal.NewFromInt(100)).Round(2)
		}
		net := share.Sub(fee).Sub(anticipationFee)

		var expected time.Time
		if terms.Anticipated {
			expected = pkg.NextBusinessDay(saleDate)
		} else {
			expected = saleDate.AddDate(0, 0, terms.TermDays+(i-1)*installmentSpacingDays)
		}

		receivables = append(receivables, &Receivable{
			Id:               pkg.GenerateULIDObject(),
			SaleId:           req.SaleId,
			OperatorId:       profile.Id,
			AccountId:        profile.AccountId,
			Method:           req.Method,
			InstallmentIndex: i,
			InstallmentTotal: req.Installments,
			GrossAmount:      share,
			FeePercent:       terms.FeePercent,
			FeeAmount:        fee,
			AnticipationFee:  anticipationFee,
			NetAmount:        net,
			Anticipated:      terms.Anticipated,
			SaleDate:         saleDate,
			ExpectedDate:     pkg.TruncateToDay(expected),
			Status:           StatusPending,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	err = s.Tx.Do(ctx, func(tx interface{}) error {
		return s.Repository.CreateBatchWithTx(ctx, tx, receivables)
	})
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return receivables, nil
}

func (s *Service) GetReceivableByID(ctx context.Context, receivableID ulid.ULID) (*Receivable, error) {
	rec, err := s.Repository.GetById(ctx, receivableID)
	if err != nil {
		return nil, appErrors.ErrReceivableNotFound.WithError(err)
	}
	return rec, nil
}

func (s *Service) ListReceivables(ctx context.Context, filter *Filter, pagination *pkg.PaginationParams) ([]*Receivable, int64, error) {
	return s.Repository.List(ctx, filter, pagination)
}

func (s *Service) GetBySale(ctx context.Context, saleID ulid.ULID) ([]*Receivable, error) {
	receivables, err := s.Repository.GetBySaleId(ctx, saleID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}
	return receivables, nil
}

func settlementDescription(rec *Receivable) string {
	return fmt.Sprintf("Recebimento cartão parcela %d/%d", rec.InstallmentIndex, rec.InstallmentTotal)
}

type GenerateRequest struct {
	SaleId       ulid.ULID
	OperatorId   ulid.ULID
	Method       operator.PaymentMethod
	GrossAmount  decimal.Decimal
	Installments int
	SaleDate     time.Time
}
