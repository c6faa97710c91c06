package payable

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/shared"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Service struct {
	Repository  Repository
	AccountRepo account.Repository
	LedgerRepo  cashledger.Repository
	Tx          shared.TxManager
}

func NewService(repo Repository, accountRepo account.Repository, ledgerRepo cashledger.Repository, tx shared.TxManager) *Service {
	return &Service{
		Repository:  repo,
		AccountRepo: accountRepo,
		LedgerRepo:  ledgerRepo,
		Tx:          tx,
	}
}

// CreateBill cria a conta e, com repeat > 0, a série recorrente inteira em
// uma única transação. Conta criada já como PAID dispara o mesmo efeito de
// caixa da transição PENDING -> PAID no ato da criação.
func (s *Service) CreateBill(ctx context.Context, req *CreateBillRequest) ([]*Bill, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, appErrors.NewValidationError("description", "é obrigatório")
	}

	if !req.Amount.IsPositive() {
		return nil, appErrors.ErrInvalidAmount
	}

	if !req.Amount.Round(2).Equal(req.Amount) {
		return nil, appErrors.NewValidationError("amount", "deve ter no máximo duas casas decimais")
	}

	if !pkg.IsRepresentableDate(req.DueDate) {
		return nil, appErrors.ErrInvalidDate
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, appErrors.NewValidationError("status", "deve ser PENDING ou PAID")
	}

	if status == StatusPending && req.PaymentDate != nil {
		return nil, appErrors.NewValidationError("payment_date", "só é permitido em conta PAID")
	}

	if req.AccountId != nil {
		if _, err := s.AccountRepo.GetById(ctx, *req.AccountId); err != nil {
			return nil, appErrors.ErrAccountNotFound.WithError(err)
		}
	}

	now := time.Now()
	template := &Bill{
		Id:               pkg.GenerateULIDObject(),
		Description:      description,
		Notes:            strings.TrimSpace(req.Notes),
		Amount:           req.Amount,
		DueDate:          pkg.TruncateToDay(req.DueDate),
		Status:           StatusPending,
		Category:         strings.TrimSpace(req.Category),
		Creditor:         strings.TrimSpace(req.Creditor),
		InstallmentIndex: 1,
		InstallmentTotal: 1,
		AccountId:        req.AccountId,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if status == StatusPaid {
		paymentDate := now
		if req.PaymentDate != nil {
			paymentDate = pkg.TruncateToDay(*req.PaymentDate)
		}
		template.Status = StatusPaid
		template.PaymentDate = &paymentDate
	}

	bills, err := Expand(template, req.Repeat)
	if err != nil {
		return nil, err
	}

	err = s.Tx.Do(ctx, func(tx interface{}) error {
		if err := s.Repository.CreateBatchWithTx(ctx, tx, bills); err != nil {
			return err
		}
		if template.Status == StatusPaid {
			return s.applyPaymentWithTx(ctx, tx, template, now)
		}
		return nil
	})
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return bills, nil
}

// UpdateBill edita a conta e, com propagate, espelha a edição na série: o
// vencimento das irmãs anda pelo mesmo delta que o da conta editada (a
// posição relativa da série é preservada, nunca sobrescrita por uma data
// absoluta); campos compartilhados acompanham; valor só muda na editada.
// Propagate em conta sem grupo degrada para operação individual.
func (s *Service) UpdateBill(ctx context.Context, billID ulid.ULID, propagate bool, req *UpdateBillRequest) error {
	bill, err := s.GetBillByID(ctx, billID)
	if err != nil {
		return err
	}

	now := time.Now()

	var dueDelta time.Duration
	if req.DueDate != nil {
		newDue := pkg.TruncateToDay(*req.DueDate)
		if !pkg.IsRepresentableDate(newDue) {
			return appErrors.ErrInvalidDate
		}
		dueDelta = newDue.Sub(pkg.TruncateToDay(bill.DueDate))
		bill.DueDate = newDue
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return appErrors.NewValidationError("description", "não pode ser vazio")
		}
		bill.Description = description
	}

	if req.Notes != nil {
		bill.Notes = strings.TrimSpace(*req.Notes)
	}

	if req.Amount != nil {
		if !req.Amount.IsPositive() {
			return appErrors.ErrInvalidAmount
		}
		if !req.Amount.Round(2).Equal(*req.Amount) {
			return appErrors.NewValidationError("amount", "deve ter no máximo duas casas decimais")
		}
		bill.Amount = *req.Amount
	}

	if req.Category != nil {
		bill.Category = strings.TrimSpace(*req.Category)
	}

	if req.Creditor != nil {
		bill.Creditor = strings.TrimSpace(*req.Creditor)
	}

	if req.AccountId != nil {
		if _, err := s.AccountRepo.GetById(ctx, *req.AccountId); err != nil {
			return appErrors.ErrAccountNotFound.WithError(err)
		}
		bill.AccountId = req.AccountId
	}

	transition := transitionNone
	if req.Status != nil && *req.Status != bill.Status {
		if !req.Status.IsValid() {
			return appErrors.NewValidationError("status", "deve ser PENDING ou PAID")
		}
		if *req.Status == StatusPaid {
			transition = transitionPay
			paymentDate := now
			if req.PaymentDate != nil {
				paymentDate = pkg.TruncateToDay(*req.PaymentDate)
			}
			bill.Status = StatusPaid
			bill.PaymentDate = &paymentDate
		} else {
			transition = transitionReverse
			bill.Status = StatusPending
			bill.PaymentDate = nil
		}
	}

	var siblings []*Bill
	if propagate {
		siblings, err = s.seriesSiblings(ctx, bill)
		if err != nil {
			return err
		}
	}

	// Tudo validado antes de qualquer escrita: datas das irmãs calculadas
	// fora da transação para nenhuma linha ser tocada em caso de data
	// inválida.
	for _, sibling := range siblings {
		if dueDelta != 0 {
			shifted := pkg.TruncateToDay(sibling.DueDate.Add(dueDelta))
			if !pkg.IsRepresentableDate(shifted) {
				return appErrors.ErrInvalidDate
			}
			sibling.DueDate = shifted
		}
		if req.Description != nil {
			sibling.Description = bill.Description
		}
		if req.Category != nil {
			sibling.Category = bill.Category
		}
		if req.Creditor != nil {
			sibling.Creditor = bill.Creditor
		}
		if req.AccountId != nil {
			sibling.AccountId = bill.AccountId
		}
		sibling.UpdatedAt = now
	}

	bill.UpdatedAt = now

	err = s.Tx.Do(ctx, func(tx interface{}) error {
		if err := s.Repository.UpdateWithTx(ctx, tx, bill); err != nil {
			return err
		}
		for _, sibling := range siblings {
			if err := s.Repository.UpdateWithTx(ctx, tx, sibling); err != nil {
				return err
			}
		}
		switch transition {
		case transitionPay:
			return s.applyPaymentWithTx(ctx, tx, bill, now)
		case transitionReverse:
			return s.reversePaymentWithTx(ctx, tx, bill, now)
		}
		return nil
	})
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return appErr
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// DeleteBill marca a conta como excluída; com propagate, a série inteira cai
// em uma única operação atômica. Nada é removido fisicamente.
func (s *Service) DeleteBill(ctx context.Context, billID ulid.ULID, propagate bool) error {
	bill, err := s.GetBillByID(ctx, billID)
	if err != nil {
		return err
	}

	now := time.Now()
	err = s.Tx.Do(ctx, func(tx interface{}) error {
		if propagate && bill.GroupId != nil {
			_, err := s.Repository.SoftDeleteGroupWithTx(ctx, tx, *bill.GroupId, now)
			return err
		}
		return s.Repository.SoftDeleteWithTx(ctx, tx, billID, now)
	})
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return appErr
		}
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

// PayBill é a transição PENDING -> PAID: data de pagamento preenchida,
// lançamento OUT no livro caixa com o instante real do pagamento (as datas
// de vencimento e de pagamento são datas de negócio, não de caixa) e débito
// atômico da conta bancária vinculada, tudo na mesma transação.
func (s *Service) PayBill(ctx context.Context, billID ulid.ULID, req *PayBillRequest) (*Bill, error) {
	bill, err := s.GetBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}

	if bill.Status == StatusPaid {
		return nil, appErrors.NewValidationError("bill", "conta já está paga")
	}

	if req.AccountId != nil {
		if _, err := s.AccountRepo.GetById(ctx, *req.AccountId); err != nil {
			return nil, appErrors.ErrAccountNotFound.WithError(err)
		}
		bill.AccountId = req.AccountId
	}

	now := time.Now()
	paymentDate := now
	if req.PaymentDate != nil {
		paymentDate = pkg.TruncateToDay(*req.PaymentDate)
	}

	bill.Status = StatusPaid
	bill.PaymentDate = &paymentDate
	bill.UpdatedAt = now

	err = s.Tx.Do(ctx, func(tx interface{}) error {
		if err := s.Repository.UpdateWithTx(ctx, tx, bill); err != nil {
			return err
		}
		return s.applyPaymentWithTx(ctx, tx, bill, now)
	})
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return bill, nil
}

// ReversePayment desfaz o pagamento: PAID -> PENDING, lançamentos AUTOMATIC
// da conta marcados como excluídos e cada débito devolvido à respectiva
// conta bancária, na mesma transação.
func (s *Service) ReversePayment(ctx context.Context, billID ulid.ULID) (*Bill, error) {
	bill, err := s.GetBillByID(ctx, billID)
	if err != nil {
		return nil, err
	}

	if bill.Status != StatusPaid {
		return nil, appErrors.NewValidationError("bill", "conta não está paga")
	}

	now := time.Now()
	bill.Status = StatusPending
	bill.PaymentDate = nil
	bill.UpdatedAt = now

	err = s.Tx.Do(ctx, func(tx interface{}) error {
		if err := s.Repository.UpdateWithTx(ctx, tx, bill); err != nil {
			return err
		}
		return s.reversePaymentWithTx(ctx, tx, bill, now)
	})
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	return bill, nil
}

func (s *Service) GetBillByID(ctx context.Context, billID ulid.ULID) (*Bill, error) {
	bill, err := s.Repository.GetById(ctx, billID)
	if err != nil {
		return nil, appErrors.ErrBillNotFound.WithError(err)
	}
	return bill, nil
}

func (s *Service) ListBills(ctx context.Context, filter *Filter, pagination *pkg.PaginationParams) ([]*Bill, int64, error) {
	return s.Repository.List(ctx, filter, pagination)
}

func (s *Service) applyPaymentWithTx(ctx context.Context, tx interface{}, bill *Bill, now time.Time) error {
	entry := &cashledger.Entry{
		Id:          pkg.GenerateULIDObject(),
		Description: fmt.Sprintf("Pagamento: %s", bill.Description),
		Amount:      bill.Amount,
		Direction:   cashledger.DirectionOut,
		Category:    bill.Category,
		MovedAt:     now,
		Origin:      cashledger.OriginAutomatic,
		Reference:   cashledger.BillReference(bill.Id),
		AccountId:   bill.AccountId,
		CreatedAt:   now,
	}

	if err := s.LedgerRepo.CreateWithTx(ctx, tx, entry); err != nil {
		return err
	}

	if bill.AccountId != nil {
		return s.AccountRepo.UpdateBalanceWithTx(ctx, tx, *bill.AccountId, bill.Amount.Neg())
	}
	return nil
}

func (s *Service) reversePaymentWithTx(ctx context.Context, tx interface{}, bill *Bill, now time.Time) error {
	reference := cashledger.BillReference(bill.Id)
	entries, err := s.LedgerRepo.FindActiveByReferenceWithTx(ctx, tx, reference, cashledger.OriginAutomatic)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if err := s.LedgerRepo.SoftDeleteWithTx(ctx, tx, entry.Id, now); err != nil {
			return err
		}
		if entry.AccountId != nil {
			if err := s.AccountRepo.UpdateBalanceWithTx(ctx, tx, *entry.AccountId, entry.Amount); err != nil {
				return err
			}
		}
	}
	return nil
}

// seriesSiblings devolve as demais contas da série. Sem group_id, cai na
// leitura de compatibilidade baseada no marcador "(k/n)" das observações;
// sem marcador, a lista é vazia e a operação degrada para individual.
func (s *Service) seriesSiblings(ctx context.Context, bill *Bill) ([]*Bill, error) {
	if bill.GroupId != nil {
		all, err := s.Repository.GetActiveByGroupId(ctx, *bill.GroupId)
		if err != nil {
			return nil, appErrors.NewDatabaseError(err)
		}
		siblings := make([]*Bill, 0, len(all))
		for _, candidate := range all {
			if candidate.Id != bill.Id {
				siblings = append(siblings, candidate)
			}
		}
		return siblings, nil
	}

	return s.legacySiblings(ctx, bill)
}

func (s *Service) legacySiblings(ctx context.Context, bill *Bill) ([]*Bill, error) {
	index, total, ok := parseLegacySeriesMarker(bill.Notes)
	if !ok {
		return nil, nil
	}

	candidates, err := s.Repository.FindLegacySeries(ctx, bill.Description, bill.Creditor)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	siblings := make([]*Bill, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.Id == bill.Id {
			continue
		}
		candidateIndex, candidateTotal, ok := parseLegacySeriesMarker(candidate.Notes)
		if !ok || candidateTotal != total || candidateIndex == index {
			continue
		}
		siblings = append(siblings, candidate)
	}
	return siblings, nil
}

type billTransition int

const (
	transitionNone billTransition = iota
	transitionPay
	transitionReverse
)

type CreateBillRequest struct {
	Description string
	Notes       string
	Amount      decimal.Decimal
	DueDate     time.Time
	Status      Status
	PaymentDate *time.Time
	Category    string
	Creditor    string
	AccountId   *ulid.ULID
	Repeat      int
}

type UpdateBillRequest struct {
	Description *string
	Notes       *string
	Amount      *decimal.Decimal
	DueDate     *time.Time
	Status      *Status
	PaymentDate *time.Time
	Category    *string
	Creditor    *string
	AccountId   *ulid.ULID
}

type PayBillRequest struct {
	PaymentDate *time.Time
	AccountId   *ulid.ULID
}
