package account

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

// LedgerSummer devolve a soma dos lançamentos não excluídos de uma conta
// (entradas menos saídas). Implementado pelo repositório do livro caixa.
type LedgerSummer interface {
	SumByAccount(ctx context.Context, accountID ulid.ULID) (decimal.Decimal, error)
}

type Service struct {
	Repository Repository
	Ledger     LedgerSummer
}

func NewService(repo Repository, ledger LedgerSummer) *Service {
	return &Service{
		Repository: repo,
		Ledger:     ledger,
	}
}

func (s *Service) CreateAccount(ctx context.Context, req *CreateAccountRequest) (*Account, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, appErrors.NewValidationError("name", "é obrigatório")
	}

	// Contas abrem zeradas; saldo inicial entra como lançamento manual no
	// livro caixa, assim o saldo nunca diverge da soma dos lançamentos.
	now := time.Now()
	acc := &Account{
		Id:        pkg.GenerateULIDObject(),
		Name:      name,
		Bank:      strings.TrimSpace(req.Bank),
		Balance:   decimal.Zero,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.Repository.Create(ctx, acc); err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return acc, nil
}

func (s *Service) UpdateAccount(ctx context.Context, accountID ulid.ULID, req *UpdateAccountRequest) error {
	acc, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return appErrors.NewValidationError("name", "não pode ser vazio")
		}
		acc.Name = name
	}

	if req.Bank != nil {
		acc.Bank = strings.TrimSpace(*req.Bank)
	}

	if req.IsActive != nil {
		acc.IsActive = *req.IsActive
	}

	acc.UpdatedAt = time.Now()

	if err := s.Repository.Update(ctx, acc); err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) GetAccountByID(ctx context.Context, accountID ulid.ULID) (*Account, error) {
	acc, err := s.Repository.GetById(ctx, accountID)
	if err != nil {
		return nil, appErrors.ErrAccountNotFound.WithError(err)
	}

	return acc, nil
}

func (s *Service) ListAccounts(ctx context.Context, pagination *pkg.PaginationParams) ([]*Account, int64, error) {
	return s.Repository.List(ctx, pagination)
}

// Reconciliation compara o saldo armazenado com a soma dos lançamentos não
// excluídos do livro caixa. Divergência zero é o invariante; qualquer outra
// coisa indica escrita fora das operações do ledger.
type Reconciliation struct {
	AccountId     ulid.ULID       `json:"accountId"`
	StoredBalance decimal.Decimal `json:"storedBalance"`
	LedgerBalance decimal.Decimal `json:"ledgerBalance"`
	Difference    decimal.Decimal `json:"difference"`
	Consistent    bool            `json:"consistent"`
}

func (s *Service) Reconcile(ctx context.Context, accountID ulid.ULID) (*Reconciliation, error) {
	acc, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	ledgerBalance, err := s.Ledger.SumByAccount(ctx, accountID)
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	diff := acc.Balance.Sub(ledgerBalance)
	return &Reconciliation{
		AccountId:     accountID,
		StoredBalance: acc.Balance,
		LedgerBalance: ledgerBalance,
		Difference:    diff,
		Consistent:    diff.IsZero(),
	}, nil
}

type CreateAccountRequest struct {
	Name string
	Bank string
}

type UpdateAccountRequest struct {
	Name     *string
	Bank     *string
	IsActive *bool
}
