package cashledger

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/shared"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type Service struct {
	Repository  Repository
	AccountRepo account.Repository
	Tx          shared.TxManager
}

func NewService(repo Repository, accountRepo account.Repository, tx shared.TxManager) *Service {
	return &Service{
		Repository:  repo,
		AccountRepo: accountRepo,
		Tx:          tx,
	}
}

// CreateManualEntry registra um movimento de caixa informado pelo operador.
// Quando há conta bancária vinculada, o lançamento e a mutação de saldo
// entram na mesma transação.
func (s *Service) CreateManualEntry(ctx context.Context, req *CreateEntryRequest) (*Entry, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, appErrors.NewValidationError("description", "é obrigatório")
	}

	if !req.Direction.IsValid() {
		return nil, appErrors.NewValidationError("direction", "deve ser IN ou OUT")
	}

	if !req.Amount.IsPositive() {
		return nil, appErrors.ErrInvalidAmount
	}

	if req.AccountId != nil {
		if _, err := s.AccountRepo.GetById(ctx, *req.AccountId); err != nil {
			return nil, appErrors.ErrAccountNotFound.WithError(err)
		}
	}

	now := time.Now()
	entry := &Entry{
		Id:          pkg.GenerateULIDObject(),
		Description: description,
		Amount:      req.Amount,
		Direction:   req.Direction,
		Category:    strings.TrimSpace(req.Category),
		MovedAt:     now,
		Origin:      OriginManual,
		Reference:   strings.TrimSpace(req.Reference),
		AccountId:   req.AccountId,
		CreatedAt:   now,
	}

	err := s.Tx.Do(ctx, func(tx interface{}) error {
		if err := s.Repository.CreateWithTx(ctx, tx, entry); err != nil {
			return err
		}
		if entry.AccountId != nil {
			return s.AccountRepo.UpdateBalanceWithTx(ctx, tx, *entry.AccountId, signedAmount(entry))
		}
		return nil
	})
	if err != nil {
		return nil, appErrors.NewDatabaseError(err)
	}

	return entry, nil
}

// DeleteEntry estorna um lançamento manual: marca deleted_at e devolve o
// efeito sobre o saldo. Lançamentos AUTOMATIC pertencem ao fluxo que os
// criou (baixa de recebível, pagamento de conta) e só são estornados por
// ele.
func (s *Service) DeleteEntry(ctx context.Context, entryID ulid.ULID) error {
	entry, err := s.Repository.GetById(ctx, entryID)
	if err != nil {
		return appErrors.ErrEntryNotFound.WithError(err)
	}

	if entry.DeletedAt != nil {
		return appErrors.ErrEntryNotFound
	}

	if entry.Origin == OriginAutomatic {
		return appErrors.NewValidationError("entry", "lançamento automático só pode ser estornado pela operação de origem")
	}

	now := time.Now()
	err = s.Tx.Do(ctx, func(tx interface{}) error {
		if err := s.Repository.SoftDeleteWithTx(ctx, tx, entryID, now); err != nil {
			return err
		}
		if entry.AccountId != nil {
			return s.AccountRepo.UpdateBalanceWithTx(ctx, tx, *entry.AccountId, signedAmount(entry).Neg())
		}
		return nil
	})
	if err != nil {
		return appErrors.NewDatabaseError(err)
	}

	return nil
}

func (s *Service) GetEntryByID(ctx context.Context, entryID ulid.ULID) (*Entry, error) {
	entry, err := s.Repository.GetById(ctx, entryID)
	if err != nil {
		return nil, appErrors.ErrEntryNotFound.WithError(err)
	}
	return entry, nil
}

func (s *Service) ListEntries(ctx context.Context, filter *Filter, pagination *pkg.PaginationParams) ([]*Entry, int64, error) {
	return s.Repository.List(ctx, filter, pagination)
}

// signedAmount converte o lançamento no delta aplicável ao saldo: positivo
// para IN, negativo para OUT.
func signedAmount(entry *Entry) decimal.Decimal {
	if entry.Direction == DirectionOut {
		return entry.Amount.Neg()
	}
	return entry.Amount
}

type CreateEntryRequest struct {
	Description string
	Amount      decimal.Decimal
	Direction   Direction
	Category    string
	Reference   string
	AccountId   *ulid.ULID
}
