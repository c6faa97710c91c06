package receivable

import (
	"context"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

// Confirm baixa um recebível: PENDING -> RECEIVED, credita o líquido na
// conta de destino e registra o lançamento AUTOMATIC no livro caixa, tudo em
// uma única transação. Confirmar duas vezes falha com ALREADY_SETTLED; a
// segunda baixa nunca credita de novo. Duas confirmações concorrentes são
// serializadas pelo UPDATE condicional de status.
func (s *Service) Confirm(ctx context.Context, receivableID ulid.ULID, actor string) (*Receivable, error) {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return nil, appErrors.NewValidationError("actor", "é obrigatório")
	}

	rec, err := s.GetReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, err
	}

	if rec.Status == StatusReceived {
		return nil, appErrors.ErrAlreadySettled
	}

	now := time.Now()
	err = s.Tx.Do(ctx, func(tx interface{}) error {
		rows, err := s.Repository.MarkReceivedWithTx(ctx, tx, receivableID, now, actor)
		if err != nil {
			return err
		}
		if rows == 0 {
			return appErrors.ErrAlreadySettled
		}

		if err := s.AccountRepo.UpdateBalanceWithTx(ctx, tx, rec.AccountId, rec.NetAmount); err != nil {
			return err
		}

		entry := &cashledger.Entry{
			Id:          pkg.GenerateULIDObject(),
			Description: settlementDescription(rec),
			Amount:      rec.NetAmount,
			Direction:   cashledger.DirectionIn,
			Category:    "Recebíveis de cartão",
			MovedAt:     now,
			Origin:      cashledger.OriginAutomatic,
			Reference:   cashledger.ReceivableReference(rec.Id),
			AccountId:   &rec.AccountId,
			CreatedAt:   now,
		}
		return s.LedgerRepo.CreateWithTx(ctx, tx, entry)
	})
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	rec.Status = StatusReceived
	rec.ConfirmedAt = &now
	rec.ConfirmedBy = actor
	rec.UpdatedAt = now

	return rec, nil
}

// Reverse desfaz a baixa: RECEIVED -> PENDING, debita o líquido e marca o
// lançamento correspondente como excluído (o registro fica no livro para
// auditoria; nada é recriado). Estornar um recebível pendente falha com
// NOT_SETTLED, então o estorno nunca debita em duplicidade.
func (s *Service) Reverse(ctx context.Context, receivableID ulid.ULID) (*Receivable, error) {
	rec, err := s.GetReceivableByID(ctx, receivableID)
	if err != nil {
		return nil, err
	}

	if rec.Status == StatusPending {
		return nil, appErrors.ErrNotSettled
	}

	now := time.Now()
	err = s.Tx.Do(ctx, func(tx interface{}) error {
		rows, err := s.Repository.MarkPendingWithTx(ctx, tx, receivableID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return appErrors.ErrNotSettled
		}

		if err := s.AccountRepo.UpdateBalanceWithTx(ctx, tx, rec.AccountId, rec.NetAmount.Neg()); err != nil {
			return err
		}

		reference := cashledger.ReceivableReference(rec.Id)
		entries, err := s.LedgerRepo.FindActiveByReferenceWithTx(ctx, tx, reference, cashledger.OriginAutomatic)
		if err != nil {
			return err
		}
		for _, entry := range entries {
			if err := s.LedgerRepo.SoftDeleteWithTx(ctx, tx, entry.Id, now); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if appErr, ok := appErrors.AsAppError(err); ok {
			return nil, appErr
		}
		return nil, appErrors.NewDatabaseError(err)
	}

	rec.Status = StatusPending
	rec.ConfirmedAt = nil
	rec.ConfirmedBy = ""
	rec.UpdatedAt = now

	return rec, nil
}
