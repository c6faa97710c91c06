package payable_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/account"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/cashledger"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/payable"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

type fakeTxManager struct{}

func (fakeTxManager) Do(ctx context.Context, fn func(tx interface{}) error) error {
	return fn(struct{}{})
}

type fakePayableRepository struct {
	createBatchFn     func(ctx context.Context, tx interface{}, bills []*payable.Bill) error
	updateWithTxFn    func(ctx context.Context, tx interface{}, bill *payable.Bill) error
	getByIDFn         func(ctx context.Context, id ulid.ULID) (*payable.Bill, error)
	getByGroupFn      func(ctx context.Context, groupID ulid.ULID) ([]*payable.Bill, error)
	softDeleteFn      func(ctx context.Context, tx interface{}, id ulid.ULID, deletedAt time.Time) error
	softDeleteGroupFn func(ctx context.Context, tx interface{}, groupID ulid.ULID, deletedAt time.Time) (int64, error)
	legacySeriesFn    func(ctx context.Context, description, creditor string) ([]*payable.Bill, error)
}

func (f *fakePayableRepository) CreateBatchWithTx(ctx context.Context, tx interface{}, bills []*payable.Bill) error {
	if f.createBatchFn != nil {
		return f.createBatchFn(ctx, tx, bills)
	}
	return nil
}

func (f *fakePayableRepository) Update(ctx context.Context, bill *payable.Bill) error { return nil }

func (f *fakePayableRepository) UpdateWithTx(ctx context.Context, tx interface{}, bill *payable.Bill) error {
	if f.updateWithTxFn != nil {
		return f.updateWithTxFn(ctx, tx, bill)
	}
	return nil
}

func (f *fakePayableRepository) GetById(ctx context.Context, id ulid.ULID) (*payable.Bill, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, errors.New("not found")
}

func (f *fakePayableRepository) GetActiveByGroupId(ctx context.Context, groupID ulid.ULID) ([]*payable.Bill, error) {
	if f.getByGroupFn != nil {
		return f.getByGroupFn(ctx, groupID)
	}
	return nil, nil
}

func (f *fakePayableRepository) List(ctx context.Context, filter *payable.Filter, pagination *pkg.PaginationParams) ([]*payable.Bill, int64, error) {
	return nil, 0, nil
}

func (f *fakePayableRepository) SoftDeleteWithTx(ctx context.Context, tx interface{}, id ulid.ULID, deletedAt time.Time) error {
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, tx, id, deletedAt)
	}
	return nil
}

func (f *fakePayableRepository) SoftDeleteGroupWithTx(ctx context.Context, tx interface{}, groupID ulid.ULID, deletedAt time.Time) (int64, error) {
	if f.softDeleteGroupFn != nil {
		return f.softDeleteGroupFn(ctx, tx, groupID, deletedAt)
	}
	return 0, nil
}

func (f *fakePayableRepository) FindLegacySeries(ctx context.Context, description, creditor string) ([]*payable.Bill, error) {
	if f.legacySeriesFn != nil {
		return f.legacySeriesFn(ctx, description, creditor)
	}
	return nil, nil
}

type fakeAccountRepository struct {
	getByIDFn       func(ctx context.Context, id ulid.ULID) (*account.Account, error)
	updateBalanceFn func(ctx context.Context, tx interface{}, id ulid.ULID, delta decimal.Decimal) error
}

func (f *fakeAccountRepository) Create(ctx context.Context, _ *account.Account) error { return nil }
func (f *fakeAccountRepository) Update(ctx context.Context, _ *account.Account) error { return nil }
func (f *fakeAccountRepository) GetById(ctx context.Context, id ulid.ULID) (*account.Account, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return &account.Account{Id: id, Name: "Caixa", IsActive: true}, nil
}
func (f *fakeAccountRepository) List(ctx context.Context, _ *pkg.PaginationParams) ([]*account.Account, int64, error) {
	return nil, 0, nil
}
func (f *fakeAccountRepository) UpdateBalanceWithTx(ctx context.Context, tx interface{}, id ulid.ULID, delta decimal.Decimal) error {
	if f.updateBalanceFn != nil {
		return f.updateBalanceFn(ctx, tx, id, delta)
	}
	return nil
}

type fakeLedgerRepository struct {
	createWithTxFn func(ctx context.Context, tx interface{}, entry *cashledger.Entry) error
	findActiveFn   func(ctx context.Context, tx interface{}, reference string, origin cashledger.Origin) ([]*cashledger.Entry, error)
	softDeleteFn   func(ctx context.Context, tx interface{}, id ulid.ULID, deletedAt time.Time) error
}

func (f *fakeLedgerRepository) Create(ctx context.Context, _ *cashledger.Entry) error { return nil }
func (f *fakeLedgerRepository) CreateWithTx(ctx context.Context, tx interface{}, entry *cashledger.Entry) error {
	if f.createWithTxFn != nil {
		return f.createWithTxFn(ctx, tx, entry)
	}
	return nil
}
func (f *fakeLedgerRepository) GetById(ctx context.Context, _ ulid.ULID) (*cashledger.Entry, error) {
	return nil, errors.New("not found")
}
func (f *fakeLedgerRepository) List(ctx context.Context, _ *cashledger.Filter, _ *pkg.PaginationParams) ([]*cashledger.Entry, int64, error) {
	return nil, 0, nil
}
func (f *fakeLedgerRepository) FindActiveByReferenceWithTx(ctx context.Context, tx interface{}, reference string, origin cashledger.Origin) ([]*cashledger.Entry, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx, tx, reference, origin)
	}
	return nil, nil
}
func (f *fakeLedgerRepository) SoftDeleteWithTx(ctx context.Context, tx interface{}, id ulid.ULID, deletedAt time.Time) error {
	if f.softDeleteFn != nil {
		return f.softDeleteFn(ctx, tx, id, deletedAt)
	}
	return nil
}
func (f *fakeLedgerRepository) SumByAccount(ctx context.Context, _ ulid.ULID) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

func money(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func newBillService(repo *fakePayableRepository, accountRepo *fakeAccountRepository, ledgerRepo *fakeLedgerRepository) *payable.Service {
	if accountRepo == nil {
		accountRepo = &fakeAccountRepository{}
	}
	if ledgerRepo == nil {
		ledgerRepo = &fakeLedgerRepository{}
	}
	return payable.NewService(repo, accountRepo, ledgerRepo, fakeTxManager{})
}

func repoWithBill(bill *payable.Bill) *fakePayableRepository {
	return &fakePayableRepository{
		getByIDFn: func(ctx context.Context, id ulid.ULID) (*payable.Bill, error) {
			clone := *bill
			return &clone, nil
		},
	}
}

func pendingBill() *payable.Bill {
	return &payable.Bill{
		Id:               ulid.Make(),
		Description:      "Energia elétrica",
		Amount:           money("420.50"),
		DueDate:          time.Date(2024, time.April, 15, 0, 0, 0, 0, time.UTC),
		Status:           payable.StatusPending,
		Category:         "Utilidades",
		Creditor:         "Enel",
		InstallmentIndex: 1,
		InstallmentTotal: 1,
	}
}

func TestCreateBillSeries(t *testing.T) {
	t.Parallel()

	var created []*payable.Bill
	ledgerCalls := 0
	repo := &fakePayableRepository{
		createBatchFn: func(ctx context.Context, tx interface{}, bills []*payable.Bill) error {
			created = bills
			return nil
		},
	}
	ledgerRepo := &fakeLedgerRepository{
		createWithTxFn: func(ctx context.Context, tx interface{}, entry *cashledger.Entry) error {
			ledgerCalls++
			return nil
		},
	}
	svc := newBillService(repo, nil, ledgerRepo)

	bills, err := svc.CreateBill(context.Background(), &payable.CreateBillRequest{
		Description: "Aluguel do galpão",
		Amount:      money("150.00"),
		DueDate:     time.Date(2024, time.January, 10, 14, 30, 0, 0, time.UTC),
		Repeat:      2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bills) != 3 || len(created) != 3 {
		t.Fatalf("expected 3 bills persisted, got %d returned and %d created", len(bills), len(created))
	}
	if ledgerCalls != 0 {
		t.Fatal("pending bill must not touch the ledger")
	}
	wantDue := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	if !bills[0].DueDate.Equal(wantDue) {
		t.Fatalf("due date = %v, want truncated %v", bills[0].DueDate, wantDue)
	}
}

func TestCreateBillPaidWritesLedgerAndDebits(t *testing.T) {
	t.Parallel()

	accountID := ulid.Make()
	paymentDate := time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC)

	var entry *cashledger.Entry
	ledgerRepo := &fakeLedgerRepository{
		createWithTxFn: func(ctx context.Context, tx interface{}, e *cashledger.Entry) error {
			entry = e
			return nil
		},
	}

	var balanceDelta *decimal.Decimal
	accountRepo := &fakeAccountRepository{
		updateBalanceFn: func(ctx context.Context, tx interface{}, id ulid.ULID, delta decimal.Decimal) error {
			if id != accountID {
				t.Errorf("debited wrong account %s", id)
			}
			balanceDelta = &delta
			return nil
		},
	}

	svc := newBillService(&fakePayableRepository{}, accountRepo, ledgerRepo)

	bills, err := svc.CreateBill(context.Background(), &payable.CreateBillRequest{
		Description: "Compra de peças",
		Amount:      money("89.90"),
		DueDate:     time.Date(2024, time.February, 5, 0, 0, 0, 0, time.UTC),
		Status:      payable.StatusPaid,
		PaymentDate: &paymentDate,
		AccountId:   &accountID,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	bill := bills[0]
	if bill.Status != payable.StatusPaid {
		t.Fatalf("status = %s, want PAID", bill.Status)
	}
	if bill.PaymentDate == nil || !bill.PaymentDate.Equal(paymentDate) {
		t.Fatalf("payment date = %v, want %v", bill.PaymentDate, paymentDate)
	}
	if entry == nil {
		t.Fatal("expected ledger entry for bill created as paid")
	}
	if entry.Direction != cashledger.DirectionOut {
		t.Fatalf("entry direction = %s, want OUT", entry.Direction)
	}
	if !entry.Amount.Equal(money("89.90")) {
		t.Fatalf("entry amount = %s, want 89.90", entry.Amount)
	}
	if entry.Reference != cashledger.BillReference(bill.Id) {
		t.Fatalf("entry reference = %s", entry.Reference)
	}
	if balanceDelta == nil || !balanceDelta.Equal(money("-89.90")) {
		t.Fatalf("balance delta = %v, want -89.90", balanceDelta)
	}
}

func TestCreateBillValidations(t *testing.T) {
	t.Parallel()

	paymentDate := time.Now()

	tests := []struct {
		name     string
		req      *payable.CreateBillRequest
		wantCode string
	}{
		{
			name:     "empty description",
			req:      &payable.CreateBillRequest{Description: "  ", Amount: money("10.00"), DueDate: time.Now()},
			wantCode: appErrors.ErrValidation.Code,
		},
		{
			name:     "non positive amount",
			req:      &payable.CreateBillRequest{Description: "Teste", Amount: money("0"), DueDate: time.Now()},
			wantCode: appErrors.ErrInvalidAmount.Code,
		},
		{
			name:     "more than two decimal places",
			req:      &payable.CreateBillRequest{Description: "Teste", Amount: money("10.005"), DueDate: time.Now()},
			wantCode: appErrors.ErrValidation.Code,
		},
		{
			name: "pending with payment date",
			req: &payable.CreateBillRequest{
				Description: "Teste",
				Amount:      money("10.00"),
				DueDate:     time.Now(),
				PaymentDate: &paymentDate,
			},
			wantCode: appErrors.ErrValidation.Code,
		},
		{
			name: "unknown status",
			req: &payable.CreateBillRequest{
				Description: "Teste",
				Amount:      money("10.00"),
				DueDate:     time.Now(),
				Status:      payable.Status("CANCELLED"),
			},
			wantCode: appErrors.ErrValidation.Code,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			svc := newBillService(&fakePayableRepository{}, nil, nil)
			_, err := svc.CreateBill(context.Background(), tt.req)
			if err == nil {
				t.Fatal("expected error")
			}
			appErr, ok := appErrors.AsAppError(err)
			if !ok {
				t.Fatalf("expected AppError, got %T", err)
			}
			if appErr.Code != tt.wantCode {
				t.Fatalf("code = %s, want %s", appErr.Code, tt.wantCode)
			}
		})
	}
}

func TestPayBill(t *testing.T) {
	t.Parallel()

	bill := pendingBill()
	accountID := ulid.Make()
	bill.AccountId = &accountID
	paymentDate := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)

	var updated *payable.Bill
	repo := repoWithBill(bill)
	repo.updateWithTxFn = func(ctx context.Context, tx interface{}, b *payable.Bill) error {
		updated = b
		return nil
	}

	var entry *cashledger.Entry
	ledgerRepo := &fakeLedgerRepository{
		createWithTxFn: func(ctx context.Context, tx interface{}, e *cashledger.Entry) error {
			entry = e
			return nil
		},
	}

	var balanceDelta *decimal.Decimal
	accountRepo := &fakeAccountRepository{
		updateBalanceFn: func(ctx context.Context, tx interface{}, id ulid.ULID, delta decimal.Decimal) error {
			balanceDelta = &delta
			return nil
		},
	}

	svc := newBillService(repo, accountRepo, ledgerRepo)

	paid, err := svc.PayBill(context.Background(), bill.Id, &payable.PayBillRequest{PaymentDate: &paymentDate})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if paid.Status != payable.StatusPaid {
		t.Fatalf("status = %s, want PAID", paid.Status)
	}
	if paid.PaymentDate == nil || !paid.PaymentDate.Equal(paymentDate) {
		t.Fatalf("payment date = %v, want %v", paid.PaymentDate, paymentDate)
	}
	if updated == nil || updated.Status != payable.StatusPaid {
		t.Fatal("expected bill persisted as PAID")
	}
	if entry == nil || entry.Direction != cashledger.DirectionOut {
		t.Fatal("expected OUT ledger entry")
	}
	if !entry.Amount.Equal(bill.Amount) {
		t.Fatalf("entry amount = %s, want %s", entry.Amount, bill.Amount)
	}
	if balanceDelta == nil || !balanceDelta.Equal(bill.Amount.Neg()) {
		t.Fatalf("balance delta = %v, want %s", balanceDelta, bill.Amount.Neg())
	}
}

func TestPayBillTwiceFails(t *testing.T) {
	t.Parallel()

	bill := pendingBill()
	bill.Status = payable.StatusPaid
	now := time.Now()
	bill.PaymentDate = &now

	balanceCalls := 0
	accountRepo := &fakeAccountRepository{
		updateBalanceFn: func(ctx context.Context, tx interface{}, id ulid.ULID, delta decimal.Decimal) error {
			balanceCalls++
			return nil
		},
	}

	svc := newBillService(repoWithBill(bill), accountRepo, nil)

	_, err := svc.PayBill(context.Background(), bill.Id, &payable.PayBillRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrValidation.Code {
		t.Fatalf("code = %s, want %s", appErr.Code, appErrors.ErrValidation.Code)
	}
	if balanceCalls != 0 {
		t.Fatal("paying a paid bill must not touch balance")
	}
}

func TestReversePayment(t *testing.T) {
	t.Parallel()

	bill := pendingBill()
	bill.Status = payable.StatusPaid
	paymentDate := time.Date(2024, time.April, 20, 0, 0, 0, 0, time.UTC)
	bill.PaymentDate = &paymentDate

	accountID := ulid.Make()
	entryID := ulid.Make()

	var updated *payable.Bill
	repo := repoWithBill(bill)
	repo.updateWithTxFn = func(ctx context.Context, tx interface{}, b *payable.Bill) error {
		updated = b
		return nil
	}

	var deleted []ulid.ULID
	ledgerRepo := &fakeLedgerRepository{
		findActiveFn: func(ctx context.Context, tx interface{}, reference string, origin cashledger.Origin) ([]*cashledger.Entry, error) {
			if reference != cashledger.BillReference(bill.Id) {
				t.Errorf("lookup by reference %s", reference)
			}
			return []*cashledger.Entry{{
				Id:        entryID,
				Amount:    bill.Amount,
				Direction: cashledger.DirectionOut,
				AccountId: &accountID,
			}}, nil
		},
		softDeleteFn: func(ctx context.Context, tx interface{}, id ulid.ULID, deletedAt time.Time) error {
			deleted = append(deleted, id)
			return nil
		},
	}

	var balanceDelta *decimal.Decimal
	accountRepo := &fakeAccountRepository{
		updateBalanceFn: func(ctx context.Context, tx interface{}, id ulid.ULID, delta decimal.Decimal) error {
			if id != accountID {
				t.Errorf("credited wrong account %s", id)
			}
			balanceDelta = &delta
			return nil
		},
	}

	svc := newBillService(repo, accountRepo, ledgerRepo)

	reversed, err := svc.ReversePayment(context.Background(), bill.Id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reversed.Status != payable.StatusPending {
		t.Fatalf("status = %s, want PENDING", reversed.Status)
	}
	if reversed.PaymentDate != nil {
		t.Fatal("payment date should be cleared")
	}
	if updated == nil || updated.Status != payable.StatusPending {
		t.Fatal("expected bill persisted as PENDING")
	}
	if len(deleted) != 1 || deleted[0] != entryID {
		t.Fatalf("soft deleted = %v, want [%s]", deleted, entryID)
	}
	if balanceDelta == nil || !balanceDelta.Equal(bill.Amount) {
		t.Fatalf("balance delta = %v, want %s back", balanceDelta, bill.Amount)
	}
}

func TestReversePaymentOnPendingFails(t *testing.T) {
	t.Parallel()

	svc := newBillService(repoWithBill(pendingBill()), nil, nil)

	_, err := svc.ReversePayment(context.Background(), ulid.Make())
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrValidation.Code {
		t.Fatalf("code = %s, want %s", appErr.Code, appErrors.ErrValidation.Code)
	}
}

func seriesBill(groupID ulid.ULID, index int, dueDate time.Time) *payable.Bill {
	return &payable.Bill{
		Id:               ulid.Make(),
		Description:      "Financiamento do elevador",
		Amount:           money("890.00"),
		DueDate:          dueDate,
		Status:           payable.StatusPending,
		Creditor:         "Banco do Brasil",
		GroupId:          &groupID,
		InstallmentIndex: index,
		InstallmentTotal: 3,
	}
}

func TestUpdateBillPropagateShiftsSiblings(t *testing.T) {
	t.Parallel()

	groupID := ulid.Make()
	first := seriesBill(groupID, 1, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))
	second := seriesBill(groupID, 2, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))
	third := seriesBill(groupID, 3, time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC))

	updates := map[int]*payable.Bill{}
	repo := repoWithBill(first)
	repo.getByGroupFn = func(ctx context.Context, id ulid.ULID) ([]*payable.Bill, error) {
		if id != groupID {
			t.Errorf("lookup by group %s", id)
		}
		return []*payable.Bill{first, second, third}, nil
	}
	repo.updateWithTxFn = func(ctx context.Context, tx interface{}, b *payable.Bill) error {
		updates[b.InstallmentIndex] = b
		return nil
	}

	svc := newBillService(repo, nil, nil)

	// vencimento adiado em 5 dias; irmãs andam pelo mesmo delta
	newDue := time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)
	newDescription := "Financiamento do elevador hidráulico"
	newAmount := money("900.00")
	err := svc.UpdateBill(context.Background(), first.Id, true, &payable.UpdateBillRequest{
		DueDate:     &newDue,
		Description: &newDescription,
		Amount:      &newAmount,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(updates) != 3 {
		t.Fatalf("expected 3 bills updated, got %d", len(updates))
	}
	if !updates[1].DueDate.Equal(newDue) {
		t.Fatalf("edited bill due date = %v, want %v", updates[1].DueDate, newDue)
	}
	if !updates[2].DueDate.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("second sibling due date = %v", updates[2].DueDate)
	}
	if !updates[3].DueDate.Equal(time.Date(2024, time.July, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("third sibling due date = %v", updates[3].DueDate)
	}

	for index := 2; index <= 3; index++ {
		if updates[index].Description != newDescription {
			t.Fatalf("sibling %d description not propagated", index)
		}
		if !updates[index].Amount.Equal(money("890.00")) {
			t.Fatalf("sibling %d amount changed to %s", index, updates[index].Amount)
		}
	}
	if !updates[1].Amount.Equal(newAmount) {
		t.Fatalf("edited bill amount = %s, want %s", updates[1].Amount, newAmount)
	}
}

func TestUpdateBillPropagateKeepsDeltaAcrossTimezones(t *testing.T) {
	t.Parallel()

	groupID := ulid.Make()
	first := seriesBill(groupID, 1, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))
	second := seriesBill(groupID, 2, time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC))

	updates := map[int]*payable.Bill{}
	repo := repoWithBill(first)
	repo.getByGroupFn = func(ctx context.Context, id ulid.ULID) ([]*payable.Bill, error) {
		return []*payable.Bill{first, second}, nil
	}
	repo.updateWithTxFn = func(ctx context.Context, tx interface{}, b *payable.Bill) error {
		updates[b.InstallmentIndex] = b
		return nil
	}

	svc := newBillService(repo, nil, nil)

	// mesma data de calendário enviada em outro fuso: o delta continua sendo
	// 5 dias inteiros para a editada e para a irmã
	tokyo := time.FixedZone("UTC+9", 9*60*60)
	newDue := time.Date(2024, time.May, 15, 0, 0, 0, 0, tokyo)
	err := svc.UpdateBill(context.Background(), first.Id, true, &payable.UpdateBillRequest{
		DueDate: &newDue,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(updates) != 2 {
		t.Fatalf("expected 2 bills updated, got %d", len(updates))
	}
	if !updates[1].DueDate.Equal(time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("edited bill due date = %v, want 2024-05-15 UTC", updates[1].DueDate)
	}
	if !updates[2].DueDate.Equal(time.Date(2024, time.June, 15, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("sibling due date = %v, want 2024-06-15 UTC", updates[2].DueDate)
	}
}

func TestUpdateBillRejectsFractionalCents(t *testing.T) {
	t.Parallel()

	bill := pendingBill()
	svc := newBillService(repoWithBill(bill), nil, nil)

	badAmount := money("10.005")
	err := svc.UpdateBill(context.Background(), bill.Id, false, &payable.UpdateBillRequest{
		Amount: &badAmount,
	})
	if err == nil {
		t.Fatal("expected error")
	}
	appErr, ok := appErrors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Code != appErrors.ErrValidation.Code {
		t.Fatalf("code = %s, want %s", appErr.Code, appErrors.ErrValidation.Code)
	}
}

func TestUpdateBillPropagateLegacySeries(t *testing.T) {
	t.Parallel()

	first := pendingBill()
	first.Notes = "Parcelamento do compressor (1/3)"
	first.DueDate = time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC)

	second := pendingBill()
	second.Notes = "Parcelamento do compressor (2/3)"
	second.DueDate = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

	unrelated := pendingBill()
	unrelated.Notes = "Parcelamento do compressor (2/2)"

	var updatedIDs []ulid.ULID
	repo := repoWithBill(first)
	repo.legacySeriesFn = func(ctx context.Context, description, creditor string) ([]*payable.Bill, error) {
		return []*payable.Bill{first, second, unrelated}, nil
	}
	repo.updateWithTxFn = func(ctx context.Context, tx interface{}, b *payable.Bill) error {
		updatedIDs = append(updatedIDs, b.Id)
		return nil
	}

	svc := newBillService(repo, nil, nil)

	newDue := time.Date(2024, time.May, 12, 0, 0, 0, 0, time.UTC)
	err := svc.UpdateBill(context.Background(), first.Id, true, &payable.UpdateBillRequest{DueDate: &newDue})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(updatedIDs) != 2 {
		t.Fatalf("expected edited bill plus one legacy sibling, got %d updates", len(updatedIDs))
	}
	if !second.DueDate.Equal(time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("legacy sibling due date = %v", second.DueDate)
	}
}

func TestDeleteBillPropagateGroup(t *testing.T) {
	t.Parallel()

	groupID := ulid.Make()
	bill := seriesBill(groupID, 1, time.Date(2024, time.May, 10, 0, 0, 0, 0, time.UTC))

	groupDeletes := 0
	singleDeletes := 0
	repo := repoWithBill(bill)
	repo.softDeleteGroupFn = func(ctx context.Context, tx interface{}, id ulid.ULID, deletedAt time.Time) (int64, error) {
		if id != groupID {
			t.Errorf("deleted wrong group %s", id)
		}
		groupDeletes++
		return 3, nil
	}
	repo.softDeleteFn = func(ctx context.Context, tx interface{}, id ulid.ULID, deletedAt time.Time) error {
		singleDeletes++
		return nil
	}

	svc := newBillService(repo, nil, nil)

	if err := svc.DeleteBill(context.Background(), bill.Id, true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if groupDeletes != 1 || singleDeletes != 0 {
		t.Fatalf("group deletes = %d, single deletes = %d", groupDeletes, singleDeletes)
	}

	if err := svc.DeleteBill(context.Background(), bill.Id, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if singleDeletes != 1 {
		t.Fatalf("single deletes = %d, want 1", singleDeletes)
	}
}
