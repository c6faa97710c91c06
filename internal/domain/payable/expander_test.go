package payable_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/domain/payable"
	appErrors "github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/errors"
	"github.com/GuiGebaili78/Centro-Automotivo-Basico-sub002/internal/pkg"
)

func templateBill(dueDate time.Time) *payable.Bill {
	return &payable.Bill{
		Id:               pkg.GenerateULIDObject(),
		Description:      "Aluguel do galpão",
		Amount:           decimal.RequireFromString("150.00"),
		DueDate:          dueDate,
		Status:           payable.StatusPending,
		Category:         "Instalações",
		Creditor:         "Imobiliária Silva",
		InstallmentIndex: 1,
		InstallmentTotal: 1,
	}
}

func TestExpandWithoutRepeat(t *testing.T) {
	t.Parallel()

	template := templateBill(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	bills, err := payable.Expand(template, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bills) != 1 {
		t.Fatalf("expected single bill, got %d", len(bills))
	}
	if bills[0].GroupId != nil {
		t.Fatal("single bill must not belong to a group")
	}
	if bills[0].InstallmentIndex != 1 || bills[0].InstallmentTotal != 1 {
		t.Fatalf("installments = %d/%d, want 1/1", bills[0].InstallmentIndex, bills[0].InstallmentTotal)
	}
}

func TestExpandMonthlySeries(t *testing.T) {
	t.Parallel()

	template := templateBill(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	bills, err := payable.Expand(template, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(bills) != 3 {
		t.Fatalf("expected 3 bills, got %d", len(bills))
	}

	wantDates := []time.Time{
		time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
	}

	groupID := bills[0].GroupId
	if groupID == nil {
		t.Fatal("series must receive a group id")
	}

	for i, bill := range bills {
		if !bill.DueDate.Equal(wantDates[i]) {
			t.Fatalf("bill %d due date = %v, want %v", i+1, bill.DueDate, wantDates[i])
		}
		if bill.GroupId == nil || *bill.GroupId != *groupID {
			t.Fatalf("bill %d must share the series group", i+1)
		}
		if bill.InstallmentIndex != i+1 || bill.InstallmentTotal != 3 {
			t.Fatalf("bill %d installments = %d/%d", i+1, bill.InstallmentIndex, bill.InstallmentTotal)
		}
		if !bill.Amount.Equal(template.Amount) {
			t.Fatalf("bill %d amount = %s", i+1, bill.Amount)
		}
		if bill.Description != template.Description || bill.Creditor != template.Creditor {
			t.Fatalf("bill %d should inherit description and creditor", i+1)
		}
	}

	for _, sibling := range bills[1:] {
		if sibling.Status != payable.StatusPending {
			t.Fatalf("sibling status = %s, want PENDING", sibling.Status)
		}
		if sibling.PaymentDate != nil {
			t.Fatal("sibling must not carry a payment date")
		}
		if sibling.Id == template.Id {
			t.Fatal("sibling must receive a fresh id")
		}
	}
}

func TestExpandClampsMonthEnd(t *testing.T) {
	t.Parallel()

	template := templateBill(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC))
	bills, err := payable.Expand(template, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDates := []time.Time{
		time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC),
	}
	for i, bill := range bills {
		if !bill.DueDate.Equal(wantDates[i]) {
			t.Fatalf("bill %d due date = %v, want %v", i+1, bill.DueDate, wantDates[i])
		}
	}
}

func TestExpandNegativeRepeat(t *testing.T) {
	t.Parallel()

	template := templateBill(time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC))
	_, err := payable.Expand(template, -1)
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
