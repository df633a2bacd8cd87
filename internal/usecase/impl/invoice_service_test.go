package impl

import (
	"context"
	"testing"

	"hvacops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvoiceService_PaidRequiresPaymentRef(t *testing.T) {
	store := newStore(t)
	svc := NewInvoiceService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)
	fq := seedFinalQuote(t, store, qr.ID)

	_, err := svc.Create(ctx, &usecase.CreateInvoiceInput{
		FinalQuoteID: fq.ID,
		AmountDue:    f64Ptr(120),
		CreatedOn:    "2026-09-20",
		DueDate:      "2026-10-20",
		Paid:         boolPtr(true),
	})
	requireValidation(t, err)

	created, err := svc.Create(ctx, &usecase.CreateInvoiceInput{
		FinalQuoteID: fq.ID,
		AmountDue:    f64Ptr(120),
		CreatedOn:    "2026-09-20",
		DueDate:      "2026-10-20",
		Paid:         boolPtr(true),
		PaymentRef:   strPtr("chk-1042"),
	})
	require.NoError(t, err)
	require.NotNil(t, created.PaymentRef)
	assert.Equal(t, "chk-1042", *created.PaymentRef)

	// Marking an unpaid invoice paid without a reference fails the same way.
	unpaid := seedInvoice(t, store, fq.ID)
	_, err = svc.Update(ctx, unpaid.ID, &usecase.UpdateInvoiceInput{
		Paid: boolPtr(true),
	})
	requireValidation(t, err)

	updated, err := svc.Update(ctx, unpaid.ID, &usecase.UpdateInvoiceInput{
		Paid:       boolPtr(true),
		PaymentRef: strPtr("chk-1043"),
	})
	require.NoError(t, err)
	assert.True(t, updated.Paid)
}

func TestInvoiceService_DeleteBlockedByPayments(t *testing.T) {
	store := newStore(t)
	svc := NewInvoiceService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)
	fq := seedFinalQuote(t, store, qr.ID)
	inv := seedInvoice(t, store, fq.ID)

	pay, err := NewPaymentService(store).Create(ctx, &usecase.CreatePaymentInput{
		InvoiceID: inv.ID,
		Amount:    f64Ptr(60),
		PaidOn:    "2026-09-25",
		Method:    "card",
	})
	require.NoError(t, err)

	requireValidation(t, svc.Delete(ctx, inv.ID))

	got, err := svc.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, inv.ID, got.ID)

	require.NoError(t, NewPaymentService(store).Delete(ctx, pay.ID))
	require.NoError(t, svc.Delete(ctx, inv.ID))
}

func TestPaymentService_DanglingInvoice(t *testing.T) {
	store := newStore(t)

	_, err := NewPaymentService(store).Create(context.Background(), &usecase.CreatePaymentInput{
		InvoiceID: "inv-missing",
		Amount:    f64Ptr(60),
		PaidOn:    "2026-09-25",
		Method:    "card",
	})
	requireValidation(t, err)
}
