package impl

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"hvacops/internal/domain/entity"
	"hvacops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFinalQuoteService_TotalsInvariant(t *testing.T) {
	store := newStore(t)
	svc := NewFinalQuoteService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)

	// 100 + 20 > 100: the final total does not cover the components.
	_, err := svc.Create(ctx, &usecase.CreateFinalQuoteInput{
		QuoteRequestID:   qr.ID,
		BaseEstimate:     f64Ptr(100),
		AdjustmentsTotal: f64Ptr(20),
		FinalTotal:       f64Ptr(100),
		ExpiresOn:        "2026-10-01",
		Status:           entity.FinalQuoteStatusDraft,
	})
	requireValidation(t, err)

	created, err := svc.Create(ctx, &usecase.CreateFinalQuoteInput{
		QuoteRequestID:   qr.ID,
		BaseEstimate:     f64Ptr(100),
		AdjustmentsTotal: f64Ptr(20),
		FinalTotal:       f64Ptr(120),
		ExpiresOn:        "2026-10-01",
		Status:           entity.FinalQuoteStatusDraft,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "fq-"))

	// A patch is checked against the merged record: raising the base alone
	// would break the invariant.
	_, err = svc.Update(ctx, created.ID, &usecase.UpdateFinalQuoteInput{
		BaseEstimate: f64Ptr(150),
	})
	requireValidation(t, err)

	updated, err := svc.Update(ctx, created.ID, &usecase.UpdateFinalQuoteInput{
		BaseEstimate: f64Ptr(150),
		FinalTotal:   f64Ptr(170),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(170), updated.FinalTotal)
}

func TestFinalQuoteService_DanglingQuoteRequest(t *testing.T) {
	store := newStore(t)
	svc := NewFinalQuoteService(store)

	_, err := svc.Create(context.Background(), &usecase.CreateFinalQuoteInput{
		QuoteRequestID:   "qr-missing",
		BaseEstimate:     f64Ptr(100),
		AdjustmentsTotal: f64Ptr(0),
		FinalTotal:       f64Ptr(100),
		ExpiresOn:        "2026-10-01",
		Status:           entity.FinalQuoteStatusDraft,
	})
	requireValidation(t, err)
}

func TestFinalQuoteService_DeleteBlockedByInvoice(t *testing.T) {
	store := newStore(t)
	svc := NewFinalQuoteService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)
	fq := seedFinalQuote(t, store, qr.ID)
	inv := seedInvoice(t, store, fq.ID)

	requireValidation(t, svc.Delete(ctx, fq.ID))

	got, err := svc.GetByID(ctx, fq.ID)
	require.NoError(t, err)
	assert.Equal(t, fq.ID, got.ID)

	require.NoError(t, NewInvoiceService(store).Delete(ctx, inv.ID))
	require.NoError(t, svc.Delete(ctx, fq.ID))
}

func TestFinalQuoteService_NestedInvoiceListing(t *testing.T) {
	store := newStore(t)
	svc := NewFinalQuoteService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)
	fq := seedFinalQuote(t, store, qr.ID)
	other := seedFinalQuote(t, store, qr.ID)

	seedInvoice(t, store, fq.ID)
	seedInvoice(t, store, fq.ID)
	seedInvoice(t, store, other.ID)

	res, err := svc.ListInvoices(ctx, fq.ID, url.Values{})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	for _, inv := range res.Items {
		assert.Equal(t, fq.ID, inv.FinalQuoteID)
	}

	_, err = svc.ListInvoices(ctx, "fq-missing", url.Values{})
	requireNotFound(t, err)
}
