package impl

import (
	"context"
	"testing"

	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/domain/repository"
	"hvacops/internal/infra/persistence/docstore"
	"hvacops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newStore(t *testing.T) repository.SnapshotStore {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return docstore.New(bucket, "")
}

func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }
func intPtr(v int) *int         { return &v }
func boolPtr(v bool) *bool      { return &v }

func requireValidation(t *testing.T, err error) *domainerrors.ValidationError {
	t.Helper()

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, domainerrors.KindValidation, vErr.Kind())
	return vErr
}

func requireNotFound(t *testing.T, err error) {
	t.Helper()

	var nfErr *domainerrors.NotFoundError
	require.ErrorAs(t, err, &nfErr)
	assert.Equal(t, domainerrors.KindNotFound, nfErr.Kind())
}

func seedQuoteRequest(t *testing.T, store repository.SnapshotStore) *entity.QuoteRequest {
	t.Helper()

	qr, err := NewQuoteRequestService(store).Create(context.Background(), &usecase.CreateQuoteRequestInput{
		CustomerName:  "Pat Winters",
		ContactPhone:  "555-0101",
		Email:         "pat@example.com",
		Address:       "89 Furnace Rd",
		ServiceType:   "furnace-repair",
		RequestedDate: "2026-09-15",
	})
	require.NoError(t, err)
	return qr
}

func seedFinalQuote(t *testing.T, store repository.SnapshotStore, quoteRequestID string) *entity.FinalQuote {
	t.Helper()

	fq, err := NewFinalQuoteService(store).Create(context.Background(), &usecase.CreateFinalQuoteInput{
		QuoteRequestID:   quoteRequestID,
		BaseEstimate:     f64Ptr(100),
		AdjustmentsTotal: f64Ptr(20),
		FinalTotal:       f64Ptr(120),
		ExpiresOn:        "2026-10-01",
		Status:           entity.FinalQuoteStatusDraft,
	})
	require.NoError(t, err)
	return fq
}

func seedInvoice(t *testing.T, store repository.SnapshotStore, finalQuoteID string) *entity.Invoice {
	t.Helper()

	inv, err := NewInvoiceService(store).Create(context.Background(), &usecase.CreateInvoiceInput{
		FinalQuoteID: finalQuoteID,
		AmountDue:    f64Ptr(120),
		CreatedOn:    "2026-09-20",
		DueDate:      "2026-10-20",
		Paid:         boolPtr(false),
	})
	require.NoError(t, err)
	return inv
}
