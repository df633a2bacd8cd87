package impl

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/domain/listquery"
	"hvacops/internal/domain/repository"
	"hvacops/internal/errors"
	"hvacops/internal/usecase"
	"hvacops/internal/validation"
)

var finalQuoteListOptions = listquery.Options{
	Filterable:  []string{"quoteRequestId", "status"},
	Sortable:    []string{"status", "finalTotal", "expiresOn"},
	DefaultSort: "expiresOn",
}

type finalQuoteService struct {
	store repository.SnapshotStore
}

// NewFinalQuoteService creates the final quote service.
func NewFinalQuoteService(store repository.SnapshotStore) usecase.FinalQuoteUsecase {
	return &finalQuoteService{store: store}
}

func (s *finalQuoteService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.FinalQuote], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.FinalQuotes, listquery.Parse(raw, finalQuoteListOptions))
	return &res, nil
}

func (s *finalQuoteService) GetByID(ctx context.Context, id string) (*entity.FinalQuote, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findFinalQuote(snap.FinalQuotes, id); idx >= 0 {
		fq := snap.FinalQuotes[idx]
		return &fq, nil
	}

	return nil, notFound("final quote", id)
}

func (s *finalQuoteService) Create(ctx context.Context, input *usecase.CreateFinalQuoteInput) (*entity.FinalQuote, error) {
	if err := validation.Struct("final quote", input); err != nil {
		return nil, err
	}
	if err := checkQuoteTotals(*input.BaseEstimate, *input.AdjustmentsTotal, *input.FinalTotal); err != nil {
		return nil, err
	}

	var created entity.FinalQuote
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if findQuoteRequest(snap.QuoteRequests, input.QuoteRequestID) < 0 {
			return danglingReference("quoteRequestId", input.QuoteRequestID)
		}

		id, err := resolveID(input.ID, "fq", "final quote", func(id string) bool {
			return findFinalQuote(snap.FinalQuotes, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.FinalQuote{
			ID:               id,
			QuoteRequestID:   input.QuoteRequestID,
			BaseEstimate:     *input.BaseEstimate,
			AdjustmentsTotal: *input.AdjustmentsTotal,
			FinalTotal:       *input.FinalTotal,
			ExpiresOn:        input.ExpiresOn,
			Status:           input.Status,
		}
		snap.FinalQuotes = append(snap.FinalQuotes, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *finalQuoteService) Update(ctx context.Context, id string, input *usecase.UpdateFinalQuoteInput) (*entity.FinalQuote, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("final quote patch names no fields.", nil)
	}
	if err := validation.Struct("final quote", input); err != nil {
		return nil, err
	}

	var updated entity.FinalQuote
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findFinalQuote(snap.FinalQuotes, id)
		if idx < 0 {
			return notFound("final quote", id)
		}

		if input.QuoteRequestID != nil && findQuoteRequest(snap.QuoteRequests, *input.QuoteRequestID) < 0 {
			return danglingReference("quoteRequestId", *input.QuoteRequestID)
		}

		// The totals invariant is checked against the merged record so a
		// partial patch cannot sneak a final total below the components.
		next := snap.FinalQuotes[idx]
		if input.QuoteRequestID != nil {
			next.QuoteRequestID = *input.QuoteRequestID
		}
		if input.BaseEstimate != nil {
			next.BaseEstimate = *input.BaseEstimate
		}
		if input.AdjustmentsTotal != nil {
			next.AdjustmentsTotal = *input.AdjustmentsTotal
		}
		if input.FinalTotal != nil {
			next.FinalTotal = *input.FinalTotal
		}
		if input.ExpiresOn != nil {
			next.ExpiresOn = *input.ExpiresOn
		}
		if input.Status != nil {
			next.Status = *input.Status
		}

		if err := checkQuoteTotals(next.BaseEstimate, next.AdjustmentsTotal, next.FinalTotal); err != nil {
			return err
		}

		snap.FinalQuotes[idx] = next
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *finalQuoteService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findFinalQuote(snap.FinalQuotes, id)
		if idx < 0 {
			return notFound("final quote", id)
		}

		var dependents []string
		for i := range snap.Invoices {
			if snap.Invoices[i].FinalQuoteID == id {
				dependents = append(dependents, snap.Invoices[i].ID)
			}
		}
		for i := range snap.PartsOrders {
			if snap.PartsOrders[i].FinalQuoteID == id {
				dependents = append(dependents, snap.PartsOrders[i].ID)
			}
		}
		if len(dependents) > 0 {
			return blockedDelete("final quote", id, dependents)
		}

		snap.FinalQuotes = append(snap.FinalQuotes[:idx], snap.FinalQuotes[idx+1:]...)
		return nil
	})
}

func (s *finalQuoteService) ListInvoices(ctx context.Context, finalQuoteID string, raw url.Values) (*listquery.Result[entity.Invoice], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	if findFinalQuote(snap.FinalQuotes, finalQuoteID) < 0 {
		return nil, notFound("final quote", finalQuoteID)
	}

	q := listquery.Parse(withFilter(raw, "finalQuoteId", finalQuoteID), invoiceListOptions)
	res := listquery.Apply(snap.Invoices, q)
	return &res, nil
}

func (s *finalQuoteService) ListPartsOrders(ctx context.Context, finalQuoteID string, raw url.Values) (*listquery.Result[entity.PartsOrder], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	if findFinalQuote(snap.FinalQuotes, finalQuoteID) < 0 {
		return nil, notFound("final quote", finalQuoteID)
	}

	q := listquery.Parse(withFilter(raw, "finalQuoteId", finalQuoteID), partsOrderListOptions)
	res := listquery.Apply(snap.PartsOrders, q)
	return &res, nil
}

func findFinalQuote(quotes []entity.FinalQuote, id string) int {
	for i := range quotes {
		if quotes[i].ID == id {
			return i
		}
	}
	return -1
}

// checkQuoteTotals enforces that the final total covers the base estimate
// plus the adjustments.
func checkQuoteTotals(base, adjustments, final float64) error {
	if final < base+adjustments {
		return domainerrors.NewValidationError(
			"finalTotal must be at least baseEstimate plus adjustmentsTotal.",
			map[string]float64{
				"baseEstimate":     base,
				"adjustmentsTotal": adjustments,
				"finalTotal":       final,
			})
	}
	return nil
}
