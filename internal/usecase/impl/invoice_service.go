package impl

import (
	"context"
	"net/url"
	"strings"

	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/domain/listquery"
	"hvacops/internal/domain/repository"
	"hvacops/internal/errors"
	"hvacops/internal/usecase"
	"hvacops/internal/validation"
)

var invoiceListOptions = listquery.Options{
	Filterable:  []string{"finalQuoteId", "paid"},
	Sortable:    []string{"dueDate", "amountDue", "paid"},
	DefaultSort: "dueDate",
}

type invoiceService struct {
	store repository.SnapshotStore
}

// NewInvoiceService creates the invoice service.
func NewInvoiceService(store repository.SnapshotStore) usecase.InvoiceUsecase {
	return &invoiceService{store: store}
}

func (s *invoiceService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Invoice], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.Invoices, listquery.Parse(raw, invoiceListOptions))
	return &res, nil
}

func (s *invoiceService) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findInvoice(snap.Invoices, id); idx >= 0 {
		inv := snap.Invoices[idx]
		return &inv, nil
	}

	return nil, notFound("invoice", id)
}

func (s *invoiceService) Create(ctx context.Context, input *usecase.CreateInvoiceInput) (*entity.Invoice, error) {
	if err := validation.Struct("invoice", input); err != nil {
		return nil, err
	}

	paymentRef := trimPtr(input.PaymentRef)
	if err := checkPaymentRef(*input.Paid, paymentRef); err != nil {
		return nil, err
	}

	var created entity.Invoice
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if findFinalQuote(snap.FinalQuotes, input.FinalQuoteID) < 0 {
			return danglingReference("finalQuoteId", input.FinalQuoteID)
		}

		id, err := resolveID(input.ID, "inv", "invoice", func(id string) bool {
			return findInvoice(snap.Invoices, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.Invoice{
			ID:           id,
			FinalQuoteID: input.FinalQuoteID,
			AmountDue:    *input.AmountDue,
			CreatedOn:    input.CreatedOn,
			DueDate:      input.DueDate,
			Paid:         *input.Paid,
			PaymentRef:   paymentRef,
		}
		snap.Invoices = append(snap.Invoices, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *invoiceService) Update(ctx context.Context, id string, input *usecase.UpdateInvoiceInput) (*entity.Invoice, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("invoice patch names no fields.", nil)
	}
	if err := validation.Struct("invoice", input); err != nil {
		return nil, err
	}

	var updated entity.Invoice
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findInvoice(snap.Invoices, id)
		if idx < 0 {
			return notFound("invoice", id)
		}

		if input.FinalQuoteID != nil && findFinalQuote(snap.FinalQuotes, *input.FinalQuoteID) < 0 {
			return danglingReference("finalQuoteId", *input.FinalQuoteID)
		}

		// Merge first so the paid/paymentRef invariant sees the record as it
		// would be persisted.
		next := snap.Invoices[idx]
		if input.FinalQuoteID != nil {
			next.FinalQuoteID = *input.FinalQuoteID
		}
		if input.AmountDue != nil {
			next.AmountDue = *input.AmountDue
		}
		if input.CreatedOn != nil {
			next.CreatedOn = *input.CreatedOn
		}
		if input.DueDate != nil {
			next.DueDate = *input.DueDate
		}
		if input.Paid != nil {
			next.Paid = *input.Paid
		}
		if input.PaymentRef != nil {
			next.PaymentRef = trimPtr(input.PaymentRef)
		}

		if err := checkPaymentRef(next.Paid, next.PaymentRef); err != nil {
			return err
		}

		snap.Invoices[idx] = next
		updated = next
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *invoiceService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findInvoice(snap.Invoices, id)
		if idx < 0 {
			return notFound("invoice", id)
		}

		var dependents []string
		for i := range snap.Payments {
			if snap.Payments[i].InvoiceID == id {
				dependents = append(dependents, snap.Payments[i].ID)
			}
		}
		if len(dependents) > 0 {
			return blockedDelete("invoice", id, dependents)
		}

		snap.Invoices = append(snap.Invoices[:idx], snap.Invoices[idx+1:]...)
		return nil
	})
}

func (s *invoiceService) ListPayments(ctx context.Context, invoiceID string, raw url.Values) (*listquery.Result[entity.Payment], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	if findInvoice(snap.Invoices, invoiceID) < 0 {
		return nil, notFound("invoice", invoiceID)
	}

	q := listquery.Parse(withFilter(raw, "invoiceId", invoiceID), paymentListOptions)
	res := listquery.Apply(snap.Payments, q)
	return &res, nil
}

func findInvoice(invoices []entity.Invoice, id string) int {
	for i := range invoices {
		if invoices[i].ID == id {
			return i
		}
	}
	return -1
}

// checkPaymentRef enforces that a paid invoice always carries a payment
// reference.
func checkPaymentRef(paid bool, paymentRef *string) error {
	if paid && (paymentRef == nil || strings.TrimSpace(*paymentRef) == "") {
		return domainerrors.NewValidationError(
			"a paid invoice requires a paymentRef.",
			[]string{"paymentRef"})
	}
	return nil
}
