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

var paymentListOptions = listquery.Options{
	Filterable:       []string{"invoiceId", "method"},
	Sortable:         []string{"paidOn", "amount"},
	DefaultSort:      "paidOn",
	DefaultSortOrder: listquery.Desc,
}

type paymentService struct {
	store repository.SnapshotStore
}

// NewPaymentService creates the payment service.
func NewPaymentService(store repository.SnapshotStore) usecase.PaymentUsecase {
	return &paymentService{store: store}
}

func (s *paymentService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Payment], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.Payments, listquery.Parse(raw, paymentListOptions))
	return &res, nil
}

func (s *paymentService) GetByID(ctx context.Context, id string) (*entity.Payment, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findPayment(snap.Payments, id); idx >= 0 {
		pay := snap.Payments[idx]
		return &pay, nil
	}

	return nil, notFound("payment", id)
}

func (s *paymentService) Create(ctx context.Context, input *usecase.CreatePaymentInput) (*entity.Payment, error) {
	if err := validation.Struct("payment", input); err != nil {
		return nil, err
	}

	var created entity.Payment
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if findInvoice(snap.Invoices, input.InvoiceID) < 0 {
			return danglingReference("invoiceId", input.InvoiceID)
		}

		id, err := resolveID(input.ID, "pay", "payment", func(id string) bool {
			return findPayment(snap.Payments, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.Payment{
			ID:        id,
			InvoiceID: input.InvoiceID,
			Amount:    *input.Amount,
			PaidOn:    input.PaidOn,
			Method:    input.Method,
			Reference: trimPtr(input.Reference),
			Notes:     trimPtr(input.Notes),
		}
		snap.Payments = append(snap.Payments, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *paymentService) Update(ctx context.Context, id string, input *usecase.UpdatePaymentInput) (*entity.Payment, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("payment patch names no fields.", nil)
	}
	if err := validation.Struct("payment", input); err != nil {
		return nil, err
	}

	var updated entity.Payment
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findPayment(snap.Payments, id)
		if idx < 0 {
			return notFound("payment", id)
		}

		if input.InvoiceID != nil && findInvoice(snap.Invoices, *input.InvoiceID) < 0 {
			return danglingReference("invoiceId", *input.InvoiceID)
		}

		pay := &snap.Payments[idx]
		if input.InvoiceID != nil {
			pay.InvoiceID = *input.InvoiceID
		}
		if input.Amount != nil {
			pay.Amount = *input.Amount
		}
		if input.PaidOn != nil {
			pay.PaidOn = *input.PaidOn
		}
		if input.Method != nil {
			pay.Method = *input.Method
		}
		if input.Reference != nil {
			pay.Reference = trimPtr(input.Reference)
		}
		if input.Notes != nil {
			pay.Notes = trimPtr(input.Notes)
		}

		updated = *pay
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *paymentService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findPayment(snap.Payments, id)
		if idx < 0 {
			return notFound("payment", id)
		}

		snap.Payments = append(snap.Payments[:idx], snap.Payments[idx+1:]...)
		return nil
	})
}

func findPayment(payments []entity.Payment, id string) int {
	for i := range payments {
		if payments[i].ID == id {
			return i
		}
	}
	return -1
}
