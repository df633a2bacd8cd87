package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// InvoiceUsecase manages billing documents raised against final quotes.
// An invoice marked paid must always carry a payment reference.
type InvoiceUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Invoice], error)
	GetByID(ctx context.Context, id string) (*entity.Invoice, error)
	Create(ctx context.Context, input *CreateInvoiceInput) (*entity.Invoice, error)
	Update(ctx context.Context, id string, input *UpdateInvoiceInput) (*entity.Invoice, error)

	// Delete refuses to remove an invoice that still has payments
	// recorded against it.
	Delete(ctx context.Context, id string) error

	ListPayments(ctx context.Context, invoiceID string, raw url.Values) (*listquery.Result[entity.Payment], error)
}

type CreateInvoiceInput struct {
	ID           *string  `json:"id" validate:"omitempty,min=1"`
	FinalQuoteID string   `json:"finalQuoteId" validate:"required"`
	AmountDue    *float64 `json:"amountDue" validate:"required,gte=0"`
	CreatedOn    string   `json:"createdOn" validate:"required,isodate"`
	DueDate      string   `json:"dueDate" validate:"required,isodate"`
	Paid         *bool    `json:"paid" validate:"required"`
	PaymentRef   *string  `json:"paymentRef" validate:"omitempty,min=1"`
}

type UpdateInvoiceInput struct {
	FinalQuoteID *string  `json:"finalQuoteId" validate:"omitempty,min=1"`
	AmountDue    *float64 `json:"amountDue" validate:"omitempty,gte=0"`
	CreatedOn    *string  `json:"createdOn" validate:"omitempty,isodate"`
	DueDate      *string  `json:"dueDate" validate:"omitempty,isodate"`
	Paid         *bool    `json:"paid"`
	PaymentRef   *string  `json:"paymentRef" validate:"omitempty,min=1"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateInvoiceInput) Empty() bool {
	return in.FinalQuoteID == nil && in.AmountDue == nil && in.CreatedOn == nil &&
		in.DueDate == nil && in.Paid == nil && in.PaymentRef == nil
}
