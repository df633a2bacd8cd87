package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// PaymentUsecase records money received against invoices.
type PaymentUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Payment], error)
	GetByID(ctx context.Context, id string) (*entity.Payment, error)
	Create(ctx context.Context, input *CreatePaymentInput) (*entity.Payment, error)
	Update(ctx context.Context, id string, input *UpdatePaymentInput) (*entity.Payment, error)
	Delete(ctx context.Context, id string) error
}

type CreatePaymentInput struct {
	ID        *string  `json:"id" validate:"omitempty,min=1"`
	InvoiceID string   `json:"invoiceId" validate:"required"`
	Amount    *float64 `json:"amount" validate:"required,gt=0"`
	PaidOn    string   `json:"paidOn" validate:"required,isodate"`
	Method    string   `json:"method" validate:"required"`
	Reference *string  `json:"reference" validate:"omitempty,min=1"`
	Notes     *string  `json:"notes" validate:"omitempty,min=1"`
}

type UpdatePaymentInput struct {
	InvoiceID *string  `json:"invoiceId" validate:"omitempty,min=1"`
	Amount    *float64 `json:"amount" validate:"omitempty,gt=0"`
	PaidOn    *string  `json:"paidOn" validate:"omitempty,isodate"`
	Method    *string  `json:"method" validate:"omitempty,min=1"`
	Reference *string  `json:"reference" validate:"omitempty,min=1"`
	Notes     *string  `json:"notes" validate:"omitempty,min=1"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdatePaymentInput) Empty() bool {
	return in.InvoiceID == nil && in.Amount == nil && in.PaidOn == nil &&
		in.Method == nil && in.Reference == nil && in.Notes == nil
}
