package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// FinalQuoteUsecase manages priced quotes and exposes listings of the
// invoices and parts orders raised against a quote.
type FinalQuoteUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.FinalQuote], error)
	GetByID(ctx context.Context, id string) (*entity.FinalQuote, error)
	Create(ctx context.Context, input *CreateFinalQuoteInput) (*entity.FinalQuote, error)
	Update(ctx context.Context, id string, input *UpdateFinalQuoteInput) (*entity.FinalQuote, error)

	// Delete refuses to remove a quote that still has invoices or parts
	// orders referencing it.
	Delete(ctx context.Context, id string) error

	ListInvoices(ctx context.Context, finalQuoteID string, raw url.Values) (*listquery.Result[entity.Invoice], error)
	ListPartsOrders(ctx context.Context, finalQuoteID string, raw url.Values) (*listquery.Result[entity.PartsOrder], error)
}

type CreateFinalQuoteInput struct {
	ID               *string                 `json:"id" validate:"omitempty,min=1"`
	QuoteRequestID   string                  `json:"quoteRequestId" validate:"required"`
	BaseEstimate     *float64                `json:"baseEstimate" validate:"required,gte=0"`
	AdjustmentsTotal *float64                `json:"adjustmentsTotal" validate:"required,gte=0"`
	FinalTotal       *float64                `json:"finalTotal" validate:"required,gte=0"`
	ExpiresOn        string                  `json:"expiresOn" validate:"required,isodate"`
	Status           entity.FinalQuoteStatus `json:"status" validate:"required,oneof=draft awaiting-approval approved expired declined"`
}

type UpdateFinalQuoteInput struct {
	QuoteRequestID   *string                  `json:"quoteRequestId" validate:"omitempty,min=1"`
	BaseEstimate     *float64                 `json:"baseEstimate" validate:"omitempty,gte=0"`
	AdjustmentsTotal *float64                 `json:"adjustmentsTotal" validate:"omitempty,gte=0"`
	FinalTotal       *float64                 `json:"finalTotal" validate:"omitempty,gte=0"`
	ExpiresOn        *string                  `json:"expiresOn" validate:"omitempty,isodate"`
	Status           *entity.FinalQuoteStatus `json:"status" validate:"omitempty,oneof=draft awaiting-approval approved expired declined"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateFinalQuoteInput) Empty() bool {
	return in.QuoteRequestID == nil && in.BaseEstimate == nil && in.AdjustmentsTotal == nil &&
		in.FinalTotal == nil && in.ExpiresOn == nil && in.Status == nil
}
