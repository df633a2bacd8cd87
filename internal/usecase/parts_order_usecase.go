package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// PartsOrderUsecase manages parts procurement for approved final quotes.
// The stated total must match the sum of the line items.
type PartsOrderUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.PartsOrder], error)
	GetByID(ctx context.Context, id string) (*entity.PartsOrder, error)
	Create(ctx context.Context, input *CreatePartsOrderInput) (*entity.PartsOrder, error)
	Update(ctx context.Context, id string, input *UpdatePartsOrderInput) (*entity.PartsOrder, error)
	Delete(ctx context.Context, id string) error
}

type PartsOrderItemInput struct {
	PartID      string   `json:"partId" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Qty         *int     `json:"qty" validate:"required,gt=0"`
	CostEach    *float64 `json:"costEach" validate:"required,gte=0"`
}

type CreatePartsOrderInput struct {
	ID           *string                 `json:"id" validate:"omitempty,min=1"`
	FinalQuoteID string                  `json:"finalQuoteId" validate:"required"`
	Items        []PartsOrderItemInput   `json:"items" validate:"required,min=1,dive"`
	TotalCost    *float64                `json:"totalCost" validate:"required,gte=0"`
	Status       entity.PartsOrderStatus `json:"status" validate:"required,oneof=ordered backordered fulfilled canceled"`
	ETADate      *string                 `json:"etaDate" validate:"omitempty,isodate"`
	Notes        *string                 `json:"notes" validate:"omitempty,min=1"`
}

type UpdatePartsOrderInput struct {
	FinalQuoteID *string                  `json:"finalQuoteId" validate:"omitempty,min=1"`
	Items        []PartsOrderItemInput    `json:"items" validate:"omitempty,min=1,dive"`
	TotalCost    *float64                 `json:"totalCost" validate:"omitempty,gte=0"`
	Status       *entity.PartsOrderStatus `json:"status" validate:"omitempty,oneof=ordered backordered fulfilled canceled"`
	ETADate      *string                  `json:"etaDate" validate:"omitempty,isodate"`
	Notes        *string                  `json:"notes" validate:"omitempty,min=1"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdatePartsOrderInput) Empty() bool {
	return in.FinalQuoteID == nil && in.Items == nil && in.TotalCost == nil &&
		in.Status == nil && in.ETADate == nil && in.Notes == nil
}
