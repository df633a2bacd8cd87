package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// ServiceOfferingUsecase manages the service catalog.
type ServiceOfferingUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.ServiceOffering], error)
	GetByID(ctx context.Context, id string) (*entity.ServiceOffering, error)
	Create(ctx context.Context, input *CreateServiceOfferingInput) (*entity.ServiceOffering, error)
	Update(ctx context.Context, id string, input *UpdateServiceOfferingInput) (*entity.ServiceOffering, error)
	Delete(ctx context.Context, id string) error
}

type CreateServiceOfferingInput struct {
	ID             *string `json:"id" validate:"omitempty,min=1"`
	Name           string  `json:"name" validate:"required"`
	Category       string  `json:"category" validate:"required"`
	BasePriceRange string  `json:"basePriceRange" validate:"required"`
	Description    string  `json:"description" validate:"required"`
}

type UpdateServiceOfferingInput struct {
	Name           *string `json:"name" validate:"omitempty,min=1"`
	Category       *string `json:"category" validate:"omitempty,min=1"`
	BasePriceRange *string `json:"basePriceRange" validate:"omitempty,min=1"`
	Description    *string `json:"description" validate:"omitempty,min=1"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateServiceOfferingInput) Empty() bool {
	return in.Name == nil && in.Category == nil && in.BasePriceRange == nil && in.Description == nil
}
