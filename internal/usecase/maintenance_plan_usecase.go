package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// MaintenancePlanUsecase manages subscription plan tiers.
type MaintenancePlanUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.MaintenancePlan], error)
	GetByID(ctx context.Context, id string) (*entity.MaintenancePlan, error)

	// Create persists a new plan. PlanTier must be unique across the
	// collection, case-insensitively.
	Create(ctx context.Context, input *CreateMaintenancePlanInput) (*entity.MaintenancePlan, error)
	Update(ctx context.Context, id string, input *UpdateMaintenancePlanInput) (*entity.MaintenancePlan, error)
	Delete(ctx context.Context, id string) error
}

type CreateMaintenancePlanInput struct {
	ID               *string  `json:"id" validate:"omitempty,min=1"`
	PlanTier         string   `json:"planTier" validate:"required"`
	AnnualFee        *float64 `json:"annualFee" validate:"required,gte=0"`
	IncludedServices []string `json:"includedServices" validate:"required,min=1,dive,min=1"`
	PartsDiscountPct *float64 `json:"partsDiscountPct" validate:"required,gte=0,lte=100"`
	Extras           []string `json:"extras" validate:"omitempty,dive,min=1"`
}

type UpdateMaintenancePlanInput struct {
	PlanTier         *string  `json:"planTier" validate:"omitempty,min=1"`
	AnnualFee        *float64 `json:"annualFee" validate:"omitempty,gte=0"`
	IncludedServices []string `json:"includedServices" validate:"omitempty,min=1,dive,min=1"`
	PartsDiscountPct *float64 `json:"partsDiscountPct" validate:"omitempty,gte=0,lte=100"`
	Extras           []string `json:"extras" validate:"omitempty,dive,min=1"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateMaintenancePlanInput) Empty() bool {
	return in.PlanTier == nil && in.AnnualFee == nil && in.IncludedServices == nil &&
		in.PartsDiscountPct == nil && in.Extras == nil
}
