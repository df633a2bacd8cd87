package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// InspectionUsecase manages on-site assessments of quote requests.
type InspectionUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Inspection], error)
	GetByID(ctx context.Context, id string) (*entity.Inspection, error)
	Create(ctx context.Context, input *CreateInspectionInput) (*entity.Inspection, error)
	Update(ctx context.Context, id string, input *UpdateInspectionInput) (*entity.Inspection, error)
	Delete(ctx context.Context, id string) error
}

type InspectionFindingInput struct {
	Code        string                 `json:"code" validate:"required"`
	Description string                 `json:"description" validate:"required"`
	Severity    entity.FindingSeverity `json:"severity" validate:"required,oneof=low moderate high"`
}

type InspectionAdjustmentInput struct {
	Description string   `json:"description" validate:"required"`
	Cost        *float64 `json:"cost" validate:"required,gte=0"`
}

type CreateInspectionInput struct {
	ID                  *string                     `json:"id" validate:"omitempty,min=1"`
	QuoteRequestID      string                      `json:"quoteRequestId" validate:"required"`
	Technician          string                      `json:"technician" validate:"required"`
	Findings            []InspectionFindingInput    `json:"findings" validate:"required,min=1,dive"`
	Adjustments         []InspectionAdjustmentInput `json:"adjustments" validate:"omitempty,dive"`
	RecommendedServices []string                    `json:"recommendedServices" validate:"omitempty,dive,min=1"`
}

type UpdateInspectionInput struct {
	QuoteRequestID      *string                     `json:"quoteRequestId" validate:"omitempty,min=1"`
	Technician          *string                     `json:"technician" validate:"omitempty,min=1"`
	Findings            []InspectionFindingInput    `json:"findings" validate:"omitempty,min=1,dive"`
	Adjustments         []InspectionAdjustmentInput `json:"adjustments" validate:"omitempty,dive"`
	RecommendedServices []string                    `json:"recommendedServices" validate:"omitempty,dive,min=1"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateInspectionInput) Empty() bool {
	return in.QuoteRequestID == nil && in.Technician == nil && in.Findings == nil &&
		in.Adjustments == nil && in.RecommendedServices == nil
}
