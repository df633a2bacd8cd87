package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// QuoteRequestUsecase manages intake quote requests and exposes the nested
// read-only listings of their dependents.
type QuoteRequestUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.QuoteRequest], error)
	GetByID(ctx context.Context, id string) (*entity.QuoteRequest, error)

	// Create persists a new request, defaulting urgency to normal, status to
	// new, and symptoms to an empty list when omitted.
	Create(ctx context.Context, input *CreateQuoteRequestInput) (*entity.QuoteRequest, error)
	Update(ctx context.Context, id string, input *UpdateQuoteRequestInput) (*entity.QuoteRequest, error)

	// Delete removes a request unless appointments, inspections, or final
	// quotes still reference it.
	Delete(ctx context.Context, id string) error

	// ListAppointments pages the appointments referencing the request.
	ListAppointments(ctx context.Context, id string, raw url.Values) (*listquery.Result[entity.Appointment], error)

	// ListInspections pages the inspections referencing the request.
	ListInspections(ctx context.Context, id string, raw url.Values) (*listquery.Result[entity.Inspection], error)

	// ListFinalQuotes pages the final quotes referencing the request.
	ListFinalQuotes(ctx context.Context, id string, raw url.Values) (*listquery.Result[entity.FinalQuote], error)
}

type CreateQuoteRequestInput struct {
	ID            *string            `json:"id" validate:"omitempty,min=1"`
	CustomerName  string             `json:"customerName" validate:"required"`
	ContactPhone  string             `json:"contactPhone" validate:"required,min=7"`
	Email         string             `json:"email" validate:"required,email"`
	Address       string             `json:"address" validate:"required"`
	ServiceType   string             `json:"serviceType" validate:"required"`
	Urgency       entity.Urgency     `json:"urgency" validate:"omitempty,oneof=low normal high"`
	RequestedDate string             `json:"requestedDate" validate:"required,isodate"`
	UnitAgeYears  *float64           `json:"unitAgeYears" validate:"omitempty,gte=0"`
	Symptoms      []string           `json:"symptoms" validate:"omitempty,dive,min=1"`
	Notes         *string            `json:"notes" validate:"omitempty,min=1"`
	Status        entity.QuoteStatus `json:"status" validate:"omitempty,oneof=new awaiting-scheduling scheduled inspection-complete awaiting-approval approved declined"`
}

type UpdateQuoteRequestInput struct {
	CustomerName  *string             `json:"customerName" validate:"omitempty,min=1"`
	ContactPhone  *string             `json:"contactPhone" validate:"omitempty,min=7"`
	Email         *string             `json:"email" validate:"omitempty,email"`
	Address       *string             `json:"address" validate:"omitempty,min=1"`
	ServiceType   *string             `json:"serviceType" validate:"omitempty,min=1"`
	Urgency       *entity.Urgency     `json:"urgency" validate:"omitempty,oneof=low normal high"`
	RequestedDate *string             `json:"requestedDate" validate:"omitempty,isodate"`
	UnitAgeYears  *float64            `json:"unitAgeYears" validate:"omitempty,gte=0"`
	Symptoms      []string            `json:"symptoms" validate:"omitempty,dive,min=1"`
	Notes         *string             `json:"notes" validate:"omitempty,min=1"`
	Status        *entity.QuoteStatus `json:"status" validate:"omitempty,oneof=new awaiting-scheduling scheduled inspection-complete awaiting-approval approved declined"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateQuoteRequestInput) Empty() bool {
	return in.CustomerName == nil && in.ContactPhone == nil && in.Email == nil &&
		in.Address == nil && in.ServiceType == nil && in.Urgency == nil &&
		in.RequestedDate == nil && in.UnitAgeYears == nil && in.Symptoms == nil &&
		in.Notes == nil && in.Status == nil
}
