package usecase

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	"hvacops/internal/domain/listquery"
)

// AppointmentUsecase manages scheduled technician visits.
type AppointmentUsecase interface {
	List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Appointment], error)
	GetByID(ctx context.Context, id string) (*entity.Appointment, error)

	// Create persists a new appointment after confirming the referenced
	// quote request exists.
	Create(ctx context.Context, input *CreateAppointmentInput) (*entity.Appointment, error)
	Update(ctx context.Context, id string, input *UpdateAppointmentInput) (*entity.Appointment, error)
	Delete(ctx context.Context, id string) error
}

type CreateAppointmentInput struct {
	ID             *string                  `json:"id" validate:"omitempty,min=1"`
	QuoteRequestID string                   `json:"quoteRequestId" validate:"required"`
	ScheduledDate  string                   `json:"scheduledDate" validate:"required,isodate"`
	Window         string                   `json:"window" validate:"required"`
	Technician     string                   `json:"technician" validate:"required"`
	Status         entity.AppointmentStatus `json:"status" validate:"required,oneof=scheduled completed canceled"`
}

type UpdateAppointmentInput struct {
	QuoteRequestID *string                   `json:"quoteRequestId" validate:"omitempty,min=1"`
	ScheduledDate  *string                   `json:"scheduledDate" validate:"omitempty,isodate"`
	Window         *string                   `json:"window" validate:"omitempty,min=1"`
	Technician     *string                   `json:"technician" validate:"omitempty,min=1"`
	Status         *entity.AppointmentStatus `json:"status" validate:"omitempty,oneof=scheduled completed canceled"`
}

// Empty reports whether the patch names no fields at all.
func (in *UpdateAppointmentInput) Empty() bool {
	return in.QuoteRequestID == nil && in.ScheduledDate == nil && in.Window == nil &&
		in.Technician == nil && in.Status == nil
}
