package impl

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/domain/listquery"
	"hvacops/internal/domain/repository"
	"hvacops/internal/errors"
	"hvacops/internal/usecase"
	"hvacops/internal/validation"
)

var appointmentListOptions = listquery.Options{
	Filterable:  []string{"status", "technician", "quoteRequestId"},
	Sortable:    []string{"scheduledDate", "technician", "status"},
	DefaultSort: "scheduledDate",
}

type appointmentService struct {
	store repository.SnapshotStore
}

// NewAppointmentService creates the appointment service.
func NewAppointmentService(store repository.SnapshotStore) usecase.AppointmentUsecase {
	return &appointmentService{store: store}
}

func (s *appointmentService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Appointment], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.Appointments, listquery.Parse(raw, appointmentListOptions))
	return &res, nil
}

func (s *appointmentService) GetByID(ctx context.Context, id string) (*entity.Appointment, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findAppointment(snap.Appointments, id); idx >= 0 {
		appt := snap.Appointments[idx]
		return &appt, nil
	}

	return nil, notFound("appointment", id)
}

func (s *appointmentService) Create(ctx context.Context, input *usecase.CreateAppointmentInput) (*entity.Appointment, error) {
	if err := validation.Struct("appointment", input); err != nil {
		return nil, err
	}

	var created entity.Appointment
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if findQuoteRequest(snap.QuoteRequests, input.QuoteRequestID) < 0 {
			return danglingReference("quoteRequestId", input.QuoteRequestID)
		}

		id, err := resolveID(input.ID, "appt", "appointment", func(id string) bool {
			return findAppointment(snap.Appointments, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.Appointment{
			ID:             id,
			QuoteRequestID: input.QuoteRequestID,
			ScheduledDate:  input.ScheduledDate,
			Window:         input.Window,
			Technician:     strings.TrimSpace(input.Technician),
			Status:         input.Status,
		}
		snap.Appointments = append(snap.Appointments, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *appointmentService) Update(ctx context.Context, id string, input *usecase.UpdateAppointmentInput) (*entity.Appointment, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("appointment patch names no fields.", nil)
	}
	if err := validation.Struct("appointment", input); err != nil {
		return nil, err
	}

	var updated entity.Appointment
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findAppointment(snap.Appointments, id)
		if idx < 0 {
			return notFound("appointment", id)
		}

		if input.QuoteRequestID != nil && findQuoteRequest(snap.QuoteRequests, *input.QuoteRequestID) < 0 {
			return danglingReference("quoteRequestId", *input.QuoteRequestID)
		}

		appt := &snap.Appointments[idx]
		if input.QuoteRequestID != nil {
			appt.QuoteRequestID = *input.QuoteRequestID
		}
		if input.ScheduledDate != nil {
			appt.ScheduledDate = *input.ScheduledDate
		}
		if input.Window != nil {
			appt.Window = *input.Window
		}
		if input.Technician != nil {
			appt.Technician = strings.TrimSpace(*input.Technician)
		}
		if input.Status != nil {
			appt.Status = *input.Status
		}

		updated = *appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *appointmentService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findAppointment(snap.Appointments, id)
		if idx < 0 {
			return notFound("appointment", id)
		}

		snap.Appointments = append(snap.Appointments[:idx], snap.Appointments[idx+1:]...)
		return nil
	})
}

func findAppointment(appointments []entity.Appointment, id string) int {
	for i := range appointments {
		if appointments[i].ID == id {
			return i
		}
	}
	return -1
}

// danglingReference reports a foreign key that names no existing record.
func danglingReference(field, id string) error {
	return domainerrors.NewValidationError(
		fmt.Sprintf("%s %q references no existing record.", field, id),
		map[string]string{field: id})
}
