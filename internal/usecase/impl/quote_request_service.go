package impl

import (
	"context"
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

var quoteRequestListOptions = listquery.Options{
	Filterable:       []string{"status", "urgency", "serviceType", "customerName"},
	Sortable:         []string{"requestedDate", "customerName", "status", "urgency"},
	DefaultSort:      "requestedDate",
	DefaultSortOrder: listquery.Desc,
}

type quoteRequestService struct {
	store repository.SnapshotStore
}

// NewQuoteRequestService creates the quote request service.
func NewQuoteRequestService(store repository.SnapshotStore) usecase.QuoteRequestUsecase {
	return &quoteRequestService{store: store}
}

func (s *quoteRequestService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.QuoteRequest], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.QuoteRequests, listquery.Parse(raw, quoteRequestListOptions))
	return &res, nil
}

func (s *quoteRequestService) GetByID(ctx context.Context, id string) (*entity.QuoteRequest, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findQuoteRequest(snap.QuoteRequests, id); idx >= 0 {
		qr := snap.QuoteRequests[idx]
		return &qr, nil
	}

	return nil, notFound("quote request", id)
}

func (s *quoteRequestService) Create(ctx context.Context, input *usecase.CreateQuoteRequestInput) (*entity.QuoteRequest, error) {
	if err := validation.Struct("quote request", input); err != nil {
		return nil, err
	}

	urgency := input.Urgency
	if urgency == "" {
		urgency = entity.UrgencyNormal
	}
	status := input.Status
	if status == "" {
		status = entity.QuoteStatusNew
	}
	symptoms := input.Symptoms
	if symptoms == nil {
		symptoms = []string{}
	}

	var created entity.QuoteRequest
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		id, err := resolveID(input.ID, "qr", "quote request", func(id string) bool {
			return findQuoteRequest(snap.QuoteRequests, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.QuoteRequest{
			ID:            id,
			CustomerName:  strings.TrimSpace(input.CustomerName),
			ContactPhone:  input.ContactPhone,
			Email:         input.Email,
			Address:       input.Address,
			ServiceType:   input.ServiceType,
			Urgency:       urgency,
			RequestedDate: input.RequestedDate,
			UnitAgeYears:  input.UnitAgeYears,
			Symptoms:      symptoms,
			Notes:         trimPtr(input.Notes),
			Status:        status,
		}
		snap.QuoteRequests = append(snap.QuoteRequests, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *quoteRequestService) Update(ctx context.Context, id string, input *usecase.UpdateQuoteRequestInput) (*entity.QuoteRequest, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("quote request patch names no fields.", nil)
	}
	if err := validation.Struct("quote request", input); err != nil {
		return nil, err
	}

	var updated entity.QuoteRequest
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findQuoteRequest(snap.QuoteRequests, id)
		if idx < 0 {
			return notFound("quote request", id)
		}

		qr := &snap.QuoteRequests[idx]
		if input.CustomerName != nil {
			qr.CustomerName = strings.TrimSpace(*input.CustomerName)
		}
		if input.ContactPhone != nil {
			qr.ContactPhone = *input.ContactPhone
		}
		if input.Email != nil {
			qr.Email = *input.Email
		}
		if input.Address != nil {
			qr.Address = *input.Address
		}
		if input.ServiceType != nil {
			qr.ServiceType = *input.ServiceType
		}
		if input.Urgency != nil {
			qr.Urgency = *input.Urgency
		}
		if input.RequestedDate != nil {
			qr.RequestedDate = *input.RequestedDate
		}
		if input.UnitAgeYears != nil {
			qr.UnitAgeYears = input.UnitAgeYears
		}
		if input.Symptoms != nil {
			qr.Symptoms = input.Symptoms
		}
		if input.Notes != nil {
			qr.Notes = trimPtr(input.Notes)
		}
		if input.Status != nil {
			qr.Status = *input.Status
		}

		updated = *qr
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *quoteRequestService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findQuoteRequest(snap.QuoteRequests, id)
		if idx < 0 {
			return notFound("quote request", id)
		}

		var dependents []string
		for i := range snap.Appointments {
			if snap.Appointments[i].QuoteRequestID == id {
				dependents = append(dependents, snap.Appointments[i].ID)
			}
		}
		for i := range snap.Inspections {
			if snap.Inspections[i].QuoteRequestID == id {
				dependents = append(dependents, snap.Inspections[i].ID)
			}
		}
		for i := range snap.FinalQuotes {
			if snap.FinalQuotes[i].QuoteRequestID == id {
				dependents = append(dependents, snap.FinalQuotes[i].ID)
			}
		}
		if len(dependents) > 0 {
			return blockedDelete("quote request", id, dependents)
		}

		snap.QuoteRequests = append(snap.QuoteRequests[:idx], snap.QuoteRequests[idx+1:]...)
		return nil
	})
}

func (s *quoteRequestService) ListAppointments(ctx context.Context, id string, raw url.Values) (*listquery.Result[entity.Appointment], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	if findQuoteRequest(snap.QuoteRequests, id) < 0 {
		return nil, notFound("quote request", id)
	}

	q := listquery.Parse(withFilter(raw, "quoteRequestId", id), appointmentListOptions)
	res := listquery.Apply(snap.Appointments, q)
	return &res, nil
}

func (s *quoteRequestService) ListInspections(ctx context.Context, id string, raw url.Values) (*listquery.Result[entity.Inspection], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	if findQuoteRequest(snap.QuoteRequests, id) < 0 {
		return nil, notFound("quote request", id)
	}

	q := listquery.Parse(withFilter(raw, "quoteRequestId", id), inspectionListOptions)
	res := listquery.Apply(snap.Inspections, q)
	return &res, nil
}

func (s *quoteRequestService) ListFinalQuotes(ctx context.Context, id string, raw url.Values) (*listquery.Result[entity.FinalQuote], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}
	if findQuoteRequest(snap.QuoteRequests, id) < 0 {
		return nil, notFound("quote request", id)
	}

	q := listquery.Parse(withFilter(raw, "quoteRequestId", id), finalQuoteListOptions)
	res := listquery.Apply(snap.FinalQuotes, q)
	return &res, nil
}

func findQuoteRequest(requests []entity.QuoteRequest, id string) int {
	for i := range requests {
		if requests[i].ID == id {
			return i
		}
	}
	return -1
}
