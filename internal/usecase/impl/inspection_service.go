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

var inspectionListOptions = listquery.Options{
	Filterable:  []string{"quoteRequestId", "technician"},
	Sortable:    []string{"technician"},
	DefaultSort: "technician",
}

type inspectionService struct {
	store repository.SnapshotStore
}

// NewInspectionService creates the inspection service.
func NewInspectionService(store repository.SnapshotStore) usecase.InspectionUsecase {
	return &inspectionService{store: store}
}

func (s *inspectionService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.Inspection], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.Inspections, listquery.Parse(raw, inspectionListOptions))
	return &res, nil
}

func (s *inspectionService) GetByID(ctx context.Context, id string) (*entity.Inspection, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findInspection(snap.Inspections, id); idx >= 0 {
		insp := snap.Inspections[idx]
		return &insp, nil
	}

	return nil, notFound("inspection", id)
}

func (s *inspectionService) Create(ctx context.Context, input *usecase.CreateInspectionInput) (*entity.Inspection, error) {
	if err := validation.Struct("inspection", input); err != nil {
		return nil, err
	}

	var created entity.Inspection
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if findQuoteRequest(snap.QuoteRequests, input.QuoteRequestID) < 0 {
			return danglingReference("quoteRequestId", input.QuoteRequestID)
		}

		id, err := resolveID(input.ID, "insp", "inspection", func(id string) bool {
			return findInspection(snap.Inspections, id) >= 0
		})
		if err != nil {
			return err
		}

		recommended := input.RecommendedServices
		if recommended == nil {
			recommended = []string{}
		}

		created = entity.Inspection{
			ID:                  id,
			QuoteRequestID:      input.QuoteRequestID,
			Technician:          strings.TrimSpace(input.Technician),
			Findings:            findingsFromInput(input.Findings),
			Adjustments:         adjustmentsFromInput(input.Adjustments),
			RecommendedServices: recommended,
		}
		snap.Inspections = append(snap.Inspections, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *inspectionService) Update(ctx context.Context, id string, input *usecase.UpdateInspectionInput) (*entity.Inspection, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("inspection patch names no fields.", nil)
	}
	if err := validation.Struct("inspection", input); err != nil {
		return nil, err
	}

	var updated entity.Inspection
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findInspection(snap.Inspections, id)
		if idx < 0 {
			return notFound("inspection", id)
		}

		if input.QuoteRequestID != nil && findQuoteRequest(snap.QuoteRequests, *input.QuoteRequestID) < 0 {
			return danglingReference("quoteRequestId", *input.QuoteRequestID)
		}

		insp := &snap.Inspections[idx]
		if input.QuoteRequestID != nil {
			insp.QuoteRequestID = *input.QuoteRequestID
		}
		if input.Technician != nil {
			insp.Technician = strings.TrimSpace(*input.Technician)
		}
		if input.Findings != nil {
			insp.Findings = findingsFromInput(input.Findings)
		}
		if input.Adjustments != nil {
			insp.Adjustments = adjustmentsFromInput(input.Adjustments)
		}
		if input.RecommendedServices != nil {
			insp.RecommendedServices = input.RecommendedServices
		}

		updated = *insp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *inspectionService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findInspection(snap.Inspections, id)
		if idx < 0 {
			return notFound("inspection", id)
		}

		snap.Inspections = append(snap.Inspections[:idx], snap.Inspections[idx+1:]...)
		return nil
	})
}

func findInspection(inspections []entity.Inspection, id string) int {
	for i := range inspections {
		if inspections[i].ID == id {
			return i
		}
	}
	return -1
}

func findingsFromInput(inputs []usecase.InspectionFindingInput) []entity.InspectionFinding {
	findings := make([]entity.InspectionFinding, len(inputs))
	for i, f := range inputs {
		findings[i] = entity.InspectionFinding{
			Code:        f.Code,
			Description: f.Description,
			Severity:    f.Severity,
		}
	}
	return findings
}

func adjustmentsFromInput(inputs []usecase.InspectionAdjustmentInput) []entity.InspectionAdjustment {
	adjustments := make([]entity.InspectionAdjustment, len(inputs))
	for i, a := range inputs {
		adjustments[i] = entity.InspectionAdjustment{
			Description: a.Description,
			Cost:        *a.Cost,
		}
	}
	return adjustments
}
