package impl

import (
	"context"
	"net/url"

	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/domain/listquery"
	"hvacops/internal/domain/repository"
	"hvacops/internal/errors"
	"hvacops/internal/usecase"
	"hvacops/internal/validation"
)

var serviceOfferingListOptions = listquery.Options{
	Filterable:  []string{"category", "name"},
	Sortable:    []string{"name", "category"},
	DefaultSort: "name",
}

type serviceOfferingService struct {
	store repository.SnapshotStore
}

// NewServiceOfferingService creates the service catalog service.
func NewServiceOfferingService(store repository.SnapshotStore) usecase.ServiceOfferingUsecase {
	return &serviceOfferingService{store: store}
}

func (s *serviceOfferingService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.ServiceOffering], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.Services, listquery.Parse(raw, serviceOfferingListOptions))
	return &res, nil
}

func (s *serviceOfferingService) GetByID(ctx context.Context, id string) (*entity.ServiceOffering, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findServiceOffering(snap.Services, id); idx >= 0 {
		svc := snap.Services[idx]
		return &svc, nil
	}

	return nil, notFound("service offering", id)
}

func (s *serviceOfferingService) Create(ctx context.Context, input *usecase.CreateServiceOfferingInput) (*entity.ServiceOffering, error) {
	if err := validation.Struct("service offering", input); err != nil {
		return nil, err
	}

	var created entity.ServiceOffering
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		id, err := resolveID(input.ID, "svc", "service offering", func(id string) bool {
			return findServiceOffering(snap.Services, id) >= 0
		})
		if err != nil {
			return err
		}

		created = entity.ServiceOffering{
			ID:             id,
			Name:           input.Name,
			Category:       input.Category,
			BasePriceRange: input.BasePriceRange,
			Description:    input.Description,
		}
		snap.Services = append(snap.Services, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *serviceOfferingService) Update(ctx context.Context, id string, input *usecase.UpdateServiceOfferingInput) (*entity.ServiceOffering, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("service offering patch names no fields.", nil)
	}
	if err := validation.Struct("service offering", input); err != nil {
		return nil, err
	}

	var updated entity.ServiceOffering
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findServiceOffering(snap.Services, id)
		if idx < 0 {
			return notFound("service offering", id)
		}

		svc := &snap.Services[idx]
		if input.Name != nil {
			svc.Name = *input.Name
		}
		if input.Category != nil {
			svc.Category = *input.Category
		}
		if input.BasePriceRange != nil {
			svc.BasePriceRange = *input.BasePriceRange
		}
		if input.Description != nil {
			svc.Description = *input.Description
		}

		updated = *svc
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *serviceOfferingService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findServiceOffering(snap.Services, id)
		if idx < 0 {
			return notFound("service offering", id)
		}

		snap.Services = append(snap.Services[:idx], snap.Services[idx+1:]...)
		return nil
	})
}

func findServiceOffering(services []entity.ServiceOffering, id string) int {
	for i := range services {
		if services[i].ID == id {
			return i
		}
	}
	return -1
}
