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

var maintenancePlanListOptions = listquery.Options{
	Filterable:  []string{"planTier"},
	Sortable:    []string{"planTier", "annualFee", "partsDiscountPct"},
	DefaultSort: "annualFee",
}

type maintenancePlanService struct {
	store repository.SnapshotStore
}

// NewMaintenancePlanService creates the maintenance plan service.
func NewMaintenancePlanService(store repository.SnapshotStore) usecase.MaintenancePlanUsecase {
	return &maintenancePlanService{store: store}
}

func (s *maintenancePlanService) List(ctx context.Context, raw url.Values) (*listquery.Result[entity.MaintenancePlan], error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	res := listquery.Apply(snap.MaintenancePlans, listquery.Parse(raw, maintenancePlanListOptions))
	return &res, nil
}

func (s *maintenancePlanService) GetByID(ctx context.Context, id string) (*entity.MaintenancePlan, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "load snapshot")
	}

	if idx := findMaintenancePlan(snap.MaintenancePlans, id); idx >= 0 {
		plan := snap.MaintenancePlans[idx]
		return &plan, nil
	}

	return nil, notFound("maintenance plan", id)
}

func (s *maintenancePlanService) Create(ctx context.Context, input *usecase.CreateMaintenancePlanInput) (*entity.MaintenancePlan, error) {
	if err := validation.Struct("maintenance plan", input); err != nil {
		return nil, err
	}

	tier := strings.TrimSpace(input.PlanTier)

	var created entity.MaintenancePlan
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		if planTierTaken(snap.MaintenancePlans, tier, "") {
			return duplicatePlanTier(tier)
		}

		id, err := resolveID(input.ID, "plan", "maintenance plan", func(id string) bool {
			return findMaintenancePlan(snap.MaintenancePlans, id) >= 0
		})
		if err != nil {
			return err
		}

		extras := input.Extras
		if extras == nil {
			extras = []string{}
		}

		created = entity.MaintenancePlan{
			ID:               id,
			PlanTier:         tier,
			AnnualFee:        *input.AnnualFee,
			IncludedServices: input.IncludedServices,
			PartsDiscountPct: *input.PartsDiscountPct,
			Extras:           extras,
		}
		snap.MaintenancePlans = append(snap.MaintenancePlans, created)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (s *maintenancePlanService) Update(ctx context.Context, id string, input *usecase.UpdateMaintenancePlanInput) (*entity.MaintenancePlan, error) {
	if input.Empty() {
		return nil, domainerrors.NewValidationError("maintenance plan patch names no fields.", nil)
	}
	if err := validation.Struct("maintenance plan", input); err != nil {
		return nil, err
	}

	var updated entity.MaintenancePlan
	err := s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findMaintenancePlan(snap.MaintenancePlans, id)
		if idx < 0 {
			return notFound("maintenance plan", id)
		}

		plan := &snap.MaintenancePlans[idx]
		if input.PlanTier != nil {
			tier := strings.TrimSpace(*input.PlanTier)
			if planTierTaken(snap.MaintenancePlans, tier, id) {
				return duplicatePlanTier(tier)
			}
			plan.PlanTier = tier
		}
		if input.AnnualFee != nil {
			plan.AnnualFee = *input.AnnualFee
		}
		if input.IncludedServices != nil {
			plan.IncludedServices = input.IncludedServices
		}
		if input.PartsDiscountPct != nil {
			plan.PartsDiscountPct = *input.PartsDiscountPct
		}
		if input.Extras != nil {
			plan.Extras = input.Extras
		}

		updated = *plan
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (s *maintenancePlanService) Delete(ctx context.Context, id string) error {
	return s.store.Mutate(ctx, func(snap *entity.Snapshot) error {
		idx := findMaintenancePlan(snap.MaintenancePlans, id)
		if idx < 0 {
			return notFound("maintenance plan", id)
		}

		snap.MaintenancePlans = append(snap.MaintenancePlans[:idx], snap.MaintenancePlans[idx+1:]...)
		return nil
	})
}

func findMaintenancePlan(plans []entity.MaintenancePlan, id string) int {
	for i := range plans {
		if plans[i].ID == id {
			return i
		}
	}
	return -1
}

// planTierTaken reports whether another plan already uses the tier label,
// compared case-insensitively. selfID exempts the record being updated.
func planTierTaken(plans []entity.MaintenancePlan, tier, selfID string) bool {
	for i := range plans {
		if plans[i].ID != selfID && strings.EqualFold(plans[i].PlanTier, tier) {
			return true
		}
	}
	return false
}

func duplicatePlanTier(tier string) error {
	return domainerrors.NewValidationError(
		"a maintenance plan with this tier already exists.",
		map[string]string{"planTier": tier})
}
