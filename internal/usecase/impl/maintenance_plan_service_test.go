package impl

import (
	"context"
	"testing"

	"hvacops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenancePlanService_UniquePlanTier(t *testing.T) {
	store := newStore(t)
	svc := NewMaintenancePlanService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateMaintenancePlanInput{
		PlanTier:         "Gold",
		AnnualFee:        f64Ptr(299),
		IncludedServices: []string{"tune-up"},
		PartsDiscountPct: f64Ptr(15),
	})
	require.NoError(t, err)
	require.NotNil(t, created.Extras)
	assert.Empty(t, created.Extras)

	// Tier labels are unique regardless of case.
	_, err = svc.Create(ctx, &usecase.CreateMaintenancePlanInput{
		PlanTier:         "gold",
		AnnualFee:        f64Ptr(99),
		IncludedServices: []string{"filter-swap"},
		PartsDiscountPct: f64Ptr(5),
	})
	requireValidation(t, err)

	// A plan may keep its own tier through an update.
	updated, err := svc.Update(ctx, created.ID, &usecase.UpdateMaintenancePlanInput{
		PlanTier:  strPtr("Gold"),
		AnnualFee: f64Ptr(319),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(319), updated.AnnualFee)
}

func TestMaintenancePlanService_TrimsTier(t *testing.T) {
	store := newStore(t)
	svc := NewMaintenancePlanService(store)

	created, err := svc.Create(context.Background(), &usecase.CreateMaintenancePlanInput{
		PlanTier:         "  Silver  ",
		AnnualFee:        f64Ptr(199),
		IncludedServices: []string{"tune-up"},
		PartsDiscountPct: f64Ptr(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "Silver", created.PlanTier)
}
