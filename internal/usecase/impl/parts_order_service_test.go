package impl

import (
	"context"
	"strings"
	"testing"

	"hvacops/internal/domain/entity"
	"hvacops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartsOrderService_TotalMustMatchItems(t *testing.T) {
	store := newStore(t)
	svc := NewPartsOrderService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)
	fq := seedFinalQuote(t, store, qr.ID)

	items := []usecase.PartsOrderItemInput{
		{PartID: "flt-20", Description: "Filter", Qty: intPtr(2), CostEach: f64Ptr(10)},
	}

	// Items sum to 20; a stated total of 21 is outside tolerance.
	_, err := svc.Create(ctx, &usecase.CreatePartsOrderInput{
		FinalQuoteID: fq.ID,
		Items:        items,
		TotalCost:    f64Ptr(21),
		Status:       entity.PartsOrderStatusOrdered,
	})
	requireValidation(t, err)

	created, err := svc.Create(ctx, &usecase.CreatePartsOrderInput{
		FinalQuoteID: fq.ID,
		Items:        items,
		TotalCost:    f64Ptr(20),
		Status:       entity.PartsOrderStatusOrdered,
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "po-"))

	// Rounding noise within the tolerance passes.
	_, err = svc.Create(ctx, &usecase.CreatePartsOrderInput{
		FinalQuoteID: fq.ID,
		Items:        items,
		TotalCost:    f64Ptr(20.0005),
		Status:       entity.PartsOrderStatusOrdered,
	})
	require.NoError(t, err)
}

func TestPartsOrderService_PatchRechecksTotal(t *testing.T) {
	store := newStore(t)
	svc := NewPartsOrderService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)
	fq := seedFinalQuote(t, store, qr.ID)

	created, err := svc.Create(ctx, &usecase.CreatePartsOrderInput{
		FinalQuoteID: fq.ID,
		Items: []usecase.PartsOrderItemInput{
			{PartID: "flt-20", Description: "Filter", Qty: intPtr(2), CostEach: f64Ptr(10)},
		},
		TotalCost: f64Ptr(20),
		Status:    entity.PartsOrderStatusOrdered,
	})
	require.NoError(t, err)

	// Replacing the items without restating the total breaks the match.
	_, err = svc.Update(ctx, created.ID, &usecase.UpdatePartsOrderInput{
		Items: []usecase.PartsOrderItemInput{
			{PartID: "cap-45", Description: "Capacitor", Qty: intPtr(1), CostEach: f64Ptr(45)},
		},
	})
	requireValidation(t, err)

	updated, err := svc.Update(ctx, created.ID, &usecase.UpdatePartsOrderInput{
		Items: []usecase.PartsOrderItemInput{
			{PartID: "cap-45", Description: "Capacitor", Qty: intPtr(1), CostEach: f64Ptr(45)},
		},
		TotalCost: f64Ptr(45),
	})
	require.NoError(t, err)
	assert.Equal(t, float64(45), updated.TotalCost)
	require.Len(t, updated.Items, 1)
	assert.Equal(t, "cap-45", updated.Items[0].PartID)
}

func TestPartsOrderService_DanglingFinalQuote(t *testing.T) {
	store := newStore(t)

	_, err := NewPartsOrderService(store).Create(context.Background(), &usecase.CreatePartsOrderInput{
		FinalQuoteID: "fq-missing",
		Items: []usecase.PartsOrderItemInput{
			{PartID: "flt-20", Description: "Filter", Qty: intPtr(1), CostEach: f64Ptr(10)},
		},
		TotalCost: f64Ptr(10),
		Status:    entity.PartsOrderStatusOrdered,
	})
	requireValidation(t, err)
}
