package impl

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"hvacops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateAndGet(t *testing.T) {
	store := newStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateCustomerInput{
		Name:           "Dana Frost",
		PrimaryAddress: "12 Cold Ln",
		Email:          "dana@example.com",
		Phone:          "555-0100",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, "cust-"))

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestCustomerService_SuppliedID(t *testing.T) {
	store := newStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateCustomerInput{
		ID:             strPtr("cust-custom"),
		Name:           "Dana Frost",
		PrimaryAddress: "12 Cold Ln",
		Email:          "dana@example.com",
		Phone:          "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "cust-custom", created.ID)

	// Reusing a taken id is rejected without touching the existing record.
	_, err = svc.Create(ctx, &usecase.CreateCustomerInput{
		ID:             strPtr("cust-custom"),
		Name:           "Other Person",
		PrimaryAddress: "1 Elsewhere",
		Email:          "other@example.com",
		Phone:          "555-0199",
	})
	requireValidation(t, err)

	got, err := svc.GetByID(ctx, "cust-custom")
	require.NoError(t, err)
	assert.Equal(t, "Dana Frost", got.Name)
}

func TestCustomerService_DuplicateEmail(t *testing.T) {
	store := newStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	first, err := svc.Create(ctx, &usecase.CreateCustomerInput{
		Name:           "Dana Frost",
		PrimaryAddress: "12 Cold Ln",
		Email:          "dana@example.com",
		Phone:          "555-0100",
	})
	require.NoError(t, err)

	// Case only differs, still a duplicate.
	_, err = svc.Create(ctx, &usecase.CreateCustomerInput{
		Name:           "Dana Imposter",
		PrimaryAddress: "13 Cold Ln",
		Email:          "DANA@Example.com",
		Phone:          "555-0101",
	})
	requireValidation(t, err)

	// A record may keep its own email through an update.
	updated, err := svc.Update(ctx, first.ID, &usecase.UpdateCustomerInput{
		Email: strPtr("dana@example.com"),
		Name:  strPtr("Dana F."),
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana F.", updated.Name)
}

func TestCustomerService_UpdatePatch(t *testing.T) {
	store := newStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateCustomerInput{
		Name:           "Dana Frost",
		PrimaryAddress: "12 Cold Ln",
		Email:          "dana@example.com",
		Phone:          "555-0100",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &usecase.UpdateCustomerInput{
		PlanTier: strPtr("  gold  "),
	})
	require.NoError(t, err)
	require.NotNil(t, updated.PlanTier)
	assert.Equal(t, "gold", *updated.PlanTier)

	// Untouched fields survive the patch.
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)

	got, err := svc.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestCustomerService_EmptyPatch(t *testing.T) {
	store := newStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateCustomerInput{
		Name:           "Dana Frost",
		PrimaryAddress: "12 Cold Ln",
		Email:          "dana@example.com",
		Phone:          "555-0100",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, created.ID, &usecase.UpdateCustomerInput{})
	requireValidation(t, err)
}

func TestCustomerService_DeleteThenGone(t *testing.T) {
	store := newStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	created, err := svc.Create(ctx, &usecase.CreateCustomerInput{
		Name:           "Dana Frost",
		PrimaryAddress: "12 Cold Ln",
		Email:          "dana@example.com",
		Phone:          "555-0100",
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	requireNotFound(t, err)

	requireNotFound(t, svc.Delete(ctx, created.ID))
}

func TestCustomerService_ListFiltersAndSorts(t *testing.T) {
	store := newStore(t)
	svc := NewCustomerService(store)
	ctx := context.Background()

	for _, c := range []usecase.CreateCustomerInput{
		{Name: "Cleo", PrimaryAddress: "3 Rd", Email: "cleo@example.com", Phone: "555-0103", PlanTier: strPtr("gold")},
		{Name: "Amir", PrimaryAddress: "1 Rd", Email: "amir@example.com", Phone: "555-0101"},
		{Name: "Bao", PrimaryAddress: "2 Rd", Email: "bao@example.com", Phone: "555-0102", PlanTier: strPtr("gold")},
	} {
		input := c
		_, err := svc.Create(ctx, &input)
		require.NoError(t, err)
	}

	res, err := svc.List(ctx, url.Values{})
	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	// Default sort is by name ascending.
	assert.Equal(t, "Amir", res.Items[0].Name)
	assert.Equal(t, "Bao", res.Items[1].Name)

	res, err = svc.List(ctx, url.Values{"planTier": {"gold"}, "sort": {"name:desc"}})
	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Cleo", res.Items[0].Name)
	assert.Equal(t, "Bao", res.Items[1].Name)
	assert.Equal(t, 2, res.Meta.Total)
	assert.False(t, res.Meta.HasNextPage)
}
