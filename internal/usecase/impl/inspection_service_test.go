package impl

import (
	"context"
	"testing"

	"hvacops/internal/domain/entity"
	"hvacops/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectionService_CreateDefaults(t *testing.T) {
	store := newStore(t)
	svc := NewInspectionService(store)
	ctx := context.Background()

	qr := seedQuoteRequest(t, store)

	created, err := svc.Create(ctx, &usecase.CreateInspectionInput{
		QuoteRequestID: qr.ID,
		Technician:     "  Mei  ",
		Findings: []usecase.InspectionFindingInput{
			{Code: "LOW-REFRIG", Description: "Refrigerant below spec", Severity: entity.FindingSeverityModerate},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "Mei", created.Technician)
	require.NotNil(t, created.Adjustments)
	assert.Empty(t, created.Adjustments)
	require.NotNil(t, created.RecommendedServices)
	assert.Empty(t, created.RecommendedServices)
}

func TestInspectionService_RequiresFindings(t *testing.T) {
	store := newStore(t)
	svc := NewInspectionService(store)

	qr := seedQuoteRequest(t, store)

	_, err := svc.Create(context.Background(), &usecase.CreateInspectionInput{
		QuoteRequestID: qr.ID,
		Technician:     "Mei",
	})
	requireValidation(t, err)
}

func TestAppointmentService_DanglingQuoteRequest(t *testing.T) {
	store := newStore(t)

	_, err := NewAppointmentService(store).Create(context.Background(), &usecase.CreateAppointmentInput{
		QuoteRequestID: "qr-missing",
		ScheduledDate:  "2026-09-18",
		Window:         "8:00-12:00",
		Technician:     "Luis",
		Status:         entity.AppointmentStatusScheduled,
	})
	requireValidation(t, err)
}

func TestSettingsService_ReturnsDefaults(t *testing.T) {
	store := newStore(t)

	settings, err := NewSettingsService(store).Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 24, settings.CancellationWindowHours)
	assert.Equal(t, 14, settings.QuoteExpiryDays)
}
