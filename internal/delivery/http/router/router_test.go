package router

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hvacops/internal/delivery/http/middleware"
	"hvacops/internal/delivery/http/router/handler"
	"hvacops/internal/domain/entity"
	"hvacops/internal/infra/persistence/docstore"
	"hvacops/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })
	store := docstore.New(bucket, "")

	params := RouterParams{
		SystemHandler:          handler.NewSystemHandler(handler.SystemHandlerParams{SettingsUC: impl.NewSettingsService(store)}),
		CustomerHandler:        handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: impl.NewCustomerService(store)}),
		ServiceOfferingHandler: handler.NewServiceOfferingHandler(handler.ServiceOfferingHandlerParams{ServiceOfferingUC: impl.NewServiceOfferingService(store)}),
		MaintenancePlanHandler: handler.NewMaintenancePlanHandler(handler.MaintenancePlanHandlerParams{MaintenancePlanUC: impl.NewMaintenancePlanService(store)}),
		QuoteRequestHandler:    handler.NewQuoteRequestHandler(handler.QuoteRequestHandlerParams{QuoteRequestUC: impl.NewQuoteRequestService(store)}),
		AppointmentHandler:     handler.NewAppointmentHandler(handler.AppointmentHandlerParams{AppointmentUC: impl.NewAppointmentService(store)}),
		InspectionHandler:      handler.NewInspectionHandler(handler.InspectionHandlerParams{InspectionUC: impl.NewInspectionService(store)}),
		FinalQuoteHandler:      handler.NewFinalQuoteHandler(handler.FinalQuoteHandlerParams{FinalQuoteUC: impl.NewFinalQuoteService(store)}),
		InvoiceHandler:         handler.NewInvoiceHandler(handler.InvoiceHandlerParams{InvoiceUC: impl.NewInvoiceService(store)}),
		PaymentHandler:         handler.NewPaymentHandler(handler.PaymentHandlerParams{PaymentUC: impl.NewPaymentService(store)}),
		PartsOrderHandler:      handler.NewPartsOrderHandler(handler.PartsOrderHandlerParams{PartsOrderUC: impl.NewPartsOrderService(store)}),
	}

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError
	NewRouter(params).RegisterRoutes(e)

	return e
}

func doJSON(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestRouter_PutAndPatchBothUpdate(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodPost, "/customers",
		`{"name":"Dana Frost","primaryAddress":"12 Cold Ln","email":"dana@example.com","phone":"555-0100"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = doJSON(t, e, http.MethodPut, "/customers/"+created.ID, `{"name":"Patty"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var updated entity.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Patty", updated.Name)
	assert.Equal(t, created.Email, updated.Email)

	rec = doJSON(t, e, http.MethodPatch, "/customers/"+created.ID, `{"name":"Patricia"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "Patricia", updated.Name)
}

func TestRouter_HealthIncludesTimestamp(t *testing.T) {
	e := newTestRouter(t)

	rec := doJSON(t, e, http.MethodGet, "/healthz", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])

	_, err := time.Parse(time.RFC3339, body["timestamp"])
	assert.NoError(t, err)
}
