package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hvacops/internal/delivery/http/middleware"
	"hvacops/internal/delivery/http/response"
	"hvacops/internal/domain/entity"
	domainerrors "hvacops/internal/domain/errors"
	"hvacops/internal/infra/persistence/docstore"
	"hvacops/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newCustomerTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	h := &CustomerHandler{customerUC: impl.NewCustomerService(docstore.New(bucket, ""))}

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.Default()).HandleHTTPError
	e.GET("/customers", h.List)
	e.POST("/customers", h.Create)
	e.GET("/customers/:id", h.Get)

	return e
}

func TestCustomerHandler_CreateAndList_Integration(t *testing.T) {
	e := newCustomerTestServer(t)

	body := `{"name":"Dana Frost","primaryAddress":"12 Cold Ln","email":"dana@example.com","phone":"555-0100"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Customer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.True(t, strings.HasPrefix(created.ID, "cust-"))
	assert.Equal(t, "Dana Frost", created.Name)

	req = httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var listing struct {
		Items []entity.Customer `json:"items"`
		Meta  struct {
			Total       int  `json:"total"`
			Page        int  `json:"page"`
			Limit       int  `json:"limit"`
			HasNextPage bool `json:"hasNextPage"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	require.Len(t, listing.Items, 1)
	assert.Equal(t, 1, listing.Meta.Total)
	assert.Equal(t, 1, listing.Meta.Page)
	assert.Equal(t, 25, listing.Meta.Limit)
	assert.False(t, listing.Meta.HasNextPage)
}

func TestCustomerHandler_RejectsUnknownField_Integration(t *testing.T) {
	e := newCustomerTestServer(t)

	body := `{"name":"Dana Frost","primaryAddress":"12 Cold Ln","email":"dana@example.com","phone":"555-0100","nickname":"DF"}`
	req := httptest.NewRequest(http.MethodPost, "/customers", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, domainerrors.KindValidation, errBody.Error)
}

func TestCustomerHandler_GetUnknownID_Integration(t *testing.T) {
	e := newCustomerTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/customers/cust-missing", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var errBody response.ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	assert.Equal(t, domainerrors.KindNotFound, errBody.Error)
	assert.Equal(t, "customer not found", errBody.Message)
}
