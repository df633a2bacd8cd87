package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// QuoteRequestHandlerParams holds dependencies for QuoteRequestHandler.
type QuoteRequestHandlerParams struct {
	fx.In

	QuoteRequestUC usecase.QuoteRequestUsecase
}

// QuoteRequestHandler serves the /quote-requests resource and the nested
// listings of its dependents.
type QuoteRequestHandler struct {
	quoteRequestUC usecase.QuoteRequestUsecase
}

// NewQuoteRequestHandler is the constructor for QuoteRequestHandler.
func NewQuoteRequestHandler(params QuoteRequestHandlerParams) *QuoteRequestHandler {
	return &QuoteRequestHandler{quoteRequestUC: params.QuoteRequestUC}
}

func (h *QuoteRequestHandler) List(c echo.Context) error {
	res, err := h.quoteRequestUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *QuoteRequestHandler) Get(c echo.Context) error {
	qr, err := h.quoteRequestUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, qr)
}

func (h *QuoteRequestHandler) Create(c echo.Context) error {
	input := new(usecase.CreateQuoteRequestInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.quoteRequestUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *QuoteRequestHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateQuoteRequestInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.quoteRequestUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *QuoteRequestHandler) Delete(c echo.Context) error {
	if err := h.quoteRequestUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *QuoteRequestHandler) ListAppointments(c echo.Context) error {
	res, err := h.quoteRequestUC.ListAppointments(c.Request().Context(), c.Param("id"), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *QuoteRequestHandler) ListInspections(c echo.Context) error {
	res, err := h.quoteRequestUC.ListInspections(c.Request().Context(), c.Param("id"), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *QuoteRequestHandler) ListFinalQuotes(c echo.Context) error {
	res, err := h.quoteRequestUC.ListFinalQuotes(c.Request().Context(), c.Param("id"), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}
