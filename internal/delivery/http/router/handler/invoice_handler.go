package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InvoiceHandlerParams holds dependencies for InvoiceHandler.
type InvoiceHandlerParams struct {
	fx.In

	InvoiceUC usecase.InvoiceUsecase
}

// InvoiceHandler serves the /invoices resource and its nested payments.
type InvoiceHandler struct {
	invoiceUC usecase.InvoiceUsecase
}

// NewInvoiceHandler is the constructor for InvoiceHandler.
func NewInvoiceHandler(params InvoiceHandlerParams) *InvoiceHandler {
	return &InvoiceHandler{invoiceUC: params.InvoiceUC}
}

func (h *InvoiceHandler) List(c echo.Context) error {
	res, err := h.invoiceUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *InvoiceHandler) Get(c echo.Context) error {
	inv, err := h.invoiceUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, inv)
}

func (h *InvoiceHandler) Create(c echo.Context) error {
	input := new(usecase.CreateInvoiceInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.invoiceUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *InvoiceHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateInvoiceInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.invoiceUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *InvoiceHandler) Delete(c echo.Context) error {
	if err := h.invoiceUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *InvoiceHandler) ListPayments(c echo.Context) error {
	res, err := h.invoiceUC.ListPayments(c.Request().Context(), c.Param("id"), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}
