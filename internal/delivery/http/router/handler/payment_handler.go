package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
}

// PaymentHandler serves the /payments resource.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
}

// NewPaymentHandler is the constructor for PaymentHandler.
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{paymentUC: params.PaymentUC}
}

func (h *PaymentHandler) List(c echo.Context) error {
	res, err := h.paymentUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	pay, err := h.paymentUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, pay)
}

func (h *PaymentHandler) Create(c echo.Context) error {
	input := new(usecase.CreatePaymentInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.paymentUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *PaymentHandler) Update(c echo.Context) error {
	input := new(usecase.UpdatePaymentInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.paymentUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *PaymentHandler) Delete(c echo.Context) error {
	if err := h.paymentUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
