package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves the /customers resource.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler.
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

func (h *CustomerHandler) List(c echo.Context) error {
	res, err := h.customerUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *CustomerHandler) Get(c echo.Context) error {
	customer, err := h.customerUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c echo.Context) error {
	input := new(usecase.CreateCustomerInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.customerUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateCustomerInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.customerUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	if err := h.customerUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
