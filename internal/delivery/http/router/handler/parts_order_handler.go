package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PartsOrderHandlerParams holds dependencies for PartsOrderHandler.
type PartsOrderHandlerParams struct {
	fx.In

	PartsOrderUC usecase.PartsOrderUsecase
}

// PartsOrderHandler serves the /parts-orders resource.
type PartsOrderHandler struct {
	partsOrderUC usecase.PartsOrderUsecase
}

// NewPartsOrderHandler is the constructor for PartsOrderHandler.
func NewPartsOrderHandler(params PartsOrderHandlerParams) *PartsOrderHandler {
	return &PartsOrderHandler{partsOrderUC: params.PartsOrderUC}
}

func (h *PartsOrderHandler) List(c echo.Context) error {
	res, err := h.partsOrderUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *PartsOrderHandler) Get(c echo.Context) error {
	po, err := h.partsOrderUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, po)
}

func (h *PartsOrderHandler) Create(c echo.Context) error {
	input := new(usecase.CreatePartsOrderInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.partsOrderUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *PartsOrderHandler) Update(c echo.Context) error {
	input := new(usecase.UpdatePartsOrderInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.partsOrderUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *PartsOrderHandler) Delete(c echo.Context) error {
	if err := h.partsOrderUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
