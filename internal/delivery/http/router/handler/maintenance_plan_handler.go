package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MaintenancePlanHandlerParams holds dependencies for MaintenancePlanHandler.
type MaintenancePlanHandlerParams struct {
	fx.In

	MaintenancePlanUC usecase.MaintenancePlanUsecase
}

// MaintenancePlanHandler serves the /maintenance-plans resource.
type MaintenancePlanHandler struct {
	maintenancePlanUC usecase.MaintenancePlanUsecase
}

// NewMaintenancePlanHandler is the constructor for MaintenancePlanHandler.
func NewMaintenancePlanHandler(params MaintenancePlanHandlerParams) *MaintenancePlanHandler {
	return &MaintenancePlanHandler{maintenancePlanUC: params.MaintenancePlanUC}
}

func (h *MaintenancePlanHandler) List(c echo.Context) error {
	res, err := h.maintenancePlanUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *MaintenancePlanHandler) Get(c echo.Context) error {
	plan, err := h.maintenancePlanUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, plan)
}

func (h *MaintenancePlanHandler) Create(c echo.Context) error {
	input := new(usecase.CreateMaintenancePlanInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.maintenancePlanUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *MaintenancePlanHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateMaintenancePlanInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.maintenancePlanUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *MaintenancePlanHandler) Delete(c echo.Context) error {
	if err := h.maintenancePlanUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
