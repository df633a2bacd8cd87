package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InspectionHandlerParams holds dependencies for InspectionHandler.
type InspectionHandlerParams struct {
	fx.In

	InspectionUC usecase.InspectionUsecase
}

// InspectionHandler serves the /inspections resource.
type InspectionHandler struct {
	inspectionUC usecase.InspectionUsecase
}

// NewInspectionHandler is the constructor for InspectionHandler.
func NewInspectionHandler(params InspectionHandlerParams) *InspectionHandler {
	return &InspectionHandler{inspectionUC: params.InspectionUC}
}

func (h *InspectionHandler) List(c echo.Context) error {
	res, err := h.inspectionUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *InspectionHandler) Get(c echo.Context) error {
	insp, err := h.inspectionUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, insp)
}

func (h *InspectionHandler) Create(c echo.Context) error {
	input := new(usecase.CreateInspectionInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.inspectionUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *InspectionHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateInspectionInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.inspectionUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *InspectionHandler) Delete(c echo.Context) error {
	if err := h.inspectionUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
