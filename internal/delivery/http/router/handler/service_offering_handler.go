package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ServiceOfferingHandlerParams holds dependencies for ServiceOfferingHandler.
type ServiceOfferingHandlerParams struct {
	fx.In

	ServiceOfferingUC usecase.ServiceOfferingUsecase
}

// ServiceOfferingHandler serves the /service-offerings resource.
type ServiceOfferingHandler struct {
	serviceOfferingUC usecase.ServiceOfferingUsecase
}

// NewServiceOfferingHandler is the constructor for ServiceOfferingHandler.
func NewServiceOfferingHandler(params ServiceOfferingHandlerParams) *ServiceOfferingHandler {
	return &ServiceOfferingHandler{serviceOfferingUC: params.ServiceOfferingUC}
}

func (h *ServiceOfferingHandler) List(c echo.Context) error {
	res, err := h.serviceOfferingUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *ServiceOfferingHandler) Get(c echo.Context) error {
	offering, err := h.serviceOfferingUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, offering)
}

func (h *ServiceOfferingHandler) Create(c echo.Context) error {
	input := new(usecase.CreateServiceOfferingInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.serviceOfferingUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *ServiceOfferingHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateServiceOfferingInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.serviceOfferingUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *ServiceOfferingHandler) Delete(c echo.Context) error {
	if err := h.serviceOfferingUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
