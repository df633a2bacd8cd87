package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AppointmentHandlerParams holds dependencies for AppointmentHandler.
type AppointmentHandlerParams struct {
	fx.In

	AppointmentUC usecase.AppointmentUsecase
}

// AppointmentHandler serves the /appointments resource.
type AppointmentHandler struct {
	appointmentUC usecase.AppointmentUsecase
}

// NewAppointmentHandler is the constructor for AppointmentHandler.
func NewAppointmentHandler(params AppointmentHandlerParams) *AppointmentHandler {
	return &AppointmentHandler{appointmentUC: params.AppointmentUC}
}

func (h *AppointmentHandler) List(c echo.Context) error {
	res, err := h.appointmentUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *AppointmentHandler) Get(c echo.Context) error {
	appt, err := h.appointmentUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, appt)
}

func (h *AppointmentHandler) Create(c echo.Context) error {
	input := new(usecase.CreateAppointmentInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.appointmentUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *AppointmentHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateAppointmentInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.appointmentUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *AppointmentHandler) Delete(c echo.Context) error {
	if err := h.appointmentUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
