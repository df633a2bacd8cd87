package handler

import (
	"net/http"

	"hvacops/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FinalQuoteHandlerParams holds dependencies for FinalQuoteHandler.
type FinalQuoteHandlerParams struct {
	fx.In

	FinalQuoteUC usecase.FinalQuoteUsecase
}

// FinalQuoteHandler serves the /final-quotes resource and the nested
// listings of its dependents.
type FinalQuoteHandler struct {
	finalQuoteUC usecase.FinalQuoteUsecase
}

// NewFinalQuoteHandler is the constructor for FinalQuoteHandler.
func NewFinalQuoteHandler(params FinalQuoteHandlerParams) *FinalQuoteHandler {
	return &FinalQuoteHandler{finalQuoteUC: params.FinalQuoteUC}
}

func (h *FinalQuoteHandler) List(c echo.Context) error {
	res, err := h.finalQuoteUC.List(c.Request().Context(), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *FinalQuoteHandler) Get(c echo.Context) error {
	fq, err := h.finalQuoteUC.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fq)
}

func (h *FinalQuoteHandler) Create(c echo.Context) error {
	input := new(usecase.CreateFinalQuoteInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	created, err := h.finalQuoteUC.Create(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, created)
}

func (h *FinalQuoteHandler) Update(c echo.Context) error {
	input := new(usecase.UpdateFinalQuoteInput)
	if err := bindJSON(c, input); err != nil {
		return err
	}

	updated, err := h.finalQuoteUC.Update(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, updated)
}

func (h *FinalQuoteHandler) Delete(c echo.Context) error {
	if err := h.finalQuoteUC.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *FinalQuoteHandler) ListInvoices(c echo.Context) error {
	res, err := h.finalQuoteUC.ListInvoices(c.Request().Context(), c.Param("id"), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}

func (h *FinalQuoteHandler) ListPartsOrders(c echo.Context) error {
	res, err := h.finalQuoteUC.ListPartsOrders(c.Request().Context(), c.Param("id"), c.QueryParams())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, res)
}
