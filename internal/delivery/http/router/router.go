// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hvacops/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SystemHandler          *handler.SystemHandler
	CustomerHandler        *handler.CustomerHandler
	ServiceOfferingHandler *handler.ServiceOfferingHandler
	MaintenancePlanHandler *handler.MaintenancePlanHandler
	QuoteRequestHandler    *handler.QuoteRequestHandler
	AppointmentHandler     *handler.AppointmentHandler
	InspectionHandler      *handler.InspectionHandler
	FinalQuoteHandler      *handler.FinalQuoteHandler
	InvoiceHandler         *handler.InvoiceHandler
	PaymentHandler         *handler.PaymentHandler
	PartsOrderHandler      *handler.PartsOrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", r.params.SystemHandler.Health)
	e.GET("/", r.params.SystemHandler.Index)
	e.GET("/business-settings", r.params.SystemHandler.BusinessSettings)

	registerResource(e.Group("/customers"), resourceHandlers{
		list: r.params.CustomerHandler.List, get: r.params.CustomerHandler.Get,
		create: r.params.CustomerHandler.Create, update: r.params.CustomerHandler.Update,
		delete: r.params.CustomerHandler.Delete,
	})

	registerResource(e.Group("/service-offerings"), resourceHandlers{
		list: r.params.ServiceOfferingHandler.List, get: r.params.ServiceOfferingHandler.Get,
		create: r.params.ServiceOfferingHandler.Create, update: r.params.ServiceOfferingHandler.Update,
		delete: r.params.ServiceOfferingHandler.Delete,
	})

	registerResource(e.Group("/maintenance-plans"), resourceHandlers{
		list: r.params.MaintenancePlanHandler.List, get: r.params.MaintenancePlanHandler.Get,
		create: r.params.MaintenancePlanHandler.Create, update: r.params.MaintenancePlanHandler.Update,
		delete: r.params.MaintenancePlanHandler.Delete,
	})

	quoteRequests := e.Group("/quote-requests")
	registerResource(quoteRequests, resourceHandlers{
		list: r.params.QuoteRequestHandler.List, get: r.params.QuoteRequestHandler.Get,
		create: r.params.QuoteRequestHandler.Create, update: r.params.QuoteRequestHandler.Update,
		delete: r.params.QuoteRequestHandler.Delete,
	})
	quoteRequests.GET("/:id/appointments", r.params.QuoteRequestHandler.ListAppointments)
	quoteRequests.GET("/:id/inspections", r.params.QuoteRequestHandler.ListInspections)
	quoteRequests.GET("/:id/final-quotes", r.params.QuoteRequestHandler.ListFinalQuotes)

	registerResource(e.Group("/appointments"), resourceHandlers{
		list: r.params.AppointmentHandler.List, get: r.params.AppointmentHandler.Get,
		create: r.params.AppointmentHandler.Create, update: r.params.AppointmentHandler.Update,
		delete: r.params.AppointmentHandler.Delete,
	})

	registerResource(e.Group("/inspections"), resourceHandlers{
		list: r.params.InspectionHandler.List, get: r.params.InspectionHandler.Get,
		create: r.params.InspectionHandler.Create, update: r.params.InspectionHandler.Update,
		delete: r.params.InspectionHandler.Delete,
	})

	finalQuotes := e.Group("/final-quotes")
	registerResource(finalQuotes, resourceHandlers{
		list: r.params.FinalQuoteHandler.List, get: r.params.FinalQuoteHandler.Get,
		create: r.params.FinalQuoteHandler.Create, update: r.params.FinalQuoteHandler.Update,
		delete: r.params.FinalQuoteHandler.Delete,
	})
	finalQuotes.GET("/:id/invoices", r.params.FinalQuoteHandler.ListInvoices)
	finalQuotes.GET("/:id/parts-orders", r.params.FinalQuoteHandler.ListPartsOrders)

	invoices := e.Group("/invoices")
	registerResource(invoices, resourceHandlers{
		list: r.params.InvoiceHandler.List, get: r.params.InvoiceHandler.Get,
		create: r.params.InvoiceHandler.Create, update: r.params.InvoiceHandler.Update,
		delete: r.params.InvoiceHandler.Delete,
	})
	invoices.GET("/:id/payments", r.params.InvoiceHandler.ListPayments)

	registerResource(e.Group("/payments"), resourceHandlers{
		list: r.params.PaymentHandler.List, get: r.params.PaymentHandler.Get,
		create: r.params.PaymentHandler.Create, update: r.params.PaymentHandler.Update,
		delete: r.params.PaymentHandler.Delete,
	})

	registerResource(e.Group("/parts-orders"), resourceHandlers{
		list: r.params.PartsOrderHandler.List, get: r.params.PartsOrderHandler.Get,
		create: r.params.PartsOrderHandler.Create, update: r.params.PartsOrderHandler.Update,
		delete: r.params.PartsOrderHandler.Delete,
	})
}

type resourceHandlers struct {
	list   echo.HandlerFunc
	get    echo.HandlerFunc
	create echo.HandlerFunc
	update echo.HandlerFunc
	delete echo.HandlerFunc
}

// registerResource wires the standard CRUD verbs of one resource group.
func registerResource(g *echo.Group, h resourceHandlers) {
	g.GET("", h.list)
	g.POST("", h.create)
	g.GET("/:id", h.get)
	// PUT and PATCH are equivalent partial updates.
	g.PUT("/:id", h.update)
	g.PATCH("/:id", h.update)
	g.DELETE("/:id", h.delete)
}
