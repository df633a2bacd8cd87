package main

import (
	"context"
	"log/slog"
	"os"

	"hvacops/config"
	"hvacops/internal/delivery"
	"hvacops/internal/delivery/http"
	"hvacops/internal/delivery/http/middleware"
	"hvacops/internal/delivery/http/router/handler"
	logs "hvacops/internal/infra/log"
	"hvacops/internal/infra/persistence/docstore"
	"hvacops/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		docstore.NewBucket,
		docstore.NewSnapshotStore,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewCustomerService,
			impl.NewServiceOfferingService,
			impl.NewMaintenancePlanService,
			impl.NewQuoteRequestService,
			impl.NewAppointmentService,
			impl.NewInspectionService,
			impl.NewFinalQuoteService,
			impl.NewInvoiceService,
			impl.NewPaymentService,
			impl.NewPartsOrderService,
			impl.NewSettingsService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSystemHandler,
			handler.NewCustomerHandler,
			handler.NewServiceOfferingHandler,
			handler.NewMaintenancePlanHandler,
			handler.NewQuoteRequestHandler,
			handler.NewAppointmentHandler,
			handler.NewInspectionHandler,
			handler.NewFinalQuoteHandler,
			handler.NewInvoiceHandler,
			handler.NewPaymentHandler,
			handler.NewPartsOrderHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
