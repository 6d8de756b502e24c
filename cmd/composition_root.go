package cmd

import (
	"context"
	"log/slog"

	httpin "burgershop/internal/adapters/in/http"
	"burgershop/internal/adapters/out/localstore"
	"burgershop/internal/adapters/out/ocr"
	"burgershop/internal/adapters/out/orderstore"
	"burgershop/internal/adapters/out/postgres"
	"burgershop/internal/adapters/out/postgres/orderrepo"
	"burgershop/internal/adapters/out/rabbitnotify"
	"burgershop/internal/core/application/usecases/commands"
	"burgershop/internal/core/application/usecases/queries"
	"burgershop/internal/core/domain/model/order"
	"burgershop/internal/core/domain/services"
	"burgershop/internal/core/ports"
	"burgershop/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, services, and use case handlers together.
// It owns the process-wide singletons: the database handle, the dual-write
// order store, and the status notifier.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	logger     *slog.Logger
	uowFactory *postgres.GormUnitOfWorkFactory
	store      *orderstore.FallbackOrderStore
	notifier   ports.OrderNotifier
	checkout   services.CheckoutService

	rabbit *rabbitnotify.Notifier
}

// NewCompositionRoot builds the object graph. A RabbitMQ outage downgrades
// notifications to a no-op instead of blocking startup; everything else is
// required.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	tariff, err := services.LoadTariff(config.ShippingFeesPath)
	if err != nil {
		return nil, err
	}
	checkout := services.NewCheckoutService(
		services.NewShippingFeeResolver(tariff),
		services.NewBatangasServiceArea(),
	)

	local, err := localstore.NewStore(config.LocalStorePath)
	if err != nil {
		return nil, err
	}
	remote := orderrepo.NewGormOrderRepository(gormDB, noopTracker{})
	store := orderstore.NewFallbackOrderStore(remote, local, logger)

	root := &CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		logger:     logger,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      store,
		checkout:   checkout,
	}

	rabbit, err := rabbitnotify.NewNotifier(config.AmqpURL, config.AmqpExchange, logger)
	if err != nil {
		logger.Warn("rabbitmq unavailable, status notifications disabled", "error", err)
		root.notifier = noopNotifier{}
	} else {
		root.rabbit = rabbit
		root.notifier = rabbit
	}

	return root, nil
}

// Close releases broker and database connections.
func (c *CompositionRoot) Close() {
	if c.rabbit != nil {
		if err := c.rabbit.Close(); err != nil {
			c.logger.Warn("failed to close rabbitmq connection", "error", err)
		}
	}
	if sqlDB, err := c.gormDB.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// Ping reports database connectivity for the health endpoint.
func (c *CompositionRoot) Ping(ctx context.Context) error {
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) menuUoWFactory() commands.MenuUoWFactory {
	return FuncMenuUoWFactory(func() commands.MenuUoW { return c.uowFactory.Create() })
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW { return c.uowFactory.Create() })
}

// CreateHTTPServer assembles the inbound HTTP adapter over the full handler
// set.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	extractor := ocr.NewClient(c.config.OcrServiceURL)

	return httpin.NewServer(httpin.Deps{
		PlaceOrderHandler:         commands.NewPlaceOrderCommandHandler(c.checkout, c.store, extractor, c.logger),
		AdvanceOrderStatusHandler: commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		SetOrderStatusHandler:     commands.NewSetOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		BulkSetOrderStatusHandler: commands.NewBulkSetOrderStatusCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		CancelOrderHandler:        commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.notifier, c.logger),
		ClearAllOrdersHandler:     commands.NewClearAllOrdersCommandHandler(c.orderUoWFactory(), c.store, c.logger),
		CreateMenuItemHandler:     commands.NewCreateMenuItemCommandHandler(c.menuUoWFactory()),
		UpdateMenuItemHandler:     commands.NewUpdateMenuItemCommandHandler(c.menuUoWFactory()),
		DeleteMenuItemHandler:     commands.NewDeleteMenuItemCommandHandler(c.menuUoWFactory()),
		RegisterUserHandler:       commands.NewRegisterUserCommandHandler(c.userUoWFactory(), c.logger),

		GetAllOrdersHandler:      queries.NewGetAllOrdersQueryHandler(c.gormDB),
		GetCustomerOrdersHandler: queries.NewGetCustomerOrdersQueryHandler(c.gormDB),
		TrackOrderHandler:        queries.NewTrackOrderQueryHandler(c.store),
		GetDashboardHandler:      queries.NewGetDashboardQueryHandler(c.store, services.NewDashboardAggregator()),
		GetMenuHandler:           queries.NewGetMenuQueryHandler(c.gormDB),
		AuthenticateUserHandler:  queries.NewAuthenticateUserQueryHandler(c.userRepository()),

		Checkout: c.checkout,
		Tokens:   httpin.NewTokenIssuer(c.config.JWTSecret),
		Ping:     c.Ping,
	})
}

func (c *CompositionRoot) userRepository() ports.UserRepository {
	return c.uowFactory.Create().UserRepository()
}

// CreateJobManager wires the background jobs over the order store.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.store, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncMenuUoWFactory func() commands.MenuUoW

func (f FuncMenuUoWFactory) Create() commands.MenuUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

// noopTracker satisfies the repository's aggregate tracking hook for the
// standalone repository used outside a unit of work.
type noopTracker struct{}

func (noopTracker) TrackAggregate(string, interface{}) {}

// noopNotifier swallows notifications when the broker is not configured.
type noopNotifier struct{}

func (noopNotifier) NotifyStatusChanged(context.Context, *order.Order) error { return nil }
