package cmd

import (
	"log/slog"

	httpin "orders/internal/adapters/in/http"
	"orders/internal/adapters/out/destination"
	"orders/internal/adapters/out/distribution"
	"orders/internal/adapters/out/env"
	"orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/system"
	"orders/internal/core/application/events"
	"orders/internal/core/application/usecases/commands"
	"orders/internal/core/application/usecases/queries"
	"orders/internal/core/ports"
	"orders/internal/jobs"
	"orders/internal/pkg/eventbus"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      system.Clock
	toggles    env.FeatureToggles
	settings   env.DispatchSettings
	channel    ports.DeliveryChannel
	bus        *eventbus.Bus[events.OrderCreated]
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	bus := eventbus.New[events.OrderCreated](logger)
	distribution.NewService(logger).Subscribe(bus)

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      system.NewClock(),
		toggles:    env.NewFeatureToggles(),
		settings:   env.NewDispatchSettings(),
		channel:    destination.NewResilientChannel(destination.NewLoggingClient(logger), logger),
		bus:        bus,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.clock, c.toggles)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchOrdersCommandHandler() commands.DispatchOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchOrdersCommandHandler(f, c.channel, c.clock, c.bus, c.logger)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersByStatusQueryHandler() queries.GetOrdersByStatusQueryHandler {
	return queries.NewGetOrdersByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateDispatchOrdersCommandHandler(),
		c.CreateGetOrderByIDQueryHandler(),
		c.CreateGetOrdersByStatusQueryHandler(),
		c.settings,
		c.config.SeedEnabled,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateDispatchOrdersCommandHandler(), c.settings, c.logger)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
