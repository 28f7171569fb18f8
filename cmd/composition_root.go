package cmd

import (
	"log/slog"
	"time"

	"storefront/internal/adapters/out/postgres"
	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/services"
	"storefront/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	graph      *services.TransitionGraph
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, graph *services.TransitionGraph, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		graph:      graph,
		logger:     logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	// The cart and notification collaborators are optional; nothing in this
	// deployment backs them yet.
	return commands.NewCreateOrderCommandHandler(f, c.graph, nil, nil, c.logger)
}

func (c *CompositionRoot) CreateReleaseItemCommandHandler() commands.ReleaseItemCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReleaseItemCommandHandler(f, c.graph)
}

func (c *CompositionRoot) CreateApplyItemTransitionCommandHandler() commands.ApplyItemTransitionCommandHandler {
	var f commands.ItemUoWFactory = FuncItemUoWFactory(func() commands.ItemUoW {
		return c.uowFactory.Create()
	})
	return commands.NewApplyItemTransitionCommandHandler(f, c.graph)
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAdvanceOrderStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f, c.graph)
}

func (c *CompositionRoot) CreateRecordLedgerEntryCommandHandler() commands.RecordLedgerEntryCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRecordLedgerEntryCommandHandler(f)
}

func (c *CompositionRoot) CreateTransferCreditCommandHandler() commands.TransferCreditCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransferCreditCommandHandler(f)
}

func (c *CompositionRoot) CreateSyncPaymentStatusesCommandHandler() commands.SyncPaymentStatusesCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSyncPaymentStatusesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderBalanceQueryHandler() queries.GetOrderBalanceQueryHandler {
	return queries.NewGetOrderBalanceQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderLedgerQueryHandler() queries.GetOrderLedgerQueryHandler {
	return queries.NewGetOrderLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingOrdersQueryHandler() queries.GetPendingOrdersQueryHandler {
	return queries.NewGetPendingOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(holdTTL time.Duration) (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateSyncPaymentStatusesCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateGetPendingOrdersQueryHandler(),
		holdTTL,
		c.logger,
	)
}

type FuncItemUoWFactory func() commands.ItemUoW

func (f FuncItemUoWFactory) Create() commands.ItemUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
