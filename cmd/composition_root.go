package cmd

import (
	"manufacturing/internal/adapters/in/http"
	"manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/services"
	"manufacturing/internal/jobs"
	"manufacturing/internal/pkg/logger"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	allocator  services.Allocator
	log        *logger.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, log *logger.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		allocator:  services.NewAllocator(),
		log:        log,
	}
}

func (c *CompositionRoot) orderUoW() commands.OrderUoWFactory {
	return commands.UoWFactoryFunc[commands.OrderUoW](func() commands.OrderUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) allocationUoW() commands.AllocationUoWFactory {
	return commands.UoWFactoryFunc[commands.AllocationUoW](func() commands.AllocationUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) productionUoW() commands.ProductionUoWFactory {
	return commands.UoWFactoryFunc[commands.ProductionUoW](func() commands.ProductionUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) executionUoW() commands.ProcessExecutionUoWFactory {
	return commands.UoWFactoryFunc[commands.ProcessExecutionUoW](func() commands.ProcessExecutionUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) catalogUoW() commands.CatalogUoWFactory {
	return commands.UoWFactoryFunc[commands.CatalogUoW](func() commands.CatalogUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) completionUoW() commands.CompletionUoWFactory {
	return commands.UoWFactoryFunc[commands.CompletionUoW](func() commands.CompletionUoW {
		return c.uowFactory.CreateGorm()
	})
}

func (c *CompositionRoot) CreateCommandHandlers() http.CommandHandlers {
	return http.CommandHandlers{
		CreateOrder:       commands.NewCreateOrderCommandHandler(c.orderUoW()),
		ChangeOrderInfo:   commands.NewChangeOrderInfoCommandHandler(c.orderUoW()),
		ChangeOrderStatus: commands.NewChangeOrderStatusCommandHandler(c.orderUoW()),

		CreateProduction:       commands.NewCreateProductionCommandHandler(c.productionUoW()),
		RescheduleProduction:   commands.NewRescheduleProductionCommandHandler(c.productionUoW()),
		ChangeProductionStatus: commands.NewChangeProductionStatusCommandHandler(c.productionUoW()),
		CompleteProduction:     c.CreateCompleteProductionCommandHandler(),

		AllocateOrder:   commands.NewAllocateOrderCommandHandler(c.allocationUoW(), c.allocator, c.log),
		DeallocateOrder: commands.NewDeallocateOrderCommandHandler(c.allocationUoW(), c.allocator, c.log),

		CreateProcessExecution:       commands.NewCreateProcessExecutionCommandHandler(c.executionUoW()),
		UpdateProcessExecution:       commands.NewUpdateProcessExecutionCommandHandler(c.executionUoW()),
		ChangeProcessExecutionStatus: commands.NewChangeProcessExecutionStatusCommandHandler(c.executionUoW()),

		CreateVehicleModel:    commands.NewCreateVehicleModelCommandHandler(c.catalogUoW()),
		CreateProcessType:     commands.NewCreateProcessTypeCommandHandler(c.catalogUoW()),
		DeactivateProcessType: commands.NewDeactivateProcessTypeCommandHandler(c.catalogUoW()),
		CreateEquipment:       commands.NewCreateEquipmentCommandHandler(c.catalogUoW()),
		ChangeEquipmentStatus: commands.NewChangeEquipmentStatusCommandHandler(c.catalogUoW()),
	}
}

func (c *CompositionRoot) CreateQueryHandlers() http.QueryHandlers {
	return http.QueryHandlers{
		GetOrder:   queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders: queries.NewListOrdersQueryHandler(c.gormDB),

		GetProduction:   queries.NewGetProductionQueryHandler(c.gormDB),
		ListProductions: queries.NewListProductionsQueryHandler(c.gormDB),

		GetProcessExecution:   queries.NewGetProcessExecutionQueryHandler(c.gormDB),
		ListProcessExecutions: queries.NewListProcessExecutionsQueryHandler(c.gormDB),

		GetAllocation:   queries.NewGetAllocationQueryHandler(c.gormDB),
		ListAllocations: queries.NewListAllocationsQueryHandler(c.gormDB),

		GetProductionVehicle:   queries.NewGetProductionVehicleQueryHandler(c.gormDB),
		ListProductionVehicles: queries.NewListProductionVehiclesQueryHandler(c.gormDB),

		GetVehicleModel:  queries.NewGetVehicleModelQueryHandler(c.gormDB),
		ListProcessTypes: queries.NewListProcessTypesQueryHandler(c.gormDB),
		ListEquipment:    queries.NewListEquipmentQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateServer() *http.Server {
	return http.NewServer(c.CreateCommandHandlers(), c.CreateQueryHandlers(), c.log)
}

func (c *CompositionRoot) CreateCompleteProductionCommandHandler() commands.CompleteProductionCommandHandler {
	return commands.NewCompleteProductionCommandHandler(c.completionUoW(), c.log)
}

func (c *CompositionRoot) CreateCompleteFulfilledOrdersCommandHandler() commands.CompleteFulfilledOrdersCommandHandler {
	return commands.NewCompleteFulfilledOrdersCommandHandler(c.completionUoW(), c.log)
}

func (c *CompositionRoot) CreateSeedCatalogCommandHandler() commands.SeedCatalogCommandHandler {
	return commands.NewSeedCatalogCommandHandler(c.catalogUoW(), c.log)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCompleteFulfilledOrdersCommandHandler(),
		c.config.OrderCompletionSchedule,
		c.log,
	)
}
