package http

import (
	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// CommandHandlers groups the write side exposed over HTTP.
type CommandHandlers struct {
	CreateOrder       commands.CreateOrderCommandHandler
	ChangeOrderInfo   commands.ChangeOrderInfoCommandHandler
	ChangeOrderStatus commands.ChangeOrderStatusCommandHandler

	CreateProduction       commands.CreateProductionCommandHandler
	RescheduleProduction   commands.RescheduleProductionCommandHandler
	ChangeProductionStatus commands.ChangeProductionStatusCommandHandler
	CompleteProduction     commands.CompleteProductionCommandHandler

	AllocateOrder   commands.AllocateOrderCommandHandler
	DeallocateOrder commands.DeallocateOrderCommandHandler

	CreateProcessExecution       commands.CreateProcessExecutionCommandHandler
	UpdateProcessExecution       commands.UpdateProcessExecutionCommandHandler
	ChangeProcessExecutionStatus commands.ChangeProcessExecutionStatusCommandHandler

	CreateVehicleModel    commands.CreateVehicleModelCommandHandler
	CreateProcessType     commands.CreateProcessTypeCommandHandler
	DeactivateProcessType commands.DeactivateProcessTypeCommandHandler
	CreateEquipment       commands.CreateEquipmentCommandHandler
	ChangeEquipmentStatus commands.ChangeEquipmentStatusCommandHandler
}

// QueryHandlers groups the read side exposed over HTTP.
type QueryHandlers struct {
	GetOrder   queries.GetOrderQueryHandler
	ListOrders queries.ListOrdersQueryHandler

	GetProduction   queries.GetProductionQueryHandler
	ListProductions queries.ListProductionsQueryHandler

	GetProcessExecution   queries.GetProcessExecutionQueryHandler
	ListProcessExecutions queries.ListProcessExecutionsQueryHandler

	GetAllocation   queries.GetAllocationQueryHandler
	ListAllocations queries.ListAllocationsQueryHandler

	GetProductionVehicle   queries.GetProductionVehicleQueryHandler
	ListProductionVehicles queries.ListProductionVehiclesQueryHandler

	GetVehicleModel  queries.GetVehicleModelQueryHandler
	ListProcessTypes queries.ListProcessTypesQueryHandler
	ListEquipment    queries.ListEquipmentQueryHandler
}

// Server maps the /api/v1 routes onto the application use cases.
type Server struct {
	commands CommandHandlers
	queries  QueryHandlers
	log      *logger.Logger
}

func NewServer(cmds CommandHandlers, qs QueryHandlers, log *logger.Logger) *Server {
	return &Server{
		commands: cmds,
		queries:  qs,
		log:      log.With("component", "http"),
	}
}

// RegisterHandlers mounts every route of openapi.json under /api/v1.
func (s *Server) RegisterHandlers(e *echo.Echo) {
	api := e.Group("/api/v1")

	orders := api.Group("/orders")
	orders.POST("", s.CreateOrder)
	orders.GET("", s.ListOrders)
	orders.GET("/:id", s.GetOrder)
	orders.PATCH("/:id", s.ChangeOrderInfo)
	orders.PATCH("/:id/cancel", s.CancelOrder)
	orders.PATCH("/:id/complete", s.CompleteOrder)

	productions := api.Group("/productions")
	productions.POST("", s.CreateProduction)
	productions.GET("", s.ListProductions)
	productions.GET("/:id", s.GetProduction)
	productions.PATCH("/:id", s.RescheduleProduction)
	productions.PATCH("/:id/start", s.StartProduction)
	productions.PATCH("/:id/stop", s.StopProduction)
	productions.PATCH("/:id/restart", s.RestartProduction)
	productions.PATCH("/:id/cancel", s.CancelProduction)
	productions.PATCH("/:id/complete", s.CompleteProduction)

	executions := api.Group("/process-executions")
	executions.POST("", s.CreateProcessExecution)
	executions.GET("", s.ListProcessExecutions)
	executions.GET("/:id", s.GetProcessExecution)
	executions.PATCH("/:id", s.UpdateProcessExecution)
	executions.PATCH("/:id/operate", s.OperateProcessExecution)
	executions.PATCH("/:id/complete", s.CompleteProcessExecution)
	executions.PATCH("/:id/stop", s.StopProcessExecution)

	allocations := api.Group("/allocations")
	allocations.POST("", s.CreateAllocation)
	allocations.GET("", s.ListAllocations)
	allocations.GET("/order/:orderId", s.ListOrderAllocations)
	allocations.GET("/production/:productionId", s.ListProductionAllocations)
	allocations.GET("/:id", s.GetAllocation)
	allocations.DELETE("/:id", s.DeleteAllocation)

	vehicles := api.Group("/production-vehicles")
	vehicles.GET("", s.ListProductionVehicles)
	vehicles.GET("/:id", s.GetProductionVehicle)

	models := api.Group("/vehicle-models")
	models.POST("", s.CreateVehicleModel)
	models.GET("/:id", s.GetVehicleModel)

	processTypes := api.Group("/process-types")
	processTypes.POST("", s.CreateProcessType)
	processTypes.GET("", s.ListProcessTypes)
	processTypes.PATCH("/:id/deactivate", s.DeactivateProcessType)

	equipment := api.Group("/equipment")
	equipment.POST("", s.CreateEquipment)
	equipment.GET("", s.ListEquipment)
	equipment.PATCH("/:id/status", s.ChangeEquipmentStatus)
}
