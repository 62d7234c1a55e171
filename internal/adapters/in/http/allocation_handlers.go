package http

import (
	"errors"
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateAllocation handles POST /api/v1/allocations.
func (s *Server) CreateAllocation(ctx echo.Context) error {
	var body NewAllocation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, errOrder := fromAPI("orderId", body.OrderId)
	productionID, errProduction := fromAPI("productionId", body.ProductionId)
	if err := errors.Join(errOrder, errProduction); err != nil {
		return s.fail(ctx, err)
	}

	allocationID := kernel.NewUUID()
	cmd, err := commands.NewAllocateOrderCommand(allocationID, orderID, productionID, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.AllocateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IdResponse{Id: toAPI(allocationID)})
}

// DeleteAllocation handles DELETE /api/v1/allocations/{id}.
func (s *Server) DeleteAllocation(ctx echo.Context) error {
	allocationID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeallocateOrderCommand(allocationID)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.DeallocateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetAllocation handles GET /api/v1/allocations/{id}.
func (s *Server) GetAllocation(ctx echo.Context) error {
	allocationID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetAllocationQuery(allocationID)
	if err != nil {
		return s.fail(ctx, err)
	}

	a, err := s.queries.GetAllocation.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, allocationToAPI(a))
}

// ListAllocations handles GET /api/v1/allocations?orderId=&productionId=.
func (s *Server) ListAllocations(ctx echo.Context) error {
	orderID, errOrder := queryID(ctx, "orderId")
	productionID, errProduction := queryID(ctx, "productionId")
	if err := errors.Join(errOrder, errProduction); err != nil {
		return s.fail(ctx, err)
	}
	return s.listAllocations(ctx, orderID, productionID)
}

// ListOrderAllocations handles GET /api/v1/allocations/order/{orderId}.
func (s *Server) ListOrderAllocations(ctx echo.Context) error {
	orderID, err := pathID(ctx, "orderId")
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listAllocations(ctx, &orderID, nil)
}

// ListProductionAllocations handles GET /api/v1/allocations/production/{productionId}.
func (s *Server) ListProductionAllocations(ctx echo.Context) error {
	productionID, err := pathID(ctx, "productionId")
	if err != nil {
		return s.fail(ctx, err)
	}
	return s.listAllocations(ctx, nil, &productionID)
}

func (s *Server) listAllocations(ctx echo.Context, orderID, productionID *kernel.UUID) error {
	query, err := queries.NewListAllocationsQuery(orderID, productionID)
	if err != nil {
		return s.fail(ctx, err)
	}

	allocations, err := s.queries.ListAllocations.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Allocation, len(allocations))
	for i, a := range allocations {
		response[i] = allocationToAPI(a)
	}

	return ctx.JSON(http.StatusOK, response)
}

func allocationToAPI(a queries.AllocationResponse) Allocation {
	return Allocation{
		Id:               toAPI(a.ID),
		OrderId:          toAPI(a.OrderID),
		ProductionId:     toAPI(a.ProductionID),
		Quantity:         a.Quantity,
		OrderStatus:      a.OrderStatus.String(),
		ProductionStatus: a.ProductionStatus.String(),
	}
}
