package http

import (
	"net/http"

	"manufacturing/internal/core/application/usecases/commands"
	"manufacturing/internal/core/application/usecases/queries"
	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	vehicleModelID, err := fromAPI("vehicleModelId", body.VehicleModelId)
	if err != nil {
		return s.fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, vehicleModelID, body.OrderDate, body.DueDate, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, IdResponse{Id: toAPI(orderID)})
}

// ChangeOrderInfo handles PATCH /api/v1/orders/{id}.
func (s *Server) ChangeOrderInfo(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	var body OrderInfo
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewChangeOrderInfoCommand(orderID, body.OrderDate, body.DueDate, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.ChangeOrderInfo.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(orderID)})
}

// CancelOrder handles PATCH /api/v1/orders/{id}/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	return s.changeOrderStatus(ctx, commands.CancelOrder)
}

// CompleteOrder handles PATCH /api/v1/orders/{id}/complete.
func (s *Server) CompleteOrder(ctx echo.Context) error {
	return s.changeOrderStatus(ctx, commands.CompleteOrder)
}

func (s *Server) changeOrderStatus(ctx echo.Context, action commands.OrderAction) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, action)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err = s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, IdResponse{Id: toAPI(orderID)})
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathID(ctx, "id")
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToAPI(o))
}

// ListOrders handles GET /api/v1/orders?status=.
func (s *Server) ListOrders(ctx echo.Context) error {
	raw, err := queryString(ctx, "status")
	if err != nil {
		return s.fail(ctx, err)
	}

	status, err := parseOptional(raw, order.ParseStatus)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return s.fail(ctx, err)
	}

	orders, err := s.queries.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]Order, len(orders))
	for i, o := range orders {
		response[i] = orderToAPI(o)
	}

	return ctx.JSON(http.StatusOK, response)
}

func orderToAPI(o queries.OrderResponse) Order {
	return Order{
		Id:                toAPI(o.ID),
		VehicleModelId:    toAPI(o.VehicleModelID),
		OrderDate:         o.OrderDate,
		DueDate:           o.DueDate,
		Quantity:          o.Quantity,
		AllocatedQuantity: o.AllocatedQuantity,
		Status:            o.Status.String(),
	}
}
