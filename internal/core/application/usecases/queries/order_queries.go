package queries

import (
	"context"
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

type OrderResponse struct {
	ID                kernel.UUID
	VehicleModelID    kernel.UUID
	OrderDate         time.Time
	DueDate           time.Time
	Quantity          int
	AllocatedQuantity int
	Status            order.Status
}

type orderRow struct {
	ID                uuid.UUID
	VehicleModelID    uuid.UUID
	OrderDate         time.Time
	DueDate           time.Time
	Quantity          int
	AllocatedQuantity int
	Status            int
}

func (r orderRow) toResponse() (OrderResponse, error) {
	id, err := toID(r.ID)
	if err != nil {
		return OrderResponse{}, err
	}
	modelID, err := toID(r.VehicleModelID)
	if err != nil {
		return OrderResponse{}, err
	}
	return OrderResponse{
		ID:                id,
		VehicleModelID:    modelID,
		OrderDate:         r.OrderDate,
		DueDate:           r.DueDate,
		Quantity:          r.Quantity,
		AllocatedQuantity: r.AllocatedQuantity,
		Status:            order.Status(r.Status),
	}, nil
}

func selectOrders(db *gorm.DB) *gorm.DB {
	return db.Table("orders AS o").Select(`
		o.id,
		o.vehicle_model_id,
		o.order_date,
		o.due_date,
		o.quantity,
		COALESCE((SELECT SUM(a.quantity) FROM allocations a WHERE a.order_id = o.id), 0) AS allocated_quantity,
		o.status`)
}

type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := requireID("orderID", orderID); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	var rows []orderRow
	row, err := first(
		selectOrders(h.db.WithContext(ctx)).Where("o.id = ?", query.orderID.Bytes()),
		&rows, "order", query.orderID,
	)
	if err != nil {
		return OrderResponse{}, err
	}
	return row.toResponse()
}

// ListOrdersQuery lists orders by due date, optionally only those in one
// status.
type ListOrdersQuery struct {
	status *order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(status *order.Status) (ListOrdersQuery, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return ListOrdersQuery{}, err
		}
	}
	return ListOrdersQuery{status: status, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := selectOrders(h.db.WithContext(ctx))
	if query.status != nil {
		tx = tx.Where("o.status = ?", int(*query.status))
	}

	var rows []orderRow
	if err := tx.Order("o.due_date, o.id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	orders := make([]OrderResponse, 0, len(rows))
	for _, r := range rows {
		resp, err := r.toResponse()
		if err != nil {
			return nil, err
		}
		orders = append(orders, resp)
	}
	return orders, nil
}
