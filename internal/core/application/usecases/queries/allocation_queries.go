package queries

import (
	"context"
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/order"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/pkg/guard"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrGetAllocationQueryIsNotConstructed = errors.New(
		"GetAllocationQuery must be created via NewGetAllocationQuery constructor",
	)
	ErrListAllocationsQueryIsNotConstructed = errors.New(
		"ListAllocationsQuery must be created via NewListAllocationsQuery constructor",
	)
)

// AllocationResponse carries the link together with the status of both ends.
type AllocationResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	ProductionID     kernel.UUID
	Quantity         int
	OrderStatus      order.Status
	ProductionStatus production.Status
}

type allocationRow struct {
	ID               uuid.UUID
	OrderID          uuid.UUID
	ProductionID     uuid.UUID
	Quantity         int
	OrderStatus      int
	ProductionStatus int
}

func (r allocationRow) toResponse() (AllocationResponse, error) {
	id, err := toID(r.ID)
	if err != nil {
		return AllocationResponse{}, err
	}
	orderID, err := toID(r.OrderID)
	if err != nil {
		return AllocationResponse{}, err
	}
	productionID, err := toID(r.ProductionID)
	if err != nil {
		return AllocationResponse{}, err
	}
	return AllocationResponse{
		ID:               id,
		OrderID:          orderID,
		ProductionID:     productionID,
		Quantity:         r.Quantity,
		OrderStatus:      order.Status(r.OrderStatus),
		ProductionStatus: production.Status(r.ProductionStatus),
	}, nil
}

func selectAllocations(db *gorm.DB) *gorm.DB {
	return db.Table("allocations AS a").
		Select("a.id, a.order_id, a.production_id, a.quantity, o.status AS order_status, p.status AS production_status").
		Joins("JOIN orders o ON o.id = a.order_id").
		Joins("JOIN productions p ON p.id = a.production_id")
}

type GetAllocationQuery struct {
	allocationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetAllocationQuery(allocationID kernel.UUID) (GetAllocationQuery, error) {
	if err := requireID("allocationID", allocationID); err != nil {
		return GetAllocationQuery{}, err
	}
	return GetAllocationQuery{allocationID: allocationID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAllocationQuery) Validate() error {
	return q.guard.Validate(ErrGetAllocationQueryIsNotConstructed)
}

type GetAllocationQueryHandler struct {
	db *gorm.DB
}

func NewGetAllocationQueryHandler(db *gorm.DB) GetAllocationQueryHandler {
	return GetAllocationQueryHandler{db: db}
}

func (h GetAllocationQueryHandler) Handle(ctx context.Context, query GetAllocationQuery) (AllocationResponse, error) {
	if err := query.Validate(); err != nil {
		return AllocationResponse{}, err
	}

	var rows []allocationRow
	row, err := first(
		selectAllocations(h.db.WithContext(ctx)).Where("a.id = ?", query.allocationID.Bytes()),
		&rows, "allocation", query.allocationID,
	)
	if err != nil {
		return AllocationResponse{}, err
	}
	return row.toResponse()
}

// ListAllocationsQuery filters by order, by production, both or neither.
type ListAllocationsQuery struct {
	orderID      *kernel.UUID
	productionID *kernel.UUID

	guard guard.ConstructorGuard
}

func NewListAllocationsQuery(orderID, productionID *kernel.UUID) (ListAllocationsQuery, error) {
	if err := errors.Join(optionalID(orderID), optionalID(productionID)); err != nil {
		return ListAllocationsQuery{}, err
	}
	return ListAllocationsQuery{
		orderID:      orderID,
		productionID: productionID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListAllocationsQuery) Validate() error {
	return q.guard.Validate(ErrListAllocationsQueryIsNotConstructed)
}

type ListAllocationsQueryHandler struct {
	db *gorm.DB
}

func NewListAllocationsQueryHandler(db *gorm.DB) ListAllocationsQueryHandler {
	return ListAllocationsQueryHandler{db: db}
}

func (h ListAllocationsQueryHandler) Handle(ctx context.Context, query ListAllocationsQuery) ([]AllocationResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	tx := selectAllocations(h.db.WithContext(ctx))
	if query.orderID != nil {
		tx = tx.Where("a.order_id = ?", query.orderID.Bytes())
	}
	if query.productionID != nil {
		tx = tx.Where("a.production_id = ?", query.productionID.Bytes())
	}

	var rows []allocationRow
	if err := tx.Order("a.order_id, a.production_id").Scan(&rows).Error; err != nil {
		return nil, err
	}

	allocations := make([]AllocationResponse, 0, len(rows))
	for _, r := range rows {
		resp, err := r.toResponse()
		if err != nil {
			return nil, err
		}
		allocations = append(allocations, resp)
	}
	return allocations, nil
}
