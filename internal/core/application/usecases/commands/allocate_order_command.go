package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrAllocateOrderCommandIsNotConstructed = errors.New(
	"AllocateOrderCommand must be created via NewAllocateOrderCommand constructor",
)

// AllocateOrderCommand commits quantity vehicles of an order to a production.
type AllocateOrderCommand struct { //nolint:recvcheck //using for validation
	allocationID kernel.UUID
	orderID      kernel.UUID
	productionID kernel.UUID
	quantity     int

	guard guard.ConstructorGuard
}

func NewAllocateOrderCommand(
	allocationID, orderID, productionID kernel.UUID,
	quantity int,
) (AllocateOrderCommand, error) {
	if err := errors.Join(
		requireID("allocationID", allocationID),
		requireID("orderID", orderID),
		requireID("productionID", productionID),
	); err != nil {
		return AllocateOrderCommand{}, err
	}

	return AllocateOrderCommand{
		allocationID: allocationID,
		orderID:      orderID,
		productionID: productionID,
		quantity:     quantity,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c AllocateOrderCommand) Validate() error {
	return c.guard.Validate(ErrAllocateOrderCommandIsNotConstructed)
}

func (c AllocateOrderCommand) AllocationID() kernel.UUID {
	return c.allocationID
}

func (c AllocateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AllocateOrderCommand) ProductionID() kernel.UUID {
	return c.productionID
}

func (c AllocateOrderCommand) Quantity() int {
	return c.quantity
}
