package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand registers a customer order for quantity vehicles of one
// model. Dates and quantity are checked again by the order aggregate.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), modelID, today, today.AddDate(0, 1, 0), 10)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID        kernel.UUID
	vehicleModelID kernel.UUID
	orderDate      time.Time
	dueDate        time.Time
	quantity       int

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(
	orderID kernel.UUID,
	vehicleModelID kernel.UUID,
	orderDate, dueDate time.Time,
	quantity int,
) (CreateOrderCommand, error) {
	if err := errors.Join(
		requireID("orderID", orderID),
		requireID("vehicleModelID", vehicleModelID),
		requireDate("orderDate", orderDate),
		requireDate("dueDate", dueDate),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return CreateOrderCommand{
		orderID:        orderID,
		vehicleModelID: vehicleModelID,
		orderDate:      orderDate,
		dueDate:        dueDate,
		quantity:       quantity,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) VehicleModelID() kernel.UUID {
	return c.vehicleModelID
}

func (c CreateOrderCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c CreateOrderCommand) DueDate() time.Time {
	return c.dueDate
}

func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}
