package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrChangeOrderInfoCommandIsNotConstructed = errors.New(
	"ChangeOrderInfoCommand must be created via NewChangeOrderInfoCommand constructor",
)

// ChangeOrderInfoCommand replaces the dates and quantity of an order.
type ChangeOrderInfoCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	orderDate time.Time
	dueDate   time.Time
	quantity  int

	guard guard.ConstructorGuard
}

func NewChangeOrderInfoCommand(
	orderID kernel.UUID,
	orderDate, dueDate time.Time,
	quantity int,
) (ChangeOrderInfoCommand, error) {
	if err := requireID("orderID", orderID); err != nil {
		return ChangeOrderInfoCommand{}, err
	}

	return ChangeOrderInfoCommand{
		orderID:   orderID,
		orderDate: orderDate,
		dueDate:   dueDate,
		quantity:  quantity,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderInfoCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderInfoCommandIsNotConstructed)
}

func (c ChangeOrderInfoCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderInfoCommand) OrderDate() time.Time {
	return c.orderDate
}

func (c ChangeOrderInfoCommand) DueDate() time.Time {
	return c.dueDate
}

func (c ChangeOrderInfoCommand) Quantity() int {
	return c.quantity
}
