package commands

import (
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// OrderAction is a manual order transition.
type OrderAction string

const (
	CancelOrder   OrderAction = "cancel"
	CompleteOrder OrderAction = "complete"
)

func (a OrderAction) Validate() error {
	switch a {
	case CancelOrder, CompleteOrder:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not an order action", string(a)))
	}
}

// ChangeOrderStatusCommand cancels or completes an order. Cancelling an
// already cancelled order succeeds without changes.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	action  OrderAction

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, action OrderAction) (ChangeOrderStatusCommand, error) {
	if err := errors.Join(requireID("orderID", orderID), action.Validate()); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return ChangeOrderStatusCommand{
		orderID: orderID,
		action:  action,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ChangeOrderStatusCommand) Action() OrderAction {
	return c.action
}
