package commands

import (
	"errors"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrDeallocateOrderCommandIsNotConstructed = errors.New(
	"DeallocateOrderCommand must be created via NewDeallocateOrderCommand constructor",
)

type DeallocateOrderCommand struct { //nolint:recvcheck //using for validation
	allocationID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeallocateOrderCommand(allocationID kernel.UUID) (DeallocateOrderCommand, error) {
	if err := requireID("allocationID", allocationID); err != nil {
		return DeallocateOrderCommand{}, err
	}

	return DeallocateOrderCommand{
		allocationID: allocationID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c DeallocateOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeallocateOrderCommandIsNotConstructed)
}

func (c DeallocateOrderCommand) AllocationID() kernel.UUID {
	return c.allocationID
}
