package commands

import (
	"errors"

	"manufacturing/internal/pkg/guard"
)

var ErrCompleteFulfilledOrdersCommandIsNotConstructed = errors.New(
	"CompleteFulfilledOrdersCommand must be created via NewCompleteFulfilledOrdersCommand constructor",
)

// CompleteFulfilledOrdersCommand sweeps fully allocated orders and completes
// those whose productions have all finished.
type CompleteFulfilledOrdersCommand struct { //nolint:recvcheck //using for validation
	guard guard.ConstructorGuard
}

func NewCompleteFulfilledOrdersCommand() CompleteFulfilledOrdersCommand {
	return CompleteFulfilledOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c CompleteFulfilledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCompleteFulfilledOrdersCommandIsNotConstructed)
}
