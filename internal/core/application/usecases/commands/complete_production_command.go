package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrCompleteProductionCommandIsNotConstructed = errors.New(
	"CompleteProductionCommand must be created via NewCompleteProductionCommand constructor",
)

// CompleteProductionCommand finishes a production at endDate and registers
// one produced vehicle per serial number. Serial numbers are checked by the
// handler so that a bad entry aborts the whole completion.
type CompleteProductionCommand struct { //nolint:recvcheck //using for validation
	productionID  kernel.UUID
	endDate       time.Time
	serialNumbers []string

	guard guard.ConstructorGuard
}

func NewCompleteProductionCommand(
	productionID kernel.UUID,
	endDate time.Time,
	serialNumbers []string,
) (CompleteProductionCommand, error) {
	if err := errors.Join(
		requireID("productionID", productionID),
		requireDate("endDate", endDate),
	); err != nil {
		return CompleteProductionCommand{}, err
	}

	serials := make([]string, len(serialNumbers))
	copy(serials, serialNumbers)

	return CompleteProductionCommand{
		productionID:  productionID,
		endDate:       endDate,
		serialNumbers: serials,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CompleteProductionCommand) Validate() error {
	return c.guard.Validate(ErrCompleteProductionCommandIsNotConstructed)
}

func (c CompleteProductionCommand) ProductionID() kernel.UUID {
	return c.productionID
}

func (c CompleteProductionCommand) EndDate() time.Time {
	return c.endDate
}

func (c CompleteProductionCommand) SerialNumbers() []string {
	out := make([]string, len(c.serialNumbers))
	copy(out, c.serialNumbers)
	return out
}
