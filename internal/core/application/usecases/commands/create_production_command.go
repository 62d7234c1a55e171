package commands

import (
	"errors"
	"time"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/pkg/guard"
)

var ErrCreateProductionCommandIsNotConstructed = errors.New(
	"CreateProductionCommand must be created via NewCreateProductionCommand constructor",
)

// CreateProductionCommand plans a production run starting at startDate.
type CreateProductionCommand struct { //nolint:recvcheck //using for validation
	productionID kernel.UUID
	startDate    time.Time

	guard guard.ConstructorGuard
}

func NewCreateProductionCommand(productionID kernel.UUID, startDate time.Time) (CreateProductionCommand, error) {
	if err := errors.Join(
		requireID("productionID", productionID),
		requireDate("startDate", startDate),
	); err != nil {
		return CreateProductionCommand{}, err
	}

	return CreateProductionCommand{
		productionID: productionID,
		startDate:    startDate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateProductionCommand) Validate() error {
	return c.guard.Validate(ErrCreateProductionCommandIsNotConstructed)
}

func (c CreateProductionCommand) ProductionID() kernel.UUID {
	return c.productionID
}

func (c CreateProductionCommand) StartDate() time.Time {
	return c.startDate
}
