package commands

import (
	"context"
	"errors"
	"fmt"

	"manufacturing/internal/core/domain/model/kernel"
	"manufacturing/internal/core/domain/model/production"
	"manufacturing/internal/pkg/errs"
	"manufacturing/internal/pkg/guard"
)

var ErrChangeProductionStatusCommandIsNotConstructed = errors.New(
	"ChangeProductionStatusCommand must be created via NewChangeProductionStatusCommand constructor",
)

// ProductionAction is a production transition other than completion, which
// goes through CompleteProductionCommand.
type ProductionAction string

const (
	StartProduction   ProductionAction = "start"
	StopProduction    ProductionAction = "stop"
	RestartProduction ProductionAction = "restart"
	CancelProduction  ProductionAction = "cancel"
)

func (a ProductionAction) Validate() error {
	switch a {
	case StartProduction, StopProduction, RestartProduction, CancelProduction:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("%q is not a production action", string(a)))
	}
}

func (a ProductionAction) apply(p *production.Production) error {
	switch a {
	case StartProduction:
		return p.Start()
	case StopProduction:
		return p.Stop()
	case RestartProduction:
		return p.Restart()
	default:
		return p.Cancel()
	}
}

type ChangeProductionStatusCommand struct { //nolint:recvcheck //using for validation
	productionID kernel.UUID
	action       ProductionAction

	guard guard.ConstructorGuard
}

func NewChangeProductionStatusCommand(
	productionID kernel.UUID,
	action ProductionAction,
) (ChangeProductionStatusCommand, error) {
	if err := errors.Join(requireID("productionID", productionID), action.Validate()); err != nil {
		return ChangeProductionStatusCommand{}, err
	}

	return ChangeProductionStatusCommand{
		productionID: productionID,
		action:       action,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c ChangeProductionStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeProductionStatusCommandIsNotConstructed)
}

func (c ChangeProductionStatusCommand) ProductionID() kernel.UUID {
	return c.productionID
}

func (c ChangeProductionStatusCommand) Action() ProductionAction {
	return c.action
}

type ChangeProductionStatusCommandHandler struct {
	uowFactory ProductionUoWFactory
}

func NewChangeProductionStatusCommandHandler(uowFactory ProductionUoWFactory) ChangeProductionStatusCommandHandler {
	return ChangeProductionStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeProductionStatusCommandHandler) Handle(ctx context.Context, cmd ChangeProductionStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ProductionRepository()
	p, err := repo.Get(ctx, cmd.ProductionID())
	if err != nil {
		return err
	}

	if err = cmd.Action().apply(p); err != nil {
		return err
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
