package commands

import (
	"context"
)

// ChangeOrderInfoCommandHandler fails with a state conflict when the new
// quantity is below what is already allocated. The status is not
// re-derived.
type ChangeOrderInfoCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewChangeOrderInfoCommandHandler(uowFactory OrderUoWFactory) ChangeOrderInfoCommandHandler {
	return ChangeOrderInfoCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChangeOrderInfoCommandHandler) Handle(ctx context.Context, cmd ChangeOrderInfoCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.ChangeInfo(cmd.OrderDate(), cmd.DueDate(), cmd.Quantity()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
