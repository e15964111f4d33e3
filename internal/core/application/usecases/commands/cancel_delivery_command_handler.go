package commands

import (
	"context"
)

// CancelDeliveryCommandHandler withdraws a pending unassigned delivery on
// behalf of its customer. Cancelled deliveries stay on record in the terminal
// Cancelled status; nothing is deleted.
type CancelDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewCancelDeliveryCommandHandler creates a handler for customer cancellation.
func NewCancelDeliveryCommandHandler(uowFactory DeliveryUoWFactory) CancelDeliveryCommandHandler {
	return CancelDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelDeliveryCommandHandler) Handle(ctx context.Context, cmd CancelDeliveryCommand) error {
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

	repo := uow.DeliveryRepository()
	aggregate, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = aggregate.Cancel(cmd.CustomerID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
