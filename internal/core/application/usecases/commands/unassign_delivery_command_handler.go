package commands

import (
	"context"
)

// UnassignDeliveryCommandHandler releases a delivery from its bound driver.
// The aggregate enforces that only the bound driver may release and only
// while the delivery is still Pending.
type UnassignDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUnassignDeliveryCommandHandler creates a handler for delivery release.
func NewUnassignDeliveryCommandHandler(uowFactory DeliveryUoWFactory) UnassignDeliveryCommandHandler {
	return UnassignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the release command.
func (h *UnassignDeliveryCommandHandler) Handle(ctx context.Context, cmd UnassignDeliveryCommand) error {
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

	if err = aggregate.Unassign(cmd.DriverID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
