package commands

import (
	"context"

	"grameego/internal/core/domain/model/delivery"
)

// UpdateDeliveryStatusCommandHandler advances a delivery along the transit
// path. The aggregate owns the guards; the handler only routes the target
// status to the matching transition.
type UpdateDeliveryStatusCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewUpdateDeliveryStatusCommandHandler creates a handler for driver status updates.
func NewUpdateDeliveryStatusCommandHandler(uowFactory DeliveryUoWFactory) UpdateDeliveryStatusCommandHandler {
	return UpdateDeliveryStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the status advance command.
func (h *UpdateDeliveryStatusCommandHandler) Handle(ctx context.Context, cmd UpdateDeliveryStatusCommand) error {
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

	switch cmd.Target() {
	case delivery.StatusPicked:
		err = aggregate.MarkPicked(cmd.DriverID())
	case delivery.StatusDelivered:
		err = aggregate.MarkDelivered(cmd.DriverID())
	}
	if err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
