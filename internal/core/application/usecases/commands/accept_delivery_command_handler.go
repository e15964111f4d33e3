package commands

import (
	"context"

	"grameego/internal/core/domain/model/delivery"
)

// AcceptDeliveryCommandHandler binds a driver to a delivery. The binding is
// delegated to the repository's conditional Assign so two drivers racing for
// the same delivery resolve at the store: exactly one wins, the other gets
// AlreadyAssignedError.
type AcceptDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for delivery acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory DeliveryUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the acceptance and returns the delivery as the winning
// driver now sees it.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) (*delivery.Delivery, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.DeliveryRepository().Assign(ctx, cmd.DeliveryID(), cmd.DriverID())
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
