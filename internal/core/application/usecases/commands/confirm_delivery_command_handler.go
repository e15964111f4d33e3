package commands

import (
	"context"
	"time"

	"grameego/internal/core/domain/model/delivery"
)

// ConfirmDeliveryCommandHandler records a shop's accept/reject decision. The
// decision is write-once; rejecting releases any bound driver and permanently
// removes the order from the driver pool.
type ConfirmDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
	now        func() time.Time
}

// NewConfirmDeliveryCommandHandler creates a handler for shop confirmation.
func NewConfirmDeliveryCommandHandler(uowFactory DeliveryUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle processes the confirmation command and returns the delivery with
// the recorded decision.
func (h *ConfirmDeliveryCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmDeliveryCommand,
) (*delivery.Delivery, error) {
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

	repo := uow.DeliveryRepository()
	aggregate, err := repo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.Confirm(cmd.ShopID(), cmd.Action(), cmd.Note(), h.now()); err != nil {
		return nil, err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
