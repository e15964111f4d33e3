package commands

import (
	"context"
	"errors"

	"grameego/internal/pkg/errs"
)

// ExpireOverdueDeliveriesCommandHandler sweeps pending unassigned deliveries
// past their need-by time into the Cancelled status. Assigned deliveries are
// never expired; once a driver commits, only the normal lifecycle applies.
type ExpireOverdueDeliveriesCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewExpireOverdueDeliveriesCommandHandler creates a handler for the expiry
// sweep.
func NewExpireOverdueDeliveriesCommandHandler(uowFactory DeliveryUoWFactory) ExpireOverdueDeliveriesCommandHandler {
	return ExpireOverdueDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle cancels every overdue delivery and returns how many were expired.
func (h *ExpireOverdueDeliveriesCommandHandler) Handle(
	ctx context.Context,
	cmd ExpireOverdueDeliveriesCommand,
) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.DeliveryRepository()
	overdue, err := repo.GetAllPendingUnassignedBefore(ctx, cmd.Cutoff())
	if err != nil {
		return 0, err
	}

	expired := 0
	for _, aggregate := range overdue {
		// The listing can race a driver accepting the delivery; skip any
		// aggregate the policy no longer applies to instead of failing the
		// whole sweep.
		if cancelErr := aggregate.CancelByPolicy(); cancelErr != nil {
			continue
		}

		// A conditional update losing to a concurrent accept is the same
		// race in the database; skip that delivery too.
		if err = repo.Update(ctx, aggregate); err != nil {
			if errors.Is(err, errs.ErrVersionIsInvalid) {
				continue
			}
			return 0, err
		}
		expired++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return expired, nil
}
