package commands

import (
	"errors"
	"time"

	"grameego/internal/pkg/guard"
)

var ErrExpireOverdueDeliveriesCommandIsNotConstructed = errors.New(
	"ExpireOverdueDeliveriesCommand must be created via NewExpireOverdueDeliveriesCommand constructor",
)

// ExpireOverdueDeliveriesCommand cancels pending unassigned deliveries whose
// need-by time has passed. Issued by the scheduled expiry job, not by users.
type ExpireOverdueDeliveriesCommand struct {
	cutoff time.Time

	guard guard.ConstructorGuard
}

// NewExpireOverdueDeliveriesCommand creates an expiry sweep for deliveries
// whose need-by time is before the given cutoff.
func NewExpireOverdueDeliveriesCommand(cutoff time.Time) (ExpireOverdueDeliveriesCommand, error) {
	if cutoff.IsZero() {
		return ExpireOverdueDeliveriesCommand{},
			errors.New("cutoff time is required")
	}

	return ExpireOverdueDeliveriesCommand{
		cutoff: cutoff,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ExpireOverdueDeliveriesCommand) Validate() error {
	return c.guard.Validate(ErrExpireOverdueDeliveriesCommandIsNotConstructed)
}

// Cutoff returns the expiry threshold.
func (c ExpireOverdueDeliveriesCommand) Cutoff() time.Time { return c.cutoff }
