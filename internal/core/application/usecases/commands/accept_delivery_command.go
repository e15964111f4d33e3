package commands

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand represents a driver's claim on a pending delivery.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewAcceptDeliveryCommand creates a command for a driver to accept a delivery.
func NewAcceptDeliveryCommand(deliveryID, driverID kernel.UUID) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDriverID(driverID),
	); err != nil {
		return AcceptDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being claimed.
func (c AcceptDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// DriverID returns the claiming driver.
func (c AcceptDeliveryCommand) DriverID() kernel.UUID { return c.driverID }

func (c *AcceptDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *AcceptDeliveryCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}
