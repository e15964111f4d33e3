package commands

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrUnassignDeliveryCommandIsNotConstructed = errors.New(
	"UnassignDeliveryCommand must be created via NewUnassignDeliveryCommand constructor",
)

// UnassignDeliveryCommand represents a bound driver releasing a delivery back
// to the available pool.
type UnassignDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID

	guard guard.ConstructorGuard
}

// NewUnassignDeliveryCommand creates a command to release a delivery.
func NewUnassignDeliveryCommand(deliveryID, driverID kernel.UUID) (UnassignDeliveryCommand, error) {
	cmd := UnassignDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDriverID(driverID),
	); err != nil {
		return UnassignDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UnassignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrUnassignDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being released.
func (c UnassignDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// DriverID returns the driver requesting the release.
func (c UnassignDeliveryCommand) DriverID() kernel.UUID { return c.driverID }

func (c *UnassignDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *UnassignDeliveryCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}
