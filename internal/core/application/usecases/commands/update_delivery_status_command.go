package commands

import (
	"errors"

	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
	"grameego/internal/pkg/guard"
)

var ErrUpdateDeliveryStatusCommandIsNotConstructed = errors.New(
	"UpdateDeliveryStatusCommand must be created via NewUpdateDeliveryStatusCommand constructor",
)

// UpdateDeliveryStatusCommand represents the bound driver advancing a
// delivery to Picked or Delivered. Only those two targets are accepted;
// cancellation and acceptance have their own commands.
type UpdateDeliveryStatusCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	driverID   kernel.UUID
	target     delivery.Status

	guard guard.ConstructorGuard
}

// NewUpdateDeliveryStatusCommand creates a status advance command.
func NewUpdateDeliveryStatusCommand(deliveryID, driverID kernel.UUID, target delivery.Status) (UpdateDeliveryStatusCommand, error) {
	cmd := UpdateDeliveryStatusCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setDriverID(driverID),
		cmd.setTarget(target),
	); err != nil {
		return UpdateDeliveryStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateDeliveryStatusCommandIsNotConstructed)
}

// DeliveryID returns the delivery being advanced.
func (c UpdateDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// DriverID returns the driver performing the advance.
func (c UpdateDeliveryStatusCommand) DriverID() kernel.UUID { return c.driverID }

// Target returns the requested status, Picked or Delivered.
func (c UpdateDeliveryStatusCommand) Target() delivery.Status { return c.target }

func (c *UpdateDeliveryStatusCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setDriverID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.driverID = id
	return nil
}

func (c *UpdateDeliveryStatusCommand) setTarget(target delivery.Status) error {
	if target != delivery.StatusPicked && target != delivery.StatusDelivered {
		return errs.NewValidationError("status")
	}
	c.target = target
	return nil
}
