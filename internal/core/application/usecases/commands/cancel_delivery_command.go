package commands

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrCancelDeliveryCommandIsNotConstructed = errors.New(
	"CancelDeliveryCommand must be created via NewCancelDeliveryCommand constructor",
)

// CancelDeliveryCommand represents the owning customer withdrawing a delivery
// that no driver has taken yet.
type CancelDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelDeliveryCommand creates a cancellation command.
func NewCancelDeliveryCommand(deliveryID, customerID kernel.UUID) (CancelDeliveryCommand, error) {
	cmd := CancelDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCustomerID(customerID),
	); err != nil {
		return CancelDeliveryCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCancelDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the delivery being cancelled.
func (c CancelDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CustomerID returns the requesting customer.
func (c CancelDeliveryCommand) CustomerID() kernel.UUID { return c.customerID }

func (c *CancelDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CancelDeliveryCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}
