package commands

import (
	"errors"

	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand represents a shop recording its one-time accept or
// reject decision for an order, with an optional note.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID kernel.UUID
	shopID     kernel.UUID
	action     delivery.ConfirmationAction
	note       string

	guard guard.ConstructorGuard
}

// NewConfirmDeliveryCommand creates a confirmation command.
func NewConfirmDeliveryCommand(deliveryID, shopID kernel.UUID, action delivery.ConfirmationAction, note string) (ConfirmDeliveryCommand, error) {
	cmd := ConfirmDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setShopID(shopID),
		cmd.setAction(action),
	); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	cmd.note = note
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the order being decided.
func (c ConfirmDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// ShopID returns the deciding shop.
func (c ConfirmDeliveryCommand) ShopID() kernel.UUID { return c.shopID }

// Action returns the decision, accept or reject.
func (c ConfirmDeliveryCommand) Action() delivery.ConfirmationAction { return c.action }

// Note returns the optional decision note.
func (c ConfirmDeliveryCommand) Note() string { return c.note }

func (c *ConfirmDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *ConfirmDeliveryCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}

func (c *ConfirmDeliveryCommand) setAction(action delivery.ConfirmationAction) error {
	_, err := delivery.ParseConfirmationAction(string(action))
	if err != nil {
		return err
	}
	c.action = action
	return nil
}
