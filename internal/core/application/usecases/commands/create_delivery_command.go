package commands

import (
	"errors"
	"time"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
	"grameego/internal/pkg/guard"
)

var ErrCreateDeliveryCommandIsNotConstructed = errors.New(
	"CreateDeliveryCommand must be created via NewCreateDeliveryCommand constructor",
)

// OrderLine is one requested product with its quantity.
type OrderLine struct {
	ProductID kernel.UUID
	Quantity  int
}

// CreateDeliveryCommand represents a customer's checkout: the selected shop,
// the order lines, and the delivery details. Pricing is not part of the
// command; totals are computed by the handler so clients cannot supply them.
type CreateDeliveryCommand struct { //nolint:recvcheck //using for validation
	deliveryID          kernel.UUID
	customerID          kernel.UUID
	shopID              kernel.UUID
	lines               []OrderLine
	contactNumber       string
	village             string
	estimatedDistanceKm *float64
	needBy              *time.Time

	guard guard.ConstructorGuard
}

// NewCreateDeliveryCommand creates a checkout command. Validates identifiers,
// requires contact number, village and at least one line with a positive
// quantity, and rejects a non-positive distance estimate.
func NewCreateDeliveryCommand(
	deliveryID kernel.UUID,
	customerID kernel.UUID,
	shopID kernel.UUID,
	lines []OrderLine,
	contactNumber string,
	village string,
	estimatedDistanceKm *float64,
	needBy *time.Time,
) (CreateDeliveryCommand, error) {
	cmd := CreateDeliveryCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setDeliveryID(deliveryID),
		cmd.setCustomerID(customerID),
		cmd.setShopID(shopID),
		cmd.setLines(lines),
		cmd.setContactNumber(contactNumber),
		cmd.setVillage(village),
		cmd.setDistance(estimatedDistanceKm),
	); err != nil {
		return CreateDeliveryCommand{}, err
	}

	cmd.needBy = needBy
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCreateDeliveryCommandIsNotConstructed)
}

// DeliveryID returns the identifier the new delivery will be stored under.
func (c CreateDeliveryCommand) DeliveryID() kernel.UUID { return c.deliveryID }

// CustomerID returns the ordering customer.
func (c CreateDeliveryCommand) CustomerID() kernel.UUID { return c.customerID }

// ShopID returns the shop the order is placed with.
func (c CreateDeliveryCommand) ShopID() kernel.UUID { return c.shopID }

// Lines returns the requested order lines.
func (c CreateDeliveryCommand) Lines() []OrderLine {
	out := make([]OrderLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// ContactNumber returns the customer's contact number.
func (c CreateDeliveryCommand) ContactNumber() string { return c.contactNumber }

// Village returns the destination village/address.
func (c CreateDeliveryCommand) Village() string { return c.village }

// EstimatedDistanceKm returns the optional distance estimate.
func (c CreateDeliveryCommand) EstimatedDistanceKm() *float64 { return c.estimatedDistanceKm }

// NeedBy returns the optional need-by deadline.
func (c CreateDeliveryCommand) NeedBy() *time.Time { return c.needBy }

func (c *CreateDeliveryCommand) setDeliveryID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.deliveryID = id
	return nil
}

func (c *CreateDeliveryCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.customerID = id
	return nil
}

func (c *CreateDeliveryCommand) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.shopID = id
	return nil
}

func (c *CreateDeliveryCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValidationError("lines")
	}
	for _, line := range lines {
		if err := line.ProductID.Validate(); err != nil {
			return err
		}
		if line.Quantity <= 0 {
			return errs.NewValidationError("quantity")
		}
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}

func (c *CreateDeliveryCommand) setContactNumber(contact string) error {
	if contact == "" {
		return errs.NewValidationError("contactNumber")
	}
	c.contactNumber = contact
	return nil
}

func (c *CreateDeliveryCommand) setVillage(village string) error {
	if village == "" {
		return errs.NewValidationError("village")
	}
	c.village = village
	return nil
}

func (c *CreateDeliveryCommand) setDistance(distanceKm *float64) error {
	if distanceKm != nil && *distanceKm <= 0 {
		return errs.NewValidationError("estimatedDistanceKm")
	}
	c.estimatedDistanceKm = distanceKm
	return nil
}
