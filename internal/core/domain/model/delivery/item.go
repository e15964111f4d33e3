package delivery

import (
	"fmt"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

// ItemSnapshot freezes one cart line at order creation time: product identity,
// display name, quantity and the unit price the customer saw. Snapshots are
// immutable after creation so later catalog price changes never retroactively
// affect an existing order.
type ItemSnapshot struct {
	ProductID kernel.UUID
	Name      string
	Quantity  int
	UnitPrice kernel.Money
}

// Validate checks structural integrity of the snapshot.
func (i ItemSnapshot) Validate() error {
	if err := i.ProductID.Validate(); err != nil {
		return err
	}
	if i.Name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	if i.Quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("item quantity",
			fmt.Errorf("%d is not greater than 0", i.Quantity))
	}
	if err := i.UnitPrice.Validate(); err != nil {
		return err
	}
	return nil
}

// LineTotal returns unit price times quantity.
func (i ItemSnapshot) LineTotal() kernel.Money {
	return i.UnitPrice.MulInt(i.Quantity)
}
