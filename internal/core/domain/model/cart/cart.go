// Package cart implements the order draft a customer builds before placing a
// delivery: the selected shop plus product lines with quantities. A cart is
// scoped to exactly one shop at a time; selecting a different shop clears it
// so two shops' items can never mix into one order.
package cart

import (
	"errors"
	"fmt"
	"strings"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"
	"grameego/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart was not created via NewCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart")

	// ErrNoShopSelected is returned when items are added before a shop is chosen.
	ErrNoShopSelected = errors.New("a shop must be selected before adding items")
)

// Line is one product entry in the cart. Quantity is always greater than
// zero: a line decremented to zero is removed, never stored as zero.
type Line struct {
	Product  shop.Product
	Quantity int
}

// Cart accumulates selected products for a single shop.
//
// Invariants:
//   - all lines belong to the selected shop
//   - every stored line has Quantity > 0
//   - line order follows first insertion (stable for descriptions and snapshots)
//
// Cart is not safe for concurrent use; each actor session owns its own cart.
type Cart struct {
	shopID   kernel.UUID
	hasShop  bool
	lines    []*Line
	lineByID map[string]*Line

	isConstructed bool
}

// NewCart creates an empty cart with no shop selected.
func NewCart() *Cart {
	return &Cart{
		lineByID:      make(map[string]*Line),
		isConstructed: true,
	}
}

// Validate ensures the cart was created via NewCart.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

// SelectShop scopes the cart to the given shop. Selecting a different shop
// than the current one clears all lines; re-selecting the same shop keeps them.
func (c *Cart) SelectShop(s shop.Shop) error {
	if err := s.ID.Validate(); err != nil {
		return err
	}
	if c.hasShop && c.shopID.IsEqual(s.ID) {
		return nil
	}
	c.Clear()
	c.shopID = s.ID
	c.hasShop = true
	return nil
}

// ShopID returns the selected shop's id and whether a shop is selected.
func (c *Cart) ShopID() (kernel.UUID, bool) {
	return c.shopID, c.hasShop
}

// AddItem increments the quantity for the product by one, creating the line
// if absent. The product must belong to the selected shop.
func (c *Cart) AddItem(p shop.Product) error {
	if !c.hasShop {
		return ErrNoShopSelected
	}
	if !p.ShopID.IsEqual(c.shopID) {
		return errs.NewValueIsInvalidErrorWithCause("product",
			fmt.Errorf("product %s belongs to another shop", p.ID))
	}

	key := p.ID.String()
	if line, ok := c.lineByID[key]; ok {
		line.Quantity++
		return nil
	}

	line := &Line{Product: p, Quantity: 1}
	c.lines = append(c.lines, line)
	c.lineByID[key] = line
	return nil
}

// RemoveItem decrements the quantity for the product by one, removing the
// line entirely when it reaches zero. Removing an absent product is a no-op.
func (c *Cart) RemoveItem(productID kernel.UUID) {
	key := productID.String()
	line, ok := c.lineByID[key]
	if !ok {
		return
	}

	line.Quantity--
	if line.Quantity > 0 {
		return
	}

	delete(c.lineByID, key)
	for i, l := range c.lines {
		if l == line {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
}

// Total returns the exact sum of unit price times quantity over all lines.
func (c *Cart) Total() kernel.Money {
	total := kernel.ZeroMoney()
	for _, line := range c.lines {
		total = total.Add(line.Product.Price.MulInt(line.Quantity))
	}
	return total
}

// ItemCount returns the total number of items across all lines.
func (c *Cart) ItemCount() int {
	count := 0
	for _, line := range c.lines {
		count += line.Quantity
	}
	return count
}

// Lines returns the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, 0, len(c.lines))
	for _, line := range c.lines {
		out = append(out, *line)
	}
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear empties all lines. Called after an order is created and when the
// customer switches shops.
func (c *Cart) Clear() {
	c.lines = nil
	c.lineByID = make(map[string]*Line)
}

// Description renders the cart as "Name x2, Other x1" for the delivery's
// item description field.
func (c *Cart) Description() string {
	parts := make([]string, 0, len(c.lines))
	for _, line := range c.lines {
		parts = append(parts, fmt.Sprintf("%s x%d", line.Product.Name, line.Quantity))
	}
	return strings.Join(parts, ", ")
}
