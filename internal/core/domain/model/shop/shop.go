// Package shop holds the read-only catalog reference data: shops and the
// products they sell. The delivery lifecycle never mutates this data; it only
// snapshots product names and prices into deliveries at creation time, so
// later catalog changes cannot retroactively affect an existing order.
package shop

import (
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

// Product is a single catalog item offered by one shop.
type Product struct {
	ID     kernel.UUID
	ShopID kernel.UUID
	Name   string
	Price  kernel.Money
}

// Validate checks structural integrity of catalog data read from persistence.
func (p Product) Validate() error {
	if err := p.ID.Validate(); err != nil {
		return err
	}
	if err := p.ShopID.Validate(); err != nil {
		return err
	}
	if p.Name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	if err := p.Price.Validate(); err != nil {
		return err
	}
	return nil
}

// Shop is a catalog entry a customer can order from.
type Shop struct {
	ID       kernel.UUID
	Name     string
	Address  string
	Products []Product
}

// Validate checks structural integrity of the shop and its products.
func (s Shop) Validate() error {
	if err := s.ID.Validate(); err != nil {
		return err
	}
	if s.Name == "" {
		return errs.NewValueIsRequiredError("shop name")
	}
	for _, p := range s.Products {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// FindProduct returns the product with the given id, or an ObjectNotFoundError
// when the shop does not sell it.
func (s Shop) FindProduct(id kernel.UUID) (Product, error) {
	for _, p := range s.Products {
		if p.ID.IsEqual(id) {
			return p, nil
		}
	}
	return Product{}, errs.NewObjectNotFoundError("product", id.String())
}
