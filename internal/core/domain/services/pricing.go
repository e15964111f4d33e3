package services

import (
	"github.com/shopspring/decimal"

	"grameego/internal/core/domain/model/cart"
	"grameego/internal/core/domain/model/kernel"
)

// Fee schedule. Amounts are GBP.
var (
	feeBase       = decimal.NewFromFloat(2.00)
	feePerKm      = decimal.NewFromFloat(0.60)
	feeMinimum    = decimal.NewFromFloat(3.00)
	feeFlatNoDist = decimal.NewFromFloat(4.00)
)

// DeliveryPricer computes the fee and totals for a new delivery. It is a
// stateless domain service; all arithmetic is exact decimal.
type DeliveryPricer interface {
	DeliveryFee(distanceKm *float64) kernel.Money
	GrandTotal(productTotal, deliveryFee kernel.Money) kernel.Money
	PriceCart(c *cart.Cart, distanceKm *float64) (productTotal, deliveryFee, grandTotal kernel.Money, err error)
}

var _ DeliveryPricer = &Pricer{}

// Pricer is the standard fee schedule:
//
//	fee(d) = max(3.00, round2(2.00 + 0.60 * d))  when a positive distance is known
//	fee    = 4.00                                 otherwise
//
// Rounding is half-up to 2 decimal places, applied before the minimum check.
type Pricer struct{}

// NewPricer creates the standard pricer.
func NewPricer() *Pricer {
	return &Pricer{}
}

// DeliveryFee computes the fee for an estimated distance in kilometres.
// A nil or non-positive distance yields the flat fallback fee.
func (p *Pricer) DeliveryFee(distanceKm *float64) kernel.Money {
	if distanceKm == nil || *distanceKm <= 0 {
		return kernel.MoneyFromDecimal(feeFlatNoDist)
	}

	d := decimal.NewFromFloat(*distanceKm)
	fee := feeBase.Add(feePerKm.Mul(d)).Round(2)
	if fee.LessThan(feeMinimum) {
		fee = feeMinimum
	}
	return kernel.MoneyFromDecimal(fee)
}

// GrandTotal sums the product total and the delivery fee.
func (p *Pricer) GrandTotal(productTotal, deliveryFee kernel.Money) kernel.Money {
	return productTotal.Add(deliveryFee)
}

// PriceCart computes the three totals for a checkout of the given cart.
func (p *Pricer) PriceCart(c *cart.Cart, distanceKm *float64) (productTotal, deliveryFee, grandTotal kernel.Money, err error) {
	if err = c.Validate(); err != nil {
		return kernel.ZeroMoney(), kernel.ZeroMoney(), kernel.ZeroMoney(), err
	}

	productTotal = c.Total()
	deliveryFee = p.DeliveryFee(distanceKm)
	grandTotal = p.GrandTotal(productTotal, deliveryFee)
	return productTotal, deliveryFee, grandTotal, nil
}
