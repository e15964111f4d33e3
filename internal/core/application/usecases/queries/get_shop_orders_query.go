package queries

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrGetShopOrdersQueryIsNotConstructed = errors.New(
	"GetShopOrdersQuery must be created via NewGetShopOrdersQuery constructor",
)

// GetShopOrdersQuery retrieves every order placed with one shop so the shop
// can confirm or reject them and track fulfilment.
type GetShopOrdersQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopOrdersQuery creates a query for a shop's incoming orders.
func NewGetShopOrdersQuery(shopID kernel.UUID) (GetShopOrdersQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopOrdersQuery{}, err
	}

	return GetShopOrdersQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetShopOrdersQueryIsNotConstructed)
}

// ShopID returns the shop whose orders are listed.
func (q GetShopOrdersQuery) ShopID() kernel.UUID {
	return q.shopID
}
