package queries

import (
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var (
	ErrGetShopsQueryIsNotConstructed = errors.New(
		"GetShopsQuery must be created via NewGetShopsQuery constructor",
	)
	ErrGetShopQueryIsNotConstructed = errors.New(
		"GetShopQuery must be created via NewGetShopQuery constructor",
	)
)

// GetShopsQuery retrieves the full shop catalogue.
type GetShopsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetShopsQuery creates a query for all shops with their products.
func NewGetShopsQuery() GetShopsQuery {
	return GetShopsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetShopsQuery) Validate() error {
	return q.guard.Validate(ErrGetShopsQueryIsNotConstructed)
}

// GetShopQuery retrieves one shop with its products.
type GetShopQuery struct {
	shopID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetShopQuery creates a query for a single shop.
func NewGetShopQuery(shopID kernel.UUID) (GetShopQuery, error) {
	if err := shopID.Validate(); err != nil {
		return GetShopQuery{}, err
	}

	return GetShopQuery{
		shopID: shopID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetShopQuery) Validate() error {
	return q.guard.Validate(ErrGetShopQueryIsNotConstructed)
}

// ShopID returns the requested shop.
func (q GetShopQuery) ShopID() kernel.UUID {
	return q.shopID
}

// ProductResponse is one catalogue item.
type ProductResponse struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ShopResponse is the read model of a shop and its catalogue.
type ShopResponse struct {
	ID       uuid.UUID         `json:"id"`
	Name     string            `json:"name"`
	Address  string            `json:"address"`
	Products []ProductResponse `json:"products"`
}
