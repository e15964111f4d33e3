package queries

import (
	"errors"

	"grameego/internal/pkg/guard"
)

var ErrGetAvailableDeliveriesQueryIsNotConstructed = errors.New(
	"GetAvailableDeliveriesQuery must be created via NewGetAvailableDeliveriesQuery constructor",
)

// GetAvailableDeliveriesQuery retrieves the pool a driver can pick from:
// Pending, unassigned, not rejected by the shop.
type GetAvailableDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDeliveriesQuery creates a query for the open delivery pool.
func NewGetAvailableDeliveriesQuery() GetAvailableDeliveriesQuery {
	return GetAvailableDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDeliveriesQueryIsNotConstructed)
}
