package queries

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrGetMyDeliveriesQueryIsNotConstructed = errors.New(
	"GetMyDeliveriesQuery must be created via NewGetMyDeliveriesQuery constructor",
)

// GetMyDeliveriesQuery retrieves every delivery a customer has placed,
// including terminal ones, newest first.
type GetMyDeliveriesQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMyDeliveriesQuery creates a query for a customer's order history.
func NewGetMyDeliveriesQuery(customerID kernel.UUID) (GetMyDeliveriesQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetMyDeliveriesQuery{}, err
	}

	return GetMyDeliveriesQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMyDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetMyDeliveriesQueryIsNotConstructed)
}

// CustomerID returns the customer whose deliveries are listed.
func (q GetMyDeliveriesQuery) CustomerID() kernel.UUID {
	return q.customerID
}
