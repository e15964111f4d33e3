package queries

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrGetDeliveryQueryIsNotConstructed = errors.New(
	"GetDeliveryQuery must be created via NewGetDeliveryQuery constructor",
)

// GetDeliveryQuery retrieves one delivery by its identifier.
type GetDeliveryQuery struct {
	deliveryID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDeliveryQuery creates a query for a single delivery.
func NewGetDeliveryQuery(deliveryID kernel.UUID) (GetDeliveryQuery, error) {
	if err := deliveryID.Validate(); err != nil {
		return GetDeliveryQuery{}, err
	}

	return GetDeliveryQuery{
		deliveryID: deliveryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryQueryIsNotConstructed)
}

// DeliveryID returns the requested delivery.
func (q GetDeliveryQuery) DeliveryID() kernel.UUID {
	return q.deliveryID
}
