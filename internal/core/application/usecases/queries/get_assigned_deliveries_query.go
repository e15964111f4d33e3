package queries

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/guard"
)

var ErrGetAssignedDeliveriesQueryIsNotConstructed = errors.New(
	"GetAssignedDeliveriesQuery must be created via NewGetAssignedDeliveriesQuery constructor",
)

// GetAssignedDeliveriesQuery retrieves the active workload of one driver:
// deliveries bound to them that are not yet delivered.
type GetAssignedDeliveriesQuery struct {
	driverID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetAssignedDeliveriesQuery creates a query for a driver's workload.
func NewGetAssignedDeliveriesQuery(driverID kernel.UUID) (GetAssignedDeliveriesQuery, error) {
	if err := driverID.Validate(); err != nil {
		return GetAssignedDeliveriesQuery{}, err
	}

	return GetAssignedDeliveriesQuery{
		driverID: driverID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetAssignedDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetAssignedDeliveriesQueryIsNotConstructed)
}

// DriverID returns the driver whose workload is listed.
func (q GetAssignedDeliveriesQuery) DriverID() kernel.UUID {
	return q.driverID
}
