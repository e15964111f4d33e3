// Package ports defines the persistence contracts between the domain layer
// and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
)

// DeliveryRepository defines the persistence contract for delivery aggregates.
//
// Plain state changes go through Update after the aggregate has applied its
// own guards. Assign is the exception: driver binding is contended, so it is
// a conditional store-level operation rather than a read-modify-write.
type DeliveryRepository interface {
	// Add persists a new delivery aggregate to storage.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery aggregate.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// Get retrieves a delivery aggregate by its unique identifier.
	// Returns the complete delivery with items, confirmation and assignment.
	Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error)

	// Assign atomically binds a driver to the delivery. The bind succeeds
	// only while the delivery is Pending, unassigned and not rejected by the
	// shop; the check and the write are a single conditional update, so under
	// concurrent accepts exactly one driver wins.
	//
	// On a failed bind the current aggregate state is re-read and the guard
	// failure is reported as the matching lifecycle error.
	Assign(ctx context.Context, id kernel.UUID, driverID kernel.UUID) (*delivery.Delivery, error)

	// GetAllPendingUnassignedBefore retrieves pending unassigned deliveries
	// whose need-by deadline passed before the cutoff. Used by the expiry job.
	GetAllPendingUnassignedBefore(ctx context.Context, cutoff time.Time) ([]*delivery.Delivery, error)
}
