package queries

import (
	"context"

	"gorm.io/gorm"

	"grameego/internal/core/domain/model/delivery"
)

// GetAssignedDeliveriesQueryHandler lists a driver's in-flight deliveries.
type GetAssignedDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAssignedDeliveriesQueryHandler creates a handler for driver workloads.
func NewGetAssignedDeliveriesQueryHandler(db *gorm.DB) GetAssignedDeliveriesQueryHandler {
	return GetAssignedDeliveriesQueryHandler{db: db}
}

// Handle returns the driver's bound deliveries in Pending or Picked status.
func (h GetAssignedDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAssignedDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(deliverySelect+`
		WHERE d.assigned_driver_id = ?
		  AND d.status IN ?
		ORDER BY d.created_at ASC
	`, query.DriverID().Bytes(),
		[]string{delivery.StatusPending.String(), delivery.StatusPicked.String()}).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries, err := scanDeliveryRows(rows)
	if err != nil {
		return nil, err
	}

	if err = attachItems(ctx, h.db, deliveries); err != nil {
		return nil, err
	}

	return deliveries, nil
}
