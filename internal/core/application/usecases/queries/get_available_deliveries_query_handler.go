package queries

import (
	"context"

	"gorm.io/gorm"

	"grameego/internal/core/domain/model/delivery"
)

// GetAvailableDeliveriesQueryHandler lists deliveries any driver may accept.
// Rejected orders never appear here, matching the assignment guard.
type GetAvailableDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetAvailableDeliveriesQueryHandler creates a handler for the open pool.
func NewGetAvailableDeliveriesQueryHandler(db *gorm.DB) GetAvailableDeliveriesQueryHandler {
	return GetAvailableDeliveriesQueryHandler{db: db}
}

// Handle returns pending unassigned deliveries, oldest first so long-waiting
// orders surface at the top of a driver's list.
func (h GetAvailableDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(deliverySelect+`
		WHERE d.status = ?
		  AND d.assigned_driver_id IS NULL
		  AND d.confirmation_status <> ?
		ORDER BY d.created_at ASC
	`, delivery.StatusPending.String(), delivery.ConfirmationRejected.String()).Rows()
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
