package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetMyDeliveriesQueryHandler lists a customer's deliveries from the database.
type GetMyDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetMyDeliveriesQueryHandler creates a handler for customer order history.
func NewGetMyDeliveriesQueryHandler(db *gorm.DB) GetMyDeliveriesQueryHandler {
	return GetMyDeliveriesQueryHandler{db: db}
}

// Handle returns the customer's deliveries, newest first, with items attached.
func (h GetMyDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetMyDeliveriesQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(deliverySelect+`
		WHERE d.customer_id = ?
		ORDER BY d.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
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
