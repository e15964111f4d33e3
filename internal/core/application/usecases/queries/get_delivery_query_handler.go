package queries

import (
	"context"

	"gorm.io/gorm"

	"grameego/internal/pkg/errs"
)

// GetDeliveryQueryHandler reads one delivery with its items and driver.
type GetDeliveryQueryHandler struct {
	db *gorm.DB
}

// NewGetDeliveryQueryHandler creates a handler for single delivery reads.
func NewGetDeliveryQueryHandler(db *gorm.DB) GetDeliveryQueryHandler {
	return GetDeliveryQueryHandler{db: db}
}

// Handle returns the delivery or ObjectNotFoundError.
func (h GetDeliveryQueryHandler) Handle(
	ctx context.Context,
	query GetDeliveryQuery,
) (DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return DeliveryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(deliverySelect+`
		WHERE d.id = ?
	`, query.DeliveryID().Bytes()).Rows()
	if err != nil {
		return DeliveryResponse{}, err
	}
	defer rows.Close()

	deliveries, err := scanDeliveryRows(rows)
	if err != nil {
		return DeliveryResponse{}, err
	}
	if len(deliveries) == 0 {
		return DeliveryResponse{}, errs.NewObjectNotFoundError("deliveryID", query.DeliveryID().String())
	}

	if err = attachItems(ctx, h.db, deliveries); err != nil {
		return DeliveryResponse{}, err
	}

	return deliveries[0], nil
}
