package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetShopOrdersQueryHandler lists a shop's incoming orders, newest first.
type GetShopOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetShopOrdersQueryHandler creates a handler for shop order listings.
func NewGetShopOrdersQueryHandler(db *gorm.DB) GetShopOrdersQueryHandler {
	return GetShopOrdersQueryHandler{db: db}
}

// Handle returns all orders placed with the shop, including decided and
// terminal ones.
func (h GetShopOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetShopOrdersQuery,
) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(deliverySelect+`
		WHERE d.shop_id = ?
		ORDER BY d.created_at DESC
	`, query.ShopID().Bytes()).Rows()
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
