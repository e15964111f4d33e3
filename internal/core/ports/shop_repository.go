package ports

import (
	"context"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"
)

// ShopRepository defines the read contract for the shop catalogue. Shops and
// products are seeded data; the core only ever reads them.
type ShopRepository interface {
	// Get retrieves a shop with its full product list.
	Get(ctx context.Context, id kernel.UUID) (shop.Shop, error)

	// GetAll retrieves every shop with its products.
	GetAll(ctx context.Context) ([]shop.Shop, error)
}
