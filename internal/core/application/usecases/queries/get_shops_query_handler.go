package queries

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"grameego/internal/pkg/errs"
)

// GetShopsQueryHandler lists the shop catalogue from the database.
type GetShopsQueryHandler struct {
	db *gorm.DB
}

// NewGetShopsQueryHandler creates a handler for catalogue listings.
func NewGetShopsQueryHandler(db *gorm.DB) GetShopsQueryHandler {
	return GetShopsQueryHandler{db: db}
}

// Handle returns every shop with its products, ordered by name.
func (h GetShopsQueryHandler) Handle(
	ctx context.Context,
	query GetShopsQuery,
) ([]ShopResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.address,
			p.id,
			p.name,
			p.price
		FROM shops s
		LEFT JOIN products p ON p.shop_id = s.id
		ORDER BY s.name, p.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanShopRows(rows)
}

// GetShopQueryHandler reads one shop with its products.
type GetShopQueryHandler struct {
	db *gorm.DB
}

// NewGetShopQueryHandler creates a handler for single shop reads.
func NewGetShopQueryHandler(db *gorm.DB) GetShopQueryHandler {
	return GetShopQueryHandler{db: db}
}

// Handle returns the shop or ObjectNotFoundError.
func (h GetShopQueryHandler) Handle(
	ctx context.Context,
	query GetShopQuery,
) (ShopResponse, error) {
	if err := query.Validate(); err != nil {
		return ShopResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.id,
			s.name,
			s.address,
			p.id,
			p.name,
			p.price
		FROM shops s
		LEFT JOIN products p ON p.shop_id = s.id
		WHERE s.id = ?
		ORDER BY p.name
	`, query.ShopID().Bytes()).Rows()
	if err != nil {
		return ShopResponse{}, err
	}
	defer rows.Close()

	shops, err := scanShopRows(rows)
	if err != nil {
		return ShopResponse{}, err
	}
	if len(shops) == 0 {
		return ShopResponse{}, errs.NewObjectNotFoundError("shopID", query.ShopID().String())
	}

	return shops[0], nil
}

func scanShopRows(rows *sql.Rows) ([]ShopResponse, error) {
	shops := make([]ShopResponse, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var shopID uuid.UUID
		var shopName, shopAddress string
		var productID uuid.NullUUID
		var productName sql.NullString
		var price decimal.NullDecimal

		err := rows.Scan(&shopID, &shopName, &shopAddress, &productID, &productName, &price)
		if err != nil {
			return nil, err
		}

		i, ok := index[shopID]
		if !ok {
			i = len(shops)
			index[shopID] = i
			shops = append(shops, ShopResponse{
				ID:       shopID,
				Name:     shopName,
				Address:  shopAddress,
				Products: make([]ProductResponse, 0),
			})
		}

		if productID.Valid {
			shops[i].Products = append(shops[i].Products, ProductResponse{
				ID:    productID.UUID,
				Name:  productName.String,
				Price: price.Decimal,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return shops, nil
}
