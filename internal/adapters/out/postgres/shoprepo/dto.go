// Package shoprepo reads the shop catalogue. Shops and products are seeded
// data; this adapter never writes them outside of seeding.
package shoprepo

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"
)

// ShopDTO is the database representation of a shop.
type ShopDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string
	Address string

	Products []ProductDTO `gorm:"foreignKey:ShopID;references:ID"`
}

// TableName specifies the database table name for shop entities.
func (ShopDTO) TableName() string {
	return "shops"
}

// ProductDTO is the database representation of a catalogue item.
type ProductDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	ShopID uuid.UUID `gorm:"type:uuid;index"`
	Name   string
	Price  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for product entities.
func (ProductDTO) TableName() string {
	return "products"
}

func toDomain(dto ShopDTO) (shop.Shop, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return shop.Shop{}, err
	}

	products := make([]shop.Product, 0, len(dto.Products))
	for _, p := range dto.Products {
		productID, productErr := kernel.UUIDFromBytes(p.ID[:])
		if productErr != nil {
			return shop.Shop{}, productErr
		}
		products = append(products, shop.Product{
			ID:     productID,
			ShopID: id,
			Name:   p.Name,
			Price:  kernel.MoneyFromDecimal(p.Price),
		})
	}

	s := shop.Shop{
		ID:       id,
		Name:     dto.Name,
		Address:  dto.Address,
		Products: products,
	}
	if err = s.Validate(); err != nil {
		return shop.Shop{}, err
	}

	return s, nil
}

func fromDomain(s shop.Shop) ShopDTO {
	products := make([]ProductDTO, 0, len(s.Products))
	for _, p := range s.Products {
		products = append(products, ProductDTO{
			ID:     p.ID.Bytes(),
			ShopID: s.ID.Bytes(),
			Name:   p.Name,
			Price:  p.Price.Decimal(),
		})
	}

	return ShopDTO{
		ID:       s.ID.Bytes(),
		Name:     s.Name,
		Address:  s.Address,
		Products: products,
	}
}
