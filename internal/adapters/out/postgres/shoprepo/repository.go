package shoprepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/core/domain/model/shop"
	"grameego/internal/pkg/errs"
)

// GormShopRepository implements ShopRepository using GORM.
type GormShopRepository struct {
	db *gorm.DB
}

// NewGormShopRepository creates a new GORM shop repository.
func NewGormShopRepository(db *gorm.DB) *GormShopRepository {
	return &GormShopRepository{db: db}
}

// Get retrieves a shop with its products.
func (r *GormShopRepository) Get(ctx context.Context, id kernel.UUID) (shop.Shop, error) {
	if err := id.Validate(); err != nil {
		return shop.Shop{}, err
	}

	var dto ShopDTO
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shop.Shop{}, errs.NewObjectNotFoundError("shop", id.String())
		}
		return shop.Shop{}, err
	}

	return toDomain(dto)
}

// GetAll retrieves every shop with its products.
func (r *GormShopRepository) GetAll(ctx context.Context) ([]shop.Shop, error) {
	var dtos []ShopDTO
	err := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	shops := make([]shop.Shop, 0, len(dtos))
	for _, dto := range dtos {
		s, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		shops = append(shops, s)
	}

	return shops, nil
}

// Seed inserts shops that are not present yet. Used at startup to load the
// demo catalogue into an empty database; existing rows are left untouched.
func (r *GormShopRepository) Seed(ctx context.Context, shops []shop.Shop) error {
	for _, s := range shops {
		dto := fromDomain(s)
		products := dto.Products
		dto.Products = nil

		result := r.db.WithContext(ctx).
			Where("id = ?", dto.ID).
			FirstOrCreate(&dto)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			continue
		}

		for _, p := range products {
			if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
