package accountrepo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"grameego/internal/core/domain/model/account"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Add saves a new account. The unique index on mobile backs the duplicate
// signup check.
func (r *GormAccountRepository) Add(ctx context.Context, aggregate *account.Account) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves an account by ID.
func (r *GormAccountRepository) Get(ctx context.Context, id kernel.UUID) (*account.Account, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByMobile retrieves an account by its mobile number.
func (r *GormAccountRepository) GetByMobile(ctx context.Context, mobile string) (*account.Account, error) {
	if mobile == "" {
		return nil, errs.NewValueIsRequiredError("mobile")
	}

	var dto AccountDTO
	if err := r.db.WithContext(ctx).First(&dto, "mobile = ?", mobile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("account", mobile)
		}
		return nil, err
	}

	return toDomain(dto)
}
