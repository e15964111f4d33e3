// Package accountrepo persists account aggregates in the users table.
package accountrepo

import (
	"time"

	"github.com/google/uuid"

	"grameego/internal/core/domain/model/account"
	"grameego/internal/core/domain/model/kernel"
)

// AccountDTO is the database representation of an account.
type AccountDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Mobile       string `gorm:"uniqueIndex"`
	PasswordHash string
	Role         string `gorm:"type:varchar(16)"`
	Village      string
	VehicleType  string
	ShopID       *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (AccountDTO) TableName() string {
	return "users"
}

func fromDomain(aggregate *account.Account) AccountDTO {
	var shopID *uuid.UUID
	if id := aggregate.ShopID(); id != nil {
		raw := id.Bytes()
		shopID = &raw
	}

	return AccountDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Mobile:       aggregate.Mobile(),
		PasswordHash: aggregate.PasswordHash(),
		Role:         aggregate.Role().String(),
		Village:      aggregate.Village(),
		VehicleType:  aggregate.VehicleType(),
		ShopID:       shopID,
	}
}

func toDomain(dto AccountDTO) (*account.Account, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	role, err := account.ParseRole(dto.Role)
	if err != nil {
		return nil, err
	}

	var shopID *kernel.UUID
	if dto.ShopID != nil {
		sID, shopErr := kernel.UUIDFromBytes((*dto.ShopID)[:])
		if shopErr != nil {
			return nil, shopErr
		}
		shopID = &sID
	}

	return account.RestoreAccount(id, dto.Name, dto.Mobile, dto.PasswordHash, role, dto.Village, dto.VehicleType, shopID)
}
