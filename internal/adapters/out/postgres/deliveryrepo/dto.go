// Package deliveryrepo persists delivery aggregates. It maps the aggregate to
// a deliveries row plus delivery_items child rows, and owns the conditional
// update that makes driver assignment race-safe.
package deliveryrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
)

// DeliveryDTO is the database representation of a delivery aggregate.
// Monetary columns are numeric(12,2); totals are written once at creation and
// never updated.
type DeliveryDTO struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID          uuid.UUID `gorm:"type:uuid;index"`
	ShopID              uuid.UUID `gorm:"type:uuid;index"`
	ShopName            string
	ShopAddress         string
	ItemDescription     string
	ContactNumber       string
	Village             string
	EstimatedDistanceKm *float64
	NeedBy              *time.Time      `gorm:"index"`
	ProductTotal        decimal.Decimal `gorm:"type:numeric(12,2)"`
	DeliveryFee         decimal.Decimal `gorm:"type:numeric(12,2)"`
	GrandTotal          decimal.Decimal `gorm:"type:numeric(12,2)"`
	Status              string          `gorm:"type:varchar(16);index"`
	ConfirmationStatus  string          `gorm:"type:varchar(16)"`
	ConfirmationNote    *string
	ConfirmedAt         *time.Time
	AssignedDriverID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt           time.Time

	Items []DeliveryItemDTO `gorm:"foreignKey:DeliveryID;references:ID"`
}

// TableName specifies the database table name for delivery entities.
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// DeliveryItemDTO is one snapshotted order line. Position preserves the
// insertion order of the original cart.
type DeliveryItemDTO struct {
	DeliveryID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Position   int       `gorm:"primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid"`
	Name       string
	Quantity   int
	UnitPrice  decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for delivery item entities.
func (DeliveryItemDTO) TableName() string {
	return "delivery_items"
}

func fromDomain(aggregate *delivery.Delivery) DeliveryDTO {
	var driverID *uuid.UUID
	if id := aggregate.AssignedDriver(); id != nil {
		raw := id.Bytes()
		driverID = &raw
	}

	var note *string
	if aggregate.Confirmation().Note != "" {
		value := aggregate.Confirmation().Note
		note = &value
	}

	items := make([]DeliveryItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, DeliveryItemDTO{
			DeliveryID: aggregate.ID().Bytes(),
			Position:   i,
			ProductID:  item.ProductID.Bytes(),
			Name:       item.Name,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice.Decimal(),
		})
	}

	return DeliveryDTO{
		ID:                  aggregate.ID().Bytes(),
		CustomerID:          aggregate.CustomerID().Bytes(),
		ShopID:              aggregate.Shop().ID.Bytes(),
		ShopName:            aggregate.Shop().Name,
		ShopAddress:         aggregate.Shop().Address,
		ItemDescription:     aggregate.ItemDescription(),
		ContactNumber:       aggregate.ContactNumber(),
		Village:             aggregate.Village(),
		EstimatedDistanceKm: aggregate.EstimatedDistanceKm(),
		NeedBy:              aggregate.NeedBy(),
		ProductTotal:        aggregate.ProductTotal().Decimal(),
		DeliveryFee:         aggregate.DeliveryFee().Decimal(),
		GrandTotal:          aggregate.GrandTotal().Decimal(),
		Status:              aggregate.Status().String(),
		ConfirmationStatus:  aggregate.Confirmation().Status.String(),
		ConfirmationNote:    note,
		ConfirmedAt:         aggregate.Confirmation().At,
		AssignedDriverID:    driverID,
		CreatedAt:           aggregate.CreatedAt(),
		Items:               items,
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	shopID, err := kernel.UUIDFromBytes(dto.ShopID[:])
	if err != nil {
		return nil, err
	}

	var driverID *kernel.UUID
	if dto.AssignedDriverID != nil {
		dID, driverErr := kernel.UUIDFromBytes((*dto.AssignedDriverID)[:])
		if driverErr != nil {
			return nil, driverErr
		}
		driverID = &dID
	}

	items := make([]delivery.ItemSnapshot, 0, len(dto.Items))
	for _, item := range dto.Items {
		productID, itemErr := kernel.UUIDFromBytes(item.ProductID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, delivery.ItemSnapshot{
			ProductID: productID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: kernel.MoneyFromDecimal(item.UnitPrice),
		})
	}

	status, err := delivery.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	confirmationStatus, err := delivery.ParseConfirmationStatus(dto.ConfirmationStatus)
	if err != nil {
		return nil, err
	}

	var note string
	if dto.ConfirmationNote != nil {
		note = *dto.ConfirmationNote
	}

	return delivery.RestoreDelivery(
		id,
		customerID,
		delivery.ShopRef{ID: shopID, Name: dto.ShopName, Address: dto.ShopAddress},
		items,
		dto.ItemDescription,
		dto.ContactNumber,
		dto.Village,
		dto.EstimatedDistanceKm,
		dto.NeedBy,
		kernel.MoneyFromDecimal(dto.ProductTotal),
		kernel.MoneyFromDecimal(dto.DeliveryFee),
		kernel.MoneyFromDecimal(dto.GrandTotal),
		status,
		delivery.Confirmation{Status: confirmationStatus, Note: note, At: dto.ConfirmedAt},
		driverID,
		dto.CreatedAt,
	)
}
