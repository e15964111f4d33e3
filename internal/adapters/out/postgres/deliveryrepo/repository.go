package deliveryrepo

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"grameego/internal/core/domain/model/delivery"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

// GormDeliveryRepository implements DeliveryRepository using GORM. It
// remembers the row state of every delivery it reads, so a later Update can
// demand that exact state back from the database.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	read    map[kernel.UUID]rowState
}

// rowState is the concurrency-relevant slice of a deliveries row as it was
// last read by this repository instance.
type rowState struct {
	status             string
	confirmationStatus string
	assignedDriverID   *uuid.UUID
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormDeliveryRepository creates a new GORM delivery repository.
func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
		read:    make(map[kernel.UUID]rowState),
	}
}

// Add saves a new delivery with its item snapshots.
func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.remember(aggregate.ID(), dto)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) remember(id kernel.UUID, dto DeliveryDTO) {
	r.read[id] = rowState{
		status:             dto.Status,
		confirmationStatus: dto.ConfirmationStatus,
		assignedDriverID:   dto.AssignedDriverID,
	}
}

// Update persists the mutable part of a delivery: status, confirmation and
// assignment. Items and totals are immutable after Add and are never written
// again. Explicit columns are used so clearing the driver writes NULL.
//
// The write is conditional on the row still matching the state this
// repository read the aggregate in. A concurrent writer that changed the
// status, the confirmation or the assignment since then makes the update
// match zero rows, and the caller gets VersionIsInvalidError instead of
// silently overwriting the other write.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	query := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", dto.ID)

	base, tracked := r.read[aggregate.ID()]
	if tracked {
		query = query.
			Where("status = ?", base.status).
			Where("confirmation_status = ?", base.confirmationStatus)
		if base.assignedDriverID == nil {
			query = query.Where("assigned_driver_id IS NULL")
		} else {
			query = query.Where("assigned_driver_id = ?", *base.assignedDriverID)
		}
	}

	result := query.Updates(map[string]any{
		"status":              dto.Status,
		"confirmation_status": dto.ConfirmationStatus,
		"confirmation_note":   dto.ConfirmationNote,
		"confirmed_at":        dto.ConfirmedAt,
		"assigned_driver_id":  dto.AssignedDriverID,
	})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidError("delivery " + aggregate.ID().String())
	}

	r.remember(aggregate.ID(), dto)
	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a delivery with its item snapshots.
func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	aggregate, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.remember(aggregate.ID(), dto)
	return aggregate, nil
}

// Assign binds a driver with a single conditional update. The WHERE clause
// repeats the aggregate's assignment guards, so under concurrent accepts the
// database serializes the writes and only one matches a still-open row.
func (r *GormDeliveryRepository) Assign(ctx context.Context, id, driverID kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := driverID.Validate(); err != nil {
		return nil, err
	}

	result := r.db.WithContext(ctx).Model(&DeliveryDTO{}).
		Where("id = ?", id.Bytes()).
		Where("status = ?", delivery.StatusPending.String()).
		Where("assigned_driver_id IS NULL").
		Where("confirmation_status <> ?", delivery.ConfirmationRejected.String()).
		Update("assigned_driver_id", driverID.Bytes())
	if result.Error != nil {
		return nil, result.Error
	}

	if result.RowsAffected == 0 {
		return nil, r.classifyFailedAssign(ctx, id, driverID)
	}

	aggregate, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return aggregate, nil
}

// classifyFailedAssign re-reads the row and maps the guard that blocked the
// bind onto the matching lifecycle error.
func (r *GormDeliveryRepository) classifyFailedAssign(ctx context.Context, id, driverID kernel.UUID) error {
	aggregate, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	if guardErr := aggregate.Assign(driverID); guardErr != nil {
		return guardErr
	}

	// The row was blocked at update time but looks open now; the competing
	// transaction must have rolled back. Let the driver retry.
	return errs.NewAlreadyAssignedError(id.String())
}

// GetAllPendingUnassignedBefore lists pending unassigned deliveries whose
// need-by deadline passed before the cutoff.
func (r *GormDeliveryRepository) GetAllPendingUnassignedBefore(ctx context.Context, cutoff time.Time) ([]*delivery.Delivery, error) {
	var dtos []DeliveryDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("position") }).
		Where("status = ?", delivery.StatusPending.String()).
		Where("assigned_driver_id IS NULL").
		Where("need_by IS NOT NULL AND need_by < ?", cutoff).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	deliveries := make([]*delivery.Delivery, 0, len(dtos))
	for _, dto := range dtos {
		aggregate, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		r.remember(aggregate.ID(), dto)
		deliveries = append(deliveries, aggregate)
	}

	return deliveries, nil
}
