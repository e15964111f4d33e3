package delivery

import (
	"errors"
	"fmt"
	"time"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
// created through NewDelivery or RestoreDelivery.
var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery")

// Action names used in transition errors. They match the operations the
// actors invoke, so an IllegalTransitionError reads as "markDelivered from
// state Pending(unassigned)".
const (
	ActionAccept        = "accept"
	ActionUnassign      = "unassign"
	ActionMarkPicked    = "markPicked"
	ActionMarkDelivered = "markDelivered"
	ActionCancel        = "cancel"
	ActionConfirm       = "confirm"
)

// ShopRef is the snapshot of the shop a delivery was ordered from.
type ShopRef struct {
	ID      kernel.UUID
	Name    string
	Address string
}

// Validate checks structural integrity of the reference.
func (r ShopRef) Validate() error {
	if err := r.ID.Validate(); err != nil {
		return err
	}
	if r.Name == "" {
		return errs.NewValueIsRequiredError("shop name")
	}
	return nil
}

// Delivery is the aggregate root of the lifecycle core: one customer order in
// transit between a shop and a destination.
//
// Invariants:
//   - item snapshots and the three monetary totals are fixed at creation;
//     GrandTotal always equals ProductTotal plus DeliveryFee
//   - assignedDriver is present exactly while a driver is bound: an accepted
//     Pending delivery, a Picked delivery, or a Delivered delivery
//   - the confirmation decision is write-once
//   - status only moves along the lifecycle table; Delivered and Cancelled
//     accept no further transitions
//
// All mutating methods return lifecycle errors from the errs package when a
// guard fails; the aggregate is left unchanged on failure.
type Delivery struct {
	id         kernel.UUID
	customerID kernel.UUID

	itemDescription string
	items           []ItemSnapshot
	contactNumber   string
	village         string
	shop            ShopRef

	estimatedDistanceKm *float64
	needBy              *time.Time

	productTotal kernel.Money
	deliveryFee  kernel.Money
	grandTotal   kernel.Money

	status           Status
	confirmation     Confirmation
	assignedDriverID *kernel.UUID

	createdAt time.Time

	isConstructed bool
}

// NewDelivery creates a delivery in its initial state: Pending, unconfirmed,
// unassigned. The grand total is computed here, exactly once, as
// productTotal + deliveryFee; it is never recomputed afterwards.
//
// Validation failures are reported as ValidationError for the required order
// fields (contact number, village/address, items) and as value errors for
// structurally invalid identifiers, snapshots or amounts.
func NewDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	shop ShopRef,
	items []ItemSnapshot,
	itemDescription string,
	contactNumber string,
	village string,
	estimatedDistanceKm *float64,
	needBy *time.Time,
	productTotal kernel.Money,
	deliveryFee kernel.Money,
	createdAt time.Time,
) (*Delivery, error) {
	d := &Delivery{
		status:        StatusPending,
		confirmation:  Confirmation{Status: ConfirmationPending},
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		d.setID(id),
		d.setCustomerID(customerID),
		d.setShop(shop),
		d.setItems(items),
		d.setContactNumber(contactNumber),
		d.setVillage(village),
		d.setDistance(estimatedDistanceKm),
		d.setTotals(productTotal, deliveryFee),
	); err != nil {
		return nil, err
	}

	d.itemDescription = itemDescription
	d.needBy = needBy

	return d, nil
}

// RestoreDelivery reconstructs a delivery from persistence, including its
// current status, confirmation and assignment. The stored grand total is
// trusted as-is: totals are immutable post-creation and must not be derived
// again from the snapshots.
func RestoreDelivery(
	id kernel.UUID,
	customerID kernel.UUID,
	shop ShopRef,
	items []ItemSnapshot,
	itemDescription string,
	contactNumber string,
	village string,
	estimatedDistanceKm *float64,
	needBy *time.Time,
	productTotal kernel.Money,
	deliveryFee kernel.Money,
	grandTotal kernel.Money,
	status Status,
	confirmation Confirmation,
	assignedDriverID *kernel.UUID,
	createdAt time.Time,
) (*Delivery, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	if err := confirmation.Status.Validate(); err != nil {
		return nil, err
	}
	if assignedDriverID != nil {
		if err := assignedDriverID.Validate(); err != nil {
			return nil, err
		}
	}
	if assignedDriverID == nil && (status == StatusPicked || status == StatusDelivered) {
		return nil, errs.NewValueIsInvalidErrorWithCause("assignedDriver",
			fmt.Errorf("status %s requires an assigned driver", status))
	}

	d, err := NewDelivery(id, customerID, shop, items, itemDescription, contactNumber,
		village, estimatedDistanceKm, needBy, productTotal, deliveryFee, createdAt)
	if err != nil {
		return nil, err
	}

	d.status = status
	d.confirmation = confirmation
	d.assignedDriverID = assignedDriverID
	d.grandTotal = grandTotal
	return d, nil
}

// Validate ensures the Delivery was created via a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the delivery's unique identifier.
func (d *Delivery) ID() kernel.UUID { return d.id }

// CustomerID returns the owning customer.
func (d *Delivery) CustomerID() kernel.UUID { return d.customerID }

// ItemDescription returns the human-readable summary of the order lines.
func (d *Delivery) ItemDescription() string { return d.itemDescription }

// Items returns the immutable item snapshots captured at creation.
func (d *Delivery) Items() []ItemSnapshot {
	out := make([]ItemSnapshot, len(d.items))
	copy(out, d.items)
	return out
}

// ContactNumber returns the customer's contact number for this delivery.
func (d *Delivery) ContactNumber() string { return d.contactNumber }

// Village returns the destination village/address.
func (d *Delivery) Village() string { return d.village }

// Shop returns the shop reference snapshot.
func (d *Delivery) Shop() ShopRef { return d.shop }

// EstimatedDistanceKm returns the optional travel distance estimate.
func (d *Delivery) EstimatedDistanceKm() *float64 { return d.estimatedDistanceKm }

// NeedBy returns the optional need-by deadline.
func (d *Delivery) NeedBy() *time.Time { return d.needBy }

// ProductTotal returns the sum of the item snapshots, fixed at creation.
func (d *Delivery) ProductTotal() kernel.Money { return d.productTotal }

// DeliveryFee returns the fee computed once at creation.
func (d *Delivery) DeliveryFee() kernel.Money { return d.deliveryFee }

// GrandTotal returns ProductTotal + DeliveryFee, fixed at creation.
func (d *Delivery) GrandTotal() kernel.Money { return d.grandTotal }

// Status returns the current transit status.
func (d *Delivery) Status() Status { return d.status }

// Confirmation returns the shop's decision record.
func (d *Delivery) Confirmation() Confirmation { return d.confirmation }

// AssignedDriver returns the bound driver's id, or nil while unassigned.
func (d *Delivery) AssignedDriver() *kernel.UUID { return d.assignedDriverID }

// CreatedAt returns the creation time.
func (d *Delivery) CreatedAt() time.Time { return d.createdAt }

// IsAssigned reports whether a driver is currently bound.
func (d *Delivery) IsAssigned() bool { return d.assignedDriverID != nil }

// LifecycleState renders the combined status and assignment presence, e.g.
// "Pending(assigned)" or "Delivered". This is the state name used in
// transition errors.
func (d *Delivery) LifecycleState() string {
	if d.status == StatusPending {
		if d.IsAssigned() {
			return "Pending(assigned)"
		}
		return "Pending(unassigned)"
	}
	return d.status.String()
}

// Assign binds a driver to this delivery.
//
// Guards:
//   - status must be Pending, otherwise IllegalTransitionError
//   - no driver may already be bound, otherwise AlreadyAssignedError
//   - the shop must not have rejected the order, otherwise InvalidStateError
func (d *Delivery) Assign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status != StatusPending {
		return errs.NewIllegalTransitionError(ActionAccept, d.LifecycleState())
	}
	if d.IsAssigned() {
		return errs.NewAlreadyAssignedError(d.id.String())
	}
	if d.confirmation.Status == ConfirmationRejected {
		return errs.NewInvalidStateError(ActionAccept, "Rejected")
	}

	d.assignedDriverID = &driverID
	return nil
}

// Unassign releases the delivery back to the available pool.
//
// Guards:
//   - status must still be Pending, otherwise InvalidStateError
//   - the caller must be the bound driver, otherwise NotOwnerError
func (d *Delivery) Unassign(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status != StatusPending {
		return errs.NewInvalidStateError(ActionUnassign, d.LifecycleState())
	}
	if d.assignedDriverID == nil || !d.assignedDriverID.IsEqual(driverID) {
		return errs.NewNotOwnerError(ActionUnassign, driverID.String())
	}

	d.assignedDriverID = nil
	return nil
}

// MarkPicked advances an assigned Pending delivery to Picked.
//
// Guards:
//   - status must be Pending with a bound driver, otherwise IllegalTransitionError
//   - the caller must be the bound driver, otherwise NotOwnerError
func (d *Delivery) MarkPicked(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status != StatusPending || !d.IsAssigned() {
		return errs.NewIllegalTransitionError(ActionMarkPicked, d.LifecycleState())
	}
	if !d.assignedDriverID.IsEqual(driverID) {
		return errs.NewNotOwnerError(ActionMarkPicked, driverID.String())
	}

	d.status = StatusPicked
	return nil
}

// MarkDelivered advances a Picked delivery to the terminal Delivered state.
//
// Guards:
//   - status must be Picked, otherwise IllegalTransitionError
//   - the caller must be the bound driver, otherwise NotOwnerError
func (d *Delivery) MarkDelivered(driverID kernel.UUID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if d.status != StatusPicked {
		return errs.NewIllegalTransitionError(ActionMarkDelivered, d.LifecycleState())
	}
	if !d.assignedDriverID.IsEqual(driverID) {
		return errs.NewNotOwnerError(ActionMarkDelivered, driverID.String())
	}

	d.status = StatusDelivered
	return nil
}

// Cancel withdraws a delivery before any driver is bound, moving it to the
// terminal Cancelled state. Cancellation keeps the record; deliveries are
// never deleted.
//
// Guards:
//   - the caller must be the owning customer, otherwise NotOwnerError
//   - status must be Pending and unassigned, otherwise IllegalTransitionError
func (d *Delivery) Cancel(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if !d.customerID.IsEqual(customerID) {
		return errs.NewNotOwnerError(ActionCancel, customerID.String())
	}
	return d.cancel()
}

// CancelByPolicy cancels on behalf of the platform (need-by expiry), subject
// to the same state guards as a customer cancellation.
func (d *Delivery) CancelByPolicy() error {
	return d.cancel()
}

func (d *Delivery) cancel() error {
	if d.status != StatusPending || d.IsAssigned() {
		return errs.NewIllegalTransitionError(ActionCancel, d.LifecycleState())
	}
	d.status = StatusCancelled
	return nil
}

// Confirm records the shop's accept/reject decision. The decision is
// write-once: a second call fails with InvalidStateError and leaves the first
// decision untouched. Confirming never changes the transit status, with one
// policy exception: rejecting a delivery that already has a bound driver
// releases that driver, returning the delivery to Pending(unassigned), and a
// rejected delivery can never be assigned again.
//
// Guards:
//   - the caller's shop must own this delivery, otherwise NotOwnerError
//   - the confirmation must still be Pending, otherwise InvalidStateError
func (d *Delivery) Confirm(byShopID kernel.UUID, action ConfirmationAction, note string, at time.Time) error {
	if err := byShopID.Validate(); err != nil {
		return err
	}
	if !d.shop.ID.IsEqual(byShopID) {
		return errs.NewNotOwnerError(ActionConfirm, byShopID.String())
	}
	if d.confirmation.Status.IsDecided() {
		return errs.NewInvalidStateError(ActionConfirm, d.confirmation.Status.String())
	}

	switch action {
	case ConfirmationActionAccept:
		d.confirmation = Confirmation{Status: ConfirmationAccepted, Note: note, At: &at}
	case ConfirmationActionReject:
		d.confirmation = Confirmation{Status: ConfirmationRejected, Note: note, At: &at}
		d.assignedDriverID = nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid confirmation action", string(action)))
	}

	return nil
}

func (d *Delivery) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Delivery) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.customerID = id
	return nil
}

func (d *Delivery) setShop(shop ShopRef) error {
	if err := shop.Validate(); err != nil {
		return err
	}
	d.shop = shop
	return nil
}

func (d *Delivery) setItems(items []ItemSnapshot) error {
	if len(items) == 0 {
		return errs.NewValidationError("items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	d.items = make([]ItemSnapshot, len(items))
	copy(d.items, items)
	return nil
}

func (d *Delivery) setContactNumber(contact string) error {
	if contact == "" {
		return errs.NewValidationError("contactNumber")
	}
	d.contactNumber = contact
	return nil
}

func (d *Delivery) setVillage(village string) error {
	if village == "" {
		return errs.NewValidationError("village")
	}
	d.village = village
	return nil
}

func (d *Delivery) setDistance(distanceKm *float64) error {
	if distanceKm != nil && *distanceKm <= 0 {
		return errs.NewValidationErrorWithCause("estimatedDistanceKm",
			fmt.Errorf("%v is not greater than 0", *distanceKm))
	}
	d.estimatedDistanceKm = distanceKm
	return nil
}

func (d *Delivery) setTotals(productTotal, deliveryFee kernel.Money) error {
	if err := productTotal.Validate(); err != nil {
		return err
	}
	if err := deliveryFee.Validate(); err != nil {
		return err
	}
	d.productTotal = productTotal
	d.deliveryFee = deliveryFee
	d.grandTotal = productTotal.Add(deliveryFee)
	return nil
}
