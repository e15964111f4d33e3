package delivery

import (
	"fmt"

	"grameego/internal/pkg/errs"
)

// Status represents the transit state of a delivery.
//
// State transitions (assignment shown in parentheses):
//
//	Pending(unassigned) ──accept──> Pending(assigned) ──markPicked──> Picked ──markDelivered──> Delivered
//	        │  ▲                          │
//	        │  └───────unassign───────────┘
//	        └──cancel──> Cancelled
//
// Delivered and Cancelled are terminal. Transitions are enforced by the
// Delivery aggregate; Status itself only knows the legal status-to-status
// moves.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusPending is the initial status: the delivery is waiting for a
	// driver (unassigned) or waiting for pickup (assigned).
	StatusPending

	// StatusPicked indicates the assigned driver has collected the goods.
	StatusPicked

	// StatusDelivered indicates the goods reached the customer. Terminal.
	StatusDelivered

	// StatusCancelled indicates the customer (or expiry policy) withdrew the
	// delivery before any driver was bound. Terminal.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:   "Unknown",
		StatusPending:   "Pending",
		StatusPicked:    "Picked",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusPending:   "Pending",
		StatusPicked:    "Picked",
		StatusDelivered: "Delivered",
		StatusCancelled: "Cancelled",
	}
}

// ParseStatus converts a wire/persistence string into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status ("Pending", "Picked",
// "Delivered", "Cancelled"), or "Unknown" for invalid values.
// Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the status accepts no further transitions.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}
