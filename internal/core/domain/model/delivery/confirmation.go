package delivery

import (
	"fmt"
	"time"

	"grameego/internal/pkg/errs"
)

// ConfirmationStatus is the shop's accept/reject decision on a delivery.
// It starts Pending and moves to Accepted or Rejected exactly once; both are
// terminal for this field regardless of what happens to the transit status.
type ConfirmationStatus int

const (
	// ConfirmationUnknown represents an invalid or undefined value.
	ConfirmationUnknown ConfirmationStatus = iota

	// ConfirmationPending means the shop has not decided yet.
	ConfirmationPending

	// ConfirmationAccepted means the shop committed to fulfilling the order.
	ConfirmationAccepted

	// ConfirmationRejected means the shop declined the order.
	ConfirmationRejected
)

func getConfirmationStrings() map[ConfirmationStatus]string {
	return map[ConfirmationStatus]string{
		ConfirmationUnknown:  "Unknown",
		ConfirmationPending:  "Pending",
		ConfirmationAccepted: "Accepted",
		ConfirmationRejected: "Rejected",
	}
}

// ParseConfirmationStatus converts a wire/persistence string into a
// ConfirmationStatus.
func ParseConfirmationStatus(s string) (ConfirmationStatus, error) {
	for status, str := range getConfirmationStrings() {
		if status != ConfirmationUnknown && str == s {
			return status, nil
		}
	}
	return ConfirmationUnknown, errs.NewValueIsInvalidErrorWithCause("confirmationStatus",
		fmt.Errorf("%q is not a valid confirmation status", s))
}

// Validate checks that the value is one of the defined confirmation states.
func (s ConfirmationStatus) Validate() error {
	if s != ConfirmationPending && s != ConfirmationAccepted && s != ConfirmationRejected {
		return errs.NewValueIsInvalidErrorWithCause("confirmationStatus",
			fmt.Errorf("%d is not a valid confirmation status", s))
	}
	return nil
}

// String returns the wire name of the confirmation status.
func (s ConfirmationStatus) String() string {
	if str, ok := getConfirmationStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsDecided reports whether the shop has already accepted or rejected.
func (s ConfirmationStatus) IsDecided() bool {
	return s == ConfirmationAccepted || s == ConfirmationRejected
}

// ConfirmationAction is the shop's requested decision.
type ConfirmationAction string

const (
	ConfirmationActionAccept ConfirmationAction = "accept"
	ConfirmationActionReject ConfirmationAction = "reject"
)

// ParseConfirmationAction converts a request string into a ConfirmationAction.
func ParseConfirmationAction(s string) (ConfirmationAction, error) {
	switch ConfirmationAction(s) {
	case ConfirmationActionAccept, ConfirmationActionReject:
		return ConfirmationAction(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("action",
			fmt.Errorf("%q is not a valid confirmation action", s))
	}
}

// Confirmation bundles the decision with its note and timestamp. The note and
// timestamp are only present once the decision is made.
type Confirmation struct {
	Status ConfirmationStatus
	Note   string
	At     *time.Time
}
