package errs

import (
	"errors"
	"fmt"
)

// Sentinel errors for delivery lifecycle failures. Every structured lifecycle
// error unwraps to one of these so callers can branch with errors.Is without
// inspecting concrete types.
var (
	ErrInvalidState      = errors.New("invalid state")
	ErrAlreadyAssigned   = errors.New("delivery is already assigned")
	ErrNotOwner          = errors.New("actor is not the owner")
	ErrIllegalTransition = errors.New("illegal transition")
	ErrValidation        = errors.New("validation failed")
	ErrSessionExpired    = errors.New("session expired")
)

// InvalidStateError is returned when an action is not legal in the object's
// current state, for example confirming a delivery whose confirmation has
// already been decided.
type InvalidStateError struct {
	Action string
	State  string
	Cause  error
}

// NewInvalidStateError creates an InvalidStateError naming the attempted action
// and the state that forbids it.
func NewInvalidStateError(action, state string) *InvalidStateError {
	return &InvalidStateError{Action: action, State: state}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an underlying cause.
func NewInvalidStateErrorWithCause(action, state string, cause error) *InvalidStateError {
	return &InvalidStateError{Action: action, State: state, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s is not allowed in state %s (cause: %s)",
			ErrInvalidState, e.Action, e.State, e.Cause)
	}
	return fmt.Sprintf("%s: %s is not allowed in state %s", ErrInvalidState, e.Action, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// AlreadyAssignedError is returned when a driver loses the assignment race:
// the delivery already carries an assigned driver.
type AlreadyAssignedError struct {
	DeliveryID string
}

// NewAlreadyAssignedError creates an AlreadyAssignedError for the given delivery.
func NewAlreadyAssignedError(deliveryID string) *AlreadyAssignedError {
	return &AlreadyAssignedError{DeliveryID: deliveryID}
}

func (e *AlreadyAssignedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrAlreadyAssigned, e.DeliveryID)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// NotOwnerError is returned when an actor attempts an action reserved for the
// bound driver or the owning customer of a delivery.
type NotOwnerError struct {
	Action  string
	ActorID string
}

// NewNotOwnerError creates a NotOwnerError naming the attempted action and the actor.
func NewNotOwnerError(action, actorID string) *NotOwnerError {
	return &NotOwnerError{Action: action, ActorID: actorID}
}

func (e *NotOwnerError) Error() string {
	return fmt.Sprintf("%s: %s may not %s", ErrNotOwner, e.ActorID, e.Action)
}

func (e *NotOwnerError) Unwrap() error {
	return ErrNotOwner
}

// IllegalTransitionError is returned when a lifecycle transition is attempted
// outside the delivery state machine's transition table. It names the
// attempted action and the state it was attempted from.
type IllegalTransitionError struct {
	Action string
	From   string
}

// NewIllegalTransitionError creates an IllegalTransitionError for the attempted
// action and current state.
func NewIllegalTransitionError(action, from string) *IllegalTransitionError {
	return &IllegalTransitionError{Action: action, From: from}
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("%s: %s from state %s", ErrIllegalTransition, e.Action, e.From)
}

func (e *IllegalTransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// ValidationError is returned when a request is missing required order fields
// or carries values that fail validation at the application boundary.
type ValidationError struct {
	ParamName string
	Cause     error
}

// NewValidationError creates a ValidationError without a cause.
func NewValidationError(paramName string) *ValidationError {
	return &ValidationError{ParamName: paramName}
}

// NewValidationErrorWithCause creates a ValidationError wrapping an underlying cause.
func NewValidationErrorWithCause(paramName string, cause error) *ValidationError {
	return &ValidationError{ParamName: paramName, Cause: cause}
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValidation, e.ParamName, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValidation, e.ParamName)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
