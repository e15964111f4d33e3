// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes two groups of error types:
//
// Generic validation errors:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsOutOfRangeError and VersionIsInvalidError for range and concurrency checks
//
// Delivery lifecycle errors:
//   - InvalidStateError: action illegal in the object's current state
//   - AlreadyAssignedError: lost the driver assignment race
//   - NotOwnerError: actor is not the bound driver or owning customer
//   - IllegalTransitionError: transition outside the lifecycle table
//   - ValidationError: missing or invalid order fields
//   - ErrSessionExpired: the caller's session is no longer valid
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach improves error reporting, keeps error handling
// consistent, and enables classification with errors.Is throughout the application.
package errs
