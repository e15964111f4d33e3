// Package services contains stateless domain services. The only one today is
// the delivery pricer, which owns the fee schedule and totals arithmetic.
package services
