package account

import (
	"fmt"

	"grameego/internal/pkg/errs"
)

// Role identifies which of the three actor kinds an account belongs to.
// The role decides which lifecycle operations the account may perform:
// customers create and cancel deliveries, drivers accept and advance them,
// shops confirm or reject them.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleDriver   Role = "driver"
	RoleShop     Role = "shop"
)

// ParseRole converts an external string into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(s)
	if err := role.Validate(); err != nil {
		return "", err
	}
	return role, nil
}

// Validate checks that the role is one of the three known actor kinds.
func (r Role) Validate() error {
	switch r {
	case RoleCustomer, RoleDriver, RoleShop:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%q is not a valid role", string(r)))
	}
}

// String returns the wire representation of the role.
func (r Role) String() string {
	return string(r)
}
