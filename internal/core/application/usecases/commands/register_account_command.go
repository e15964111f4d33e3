package commands

import (
	"errors"

	"grameego/internal/core/domain/model/account"
	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
	"grameego/internal/pkg/guard"
)

var ErrRegisterAccountCommandIsNotConstructed = errors.New(
	"RegisterAccountCommand must be created via NewRegisterAccountCommand constructor",
)

// RegisterAccountCommand represents a signup request. The password arrives in
// plain text and is hashed by the handler; it never reaches the aggregate.
type RegisterAccountCommand struct { //nolint:recvcheck //using for validation
	accountID   kernel.UUID
	name        string
	mobile      string
	password    string
	role        account.Role
	village     string
	vehicleType string
	shopID      *kernel.UUID

	guard guard.ConstructorGuard
}

// NewRegisterAccountCommand creates a signup command. A shop account must
// carry the shop it manages; customer and driver must not.
func NewRegisterAccountCommand(
	accountID kernel.UUID,
	name, mobile, password string,
	role account.Role,
	village, vehicleType string,
	shopID *kernel.UUID,
) (RegisterAccountCommand, error) {
	cmd := RegisterAccountCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setAccountID(accountID),
		cmd.setName(name),
		cmd.setMobile(mobile),
		cmd.setPassword(password),
		cmd.setRole(role),
	); err != nil {
		return RegisterAccountCommand{}, err
	}

	if err := cmd.setShopID(shopID); err != nil {
		return RegisterAccountCommand{}, err
	}

	cmd.village = village
	cmd.vehicleType = vehicleType
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterAccountCommand) Validate() error {
	return c.guard.Validate(ErrRegisterAccountCommandIsNotConstructed)
}

// AccountID returns the identifier for the new account.
func (c RegisterAccountCommand) AccountID() kernel.UUID { return c.accountID }

// Name returns the display name.
func (c RegisterAccountCommand) Name() string { return c.name }

// Mobile returns the login mobile number.
func (c RegisterAccountCommand) Mobile() string { return c.mobile }

// Password returns the plain text password to be hashed.
func (c RegisterAccountCommand) Password() string { return c.password }

// Role returns the account role.
func (c RegisterAccountCommand) Role() account.Role { return c.role }

// Village returns the customer's village, if given.
func (c RegisterAccountCommand) Village() string { return c.village }

// VehicleType returns the driver's vehicle type, if given.
func (c RegisterAccountCommand) VehicleType() string { return c.vehicleType }

// ShopID returns the managed shop for shop accounts.
func (c RegisterAccountCommand) ShopID() *kernel.UUID { return c.shopID }

func (c *RegisterAccountCommand) setAccountID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.accountID = id
	return nil
}

func (c *RegisterAccountCommand) setName(name string) error {
	if name == "" {
		return errs.NewValidationError("name")
	}
	c.name = name
	return nil
}

func (c *RegisterAccountCommand) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValidationError("mobile")
	}
	c.mobile = mobile
	return nil
}

func (c *RegisterAccountCommand) setPassword(password string) error {
	if len(password) < 6 {
		return errs.NewValidationError("password")
	}
	c.password = password
	return nil
}

func (c *RegisterAccountCommand) setRole(role account.Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	c.role = role
	return nil
}

func (c *RegisterAccountCommand) setShopID(shopID *kernel.UUID) error {
	if c.role == account.RoleShop {
		if shopID == nil {
			return errs.NewValidationError("shopId")
		}
		if err := shopID.Validate(); err != nil {
			return err
		}
	} else if shopID != nil {
		return errs.NewValidationError("shopId")
	}
	c.shopID = shopID
	return nil
}
