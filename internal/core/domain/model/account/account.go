package account

import (
	"errors"

	"grameego/internal/core/domain/model/kernel"
	"grameego/internal/pkg/errs"
)

// ErrAccountIsNotConstructed is returned when an Account instance was not
// created through NewAccount or RestoreAccount.
var ErrAccountIsNotConstructed = errors.New("Account must be created via NewAccount or RestoreAccount")

// Account is the aggregate for a registered platform user. The mobile number
// is the login key; the password is stored only as an argon2id hash computed
// at the application boundary.
//
// Role-dependent fields:
//   - Village is set for customers (their default delivery destination)
//   - VehicleType is set for drivers
//   - ShopID binds shop staff to the shop whose orders they may confirm
//
// Accounts are immutable once created; the delivery lifecycle never writes
// back to them.
type Account struct {
	id           kernel.UUID
	name         string
	mobile       string
	passwordHash string
	role         Role

	village     string
	vehicleType string
	shopID      *kernel.UUID

	isConstructed bool
}

// NewAccount creates a validated Account.
//
// Validation rules:
//   - id must be a constructed UUID
//   - name, mobile and passwordHash must be non-empty
//   - role must be a known role
//   - shop accounts must reference the shop they belong to
func NewAccount(
	id kernel.UUID,
	name, mobile, passwordHash string,
	role Role,
	village, vehicleType string,
	shopID *kernel.UUID,
) (*Account, error) {
	a := &Account{isConstructed: true}

	if err := errors.Join(
		a.setID(id),
		a.setName(name),
		a.setMobile(mobile),
		a.setPasswordHash(passwordHash),
		a.setRole(role),
	); err != nil {
		return nil, err
	}

	a.village = village
	a.vehicleType = vehicleType

	if role == RoleShop {
		if shopID == nil {
			return nil, errs.NewValueIsRequiredError("shopID is required for shop accounts")
		}
		if err := shopID.Validate(); err != nil {
			return nil, err
		}
	}
	a.shopID = shopID

	return a, nil
}

// RestoreAccount reconstructs an Account from persistence without re-running
// signup-time checks beyond structural validation.
func RestoreAccount(
	id kernel.UUID,
	name, mobile, passwordHash string,
	role Role,
	village, vehicleType string,
	shopID *kernel.UUID,
) (*Account, error) {
	return NewAccount(id, name, mobile, passwordHash, role, village, vehicleType, shopID)
}

// Validate ensures the Account was created via a constructor.
func (a *Account) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrAccountIsNotConstructed
	}
	return nil
}

// ID returns the account's unique identifier.
func (a *Account) ID() kernel.UUID {
	return a.id
}

// Name returns the display name.
func (a *Account) Name() string {
	return a.name
}

// Mobile returns the login mobile number.
func (a *Account) Mobile() string {
	return a.mobile
}

// PasswordHash returns the stored argon2id hash.
func (a *Account) PasswordHash() string {
	return a.passwordHash
}

// Role returns the actor kind.
func (a *Account) Role() Role {
	return a.role
}

// Village returns the customer's default destination, empty for other roles.
func (a *Account) Village() string {
	return a.village
}

// VehicleType returns the driver's vehicle, empty for other roles.
func (a *Account) VehicleType() string {
	return a.vehicleType
}

// ShopID returns the bound shop for shop accounts, nil otherwise.
func (a *Account) ShopID() *kernel.UUID {
	return a.shopID
}

func (a *Account) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Account) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	a.name = name
	return nil
}

func (a *Account) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValueIsRequiredError("mobile")
	}
	a.mobile = mobile
	return nil
}

func (a *Account) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	a.passwordHash = hash
	return nil
}

func (a *Account) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	a.role = role
	return nil
}
