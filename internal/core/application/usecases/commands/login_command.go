package commands

import (
	"errors"

	"grameego/internal/pkg/errs"
	"grameego/internal/pkg/guard"
)

var ErrLoginCommandIsNotConstructed = errors.New(
	"LoginCommand must be created via NewLoginCommand constructor",
)

// LoginCommand represents a credentials check by mobile number and password.
type LoginCommand struct { //nolint:recvcheck //using for validation
	mobile   string
	password string

	guard guard.ConstructorGuard
}

// NewLoginCommand creates a login command.
func NewLoginCommand(mobile, password string) (LoginCommand, error) {
	cmd := LoginCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMobile(mobile),
		cmd.setPassword(password),
	); err != nil {
		return LoginCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c LoginCommand) Validate() error {
	return c.guard.Validate(ErrLoginCommandIsNotConstructed)
}

// Mobile returns the login mobile number.
func (c LoginCommand) Mobile() string { return c.mobile }

// Password returns the plain text password to verify.
func (c LoginCommand) Password() string { return c.password }

func (c *LoginCommand) setMobile(mobile string) error {
	if mobile == "" {
		return errs.NewValidationError("mobile")
	}
	c.mobile = mobile
	return nil
}

func (c *LoginCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValidationError("password")
	}
	c.password = password
	return nil
}
