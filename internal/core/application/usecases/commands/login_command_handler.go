package commands

import (
	"context"
	"errors"

	"grameego/internal/core/domain/model/account"
	"grameego/internal/pkg/errs"
)

// ErrInvalidCredentials is returned when the mobile number is unknown or the
// password does not match. The two cases are indistinguishable on purpose.
var ErrInvalidCredentials = errors.New("invalid credentials")

// LoginCommandHandler verifies credentials and returns the matching account.
// Token minting is an adapter concern and happens at the HTTP layer.
type LoginCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewLoginCommandHandler creates a handler for logins.
func NewLoginCommandHandler(uowFactory AccountUoWFactory, hasher PasswordHasher) LoginCommandHandler {
	return LoginCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle verifies the credentials and returns the account on success.
func (h *LoginCommandHandler) Handle(ctx context.Context, cmd LoginCommand) (*account.Account, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.AccountRepository().GetByMobile(ctx, cmd.Mobile())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	ok, err := h.hasher.Verify(cmd.Password(), aggregate.PasswordHash())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
