package commands

import (
	"context"
	"errors"

	"grameego/internal/core/domain/model/account"
	"grameego/internal/pkg/errs"
)

// ErrMobileAlreadyRegistered is returned when signing up with a mobile number
// that already has an account.
var ErrMobileAlreadyRegistered = errors.New("mobile number is already registered")

// RegisterAccountCommandHandler creates new accounts. The password is hashed
// before the aggregate is built, so plain text never leaves the handler.
type RegisterAccountCommandHandler struct {
	uowFactory AccountUoWFactory
	hasher     PasswordHasher
}

// NewRegisterAccountCommandHandler creates a handler for signups.
func NewRegisterAccountCommandHandler(uowFactory AccountUoWFactory, hasher PasswordHasher) RegisterAccountCommandHandler {
	return RegisterAccountCommandHandler{
		uowFactory: uowFactory,
		hasher:     hasher,
	}
}

// Handle processes the signup command.
func (h *RegisterAccountCommandHandler) Handle(ctx context.Context, cmd RegisterAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	passwordHash, err := h.hasher.Hash(cmd.Password())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.AccountRepository()
	if _, err = repo.GetByMobile(ctx, cmd.Mobile()); err == nil {
		return ErrMobileAlreadyRegistered
	} else if !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}

	aggregate, err := account.NewAccount(
		cmd.AccountID(),
		cmd.Name(),
		cmd.Mobile(),
		passwordHash,
		cmd.Role(),
		cmd.Village(),
		cmd.VehicleType(),
		cmd.ShopID(),
	)
	if err != nil {
		return err
	}

	if err = repo.Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
