package ports

import (
	"context"

	"grameego/internal/core/domain/model/account"
	"grameego/internal/core/domain/model/kernel"
)

// AccountRepository defines the persistence contract for account aggregates.
type AccountRepository interface {
	// Add persists a new account. Mobile numbers are unique; adding a
	// duplicate fails.
	Add(ctx context.Context, aggregate *account.Account) error

	// Get retrieves an account by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*account.Account, error)

	// GetByMobile retrieves an account by its mobile number.
	// Used by login and by signup duplicate checks.
	GetByMobile(ctx context.Context, mobile string) (*account.Account, error)
}
