// Package repository defines storage interfaces implemented by concrete backends.
package repository

import (
	"context"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
)

// UserRepository provides credential storage for accounts.
type UserRepository interface {
	// Create inserts a new user. Returns errs.ErrDuplicateUsername if the
	// username is already taken.
	Create(ctx context.Context, u *model.User) error
	// GetByUsername loads a user by exact (case-sensitive) username.
	// Used only for login lookup.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}
