// Package service contains application services for authentication and items.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	pkgcrypto "github.com/procopiouriel/gerenciamento-itens-api/internal/crypto"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/errs"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/repository"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/token"
)

// AuthService defines account registration and login.
type AuthService interface {
	// Register creates a new user with secure password hashing.
	Register(ctx context.Context, username, password string) (userID uuid.UUID, err error)
	// Login authenticates the user and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (tokenString string, err error)
}

type AuthServiceImpl struct {
	users  repository.UserRepository
	tokens *token.Service
	cost   int
}

// NewAuthService constructs AuthService with required dependencies.
func NewAuthService(users repository.UserRepository, tokens *token.Service, bcryptCost int) *AuthServiceImpl {
	return &AuthServiceImpl{users: users, tokens: tokens, cost: bcryptCost}
}

// Register creates a new user record. A hashing failure is fatal for the
// registration: it propagates, never producing a half-created account.
func (s *AuthServiceImpl) Register(ctx context.Context, username, password string) (uuid.UUID, error) {
	if username == "" || password == "" {
		return uuid.Nil, fmt.Errorf("%w: empty username/password", errs.ErrValidation)
	}
	uid, err := uuid.NewV4()
	if err != nil {
		return uuid.Nil, err
	}
	hash, err := pkgcrypto.HashPassword(password, s.cost)
	if err != nil {
		return uuid.Nil, err
	}

	u := &model.User{
		ID:           uid,
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return uuid.Nil, err
	}
	return uid, nil
}

// Login authenticates by username and password. Unknown username and wrong
// password fail identically so the response never reveals which one it was.
func (s *AuthServiceImpl) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: empty username/password", errs.ErrValidation)
	}
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return "", errs.ErrInvalidCredentials
		}
		return "", err
	}
	if !pkgcrypto.VerifyPassword(password, u.PasswordHash) {
		return "", errs.ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID, u.Username)
}
