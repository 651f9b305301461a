package service

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/errs"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/repository"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/token"
)

type fakeUsers struct {
	byName map[string]*model.User

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*model.User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return errs.ErrDuplicateUsername
	}
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}

func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func newAuth(users *fakeUsers) (*AuthServiceImpl, *token.Service) {
	tokens := token.NewService([]byte("test-signing-key"), time.Hour)
	return NewAuthService(users, tokens, 4), tokens
}

func TestRegisterThenLogin_TokenClaimsMatch(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	svc, tokens := newAuth(users)
	ctx := context.Background()

	uid, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, uid)

	tok, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	ident, err := tokens.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, uid, ident.UserID)
	require.Equal(t, "alice", ident.Username)
}

func TestRegister_DuplicateUsername(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	svc, _ := newAuth(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "other")
	require.ErrorIs(t, err, errs.ErrDuplicateUsername)
	require.Len(t, users.byName, 1)
}

func TestRegister_EmptyFields(t *testing.T) {
	t.Parallel()

	svc, _ := newAuth(&fakeUsers{})
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "s3cret")
	require.ErrorIs(t, err, errs.ErrValidation)
	_, err = svc.Register(ctx, "alice", "")
	require.ErrorIs(t, err, errs.ErrValidation)
}

func TestRegister_NeverStoresPlaintext(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	svc, _ := newAuth(users)

	_, err := svc.Register(context.Background(), "alice", "s3cret")
	require.NoError(t, err)
	require.NotContains(t, users.byName["alice"].PasswordHash, "s3cret")
}

func TestLogin_UniformFailure(t *testing.T) {
	t.Parallel()

	users := &fakeUsers{}
	svc, _ := newAuth(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	// wrong password and unknown username fail with the same sentinel
	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
	_, err = svc.Login(ctx, "bob", "s3cret")
	require.ErrorIs(t, err, errs.ErrInvalidCredentials)
}

func TestLogin_RepoFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := context.DeadlineExceeded
	svc, _ := newAuth(&fakeUsers{getErr: boom})

	_, err := svc.Login(context.Background(), "alice", "s3cret")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, errs.ErrInvalidCredentials)
}
