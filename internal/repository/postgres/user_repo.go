package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/errs"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
)

// UserRepo implements UserRepository using PostgreSQL.
type UserRepo struct{ db *DB }

// NewUserRepo constructs a user repository.
func NewUserRepo(db *DB) *UserRepo { return &UserRepo{db: db} }

// Create inserts a new user row.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `
INSERT INTO users (id, username, password_hash)
VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, u.ID, u.Username, u.PasswordHash)
	if isUniqueViolation(err) {
		return errs.ErrDuplicateUsername
	}
	return err
}

// GetByUsername selects a user by exact username.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	const q = `
SELECT id, username, password_hash, created_at
FROM users WHERE username=$1`
	row := r.db.Pool.QueryRow(ctx, q, username)
	var u model.User
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errs.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}
