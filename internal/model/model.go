// Package model defines domain entities used by services and repositories.
package model

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

// User represents an account. The password hash never leaves the server.
type User struct {
	ID           uuid.UUID // PK, minted at registration
	Username     string    // unique, case-sensitive
	PasswordHash string    // bcrypt digest, salt embedded
	CreatedAt    time.Time
}

// Item is a single named record owned by exactly one user.
type Item struct {
	ID      int64     `json:"id"` // assigned by the store at insert
	Name    string    `json:"name"`
	OwnerID uuid.UUID `json:"-"` // FK -> users.id, bound from the authenticated caller
}

// Identity is the verified subject of a request, extracted from token claims.
type Identity struct {
	UserID   uuid.UUID
	Username string
}
