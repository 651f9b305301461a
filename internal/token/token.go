// Package token issues and verifies signed bearer tokens (HS256 JWT).
package token

import (
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/procopiouriel/gerenciamento-itens-api/internal/errs"
	"github.com/procopiouriel/gerenciamento-itens-api/internal/model"
)

// Claims carried inside issued tokens: the user identity plus the
// standard issued-at/expires-at timestamps.
type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Service signs and verifies tokens with a process-wide secret key.
// The key is set once at startup and never mutated.
type Service struct {
	signKey []byte
	ttl     time.Duration
}

// NewService constructs a token Service. The signing key must be non-empty;
// its presence is enforced earlier, at configuration load.
func NewService(signKey []byte, ttl time.Duration) *Service {
	return &Service{signKey: signKey, ttl: ttl}
}

// Issue creates a signed HS256 token asserting the given identity,
// expiring after the configured TTL.
func (s *Service) Issue(userID uuid.UUID, username string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   userID.String(),
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(s.signKey)
}

// Verify checks signature integrity and expiry and returns the asserted
// identity. Every failure mode — wrong signature, wrong algorithm, malformed
// structure, expiry breach, unparseable subject — reports the same
// errs.ErrInvalidToken so callers learn nothing about why verification failed.
func (s *Service) Verify(tokenString string) (model.Identity, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.signKey, nil
	})
	if err != nil || !parsed.Valid {
		return model.Identity{}, errs.ErrInvalidToken
	}
	id, err := uuid.FromString(claims.UserID)
	if err != nil {
		return model.Identity{}, errs.ErrInvalidToken
	}
	return model.Identity{UserID: id, Username: claims.Username}, nil
}
