package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/domain"
	"github.com/Alvi-C/livingbook-crud-jwt-server/internal/core/ports"
)

const defaultSessionTTL = time.Hour

// TokenDenylist abstracts the revocation store (Redis).
type TokenDenylist interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
}

// sessionClaims is the JWT payload for a session token.
type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	jwt.RegisteredClaims
}

// SessionService issues and verifies HS256 session tokens with a fixed TTL.
type SessionService struct {
	secret   []byte
	tokenTTL time.Duration
	denylist TokenDenylist
	log      zerolog.Logger
}

func NewSessionService(secret string, tokenTTL time.Duration, denylist TokenDenylist, log zerolog.Logger) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = defaultSessionTTL
	}
	return &SessionService{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		denylist: denylist,
		log:      log,
	}
}

// Issue signs a token for the given identity. Delivery (the http-only
// cookie) is owned by the caller.
func (s *SessionService) Issue(email, name string) (string, error) {
	now := time.Now().UTC()
	claims := sessionClaims{
		Email: email,
		Name:  name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry, then consults the denylist.
// Every failure collapses to domain.ErrInvalidSession. A denylist lookup
// fault degrades to stateless verification rather than rejecting the
// request.
func (s *SessionService) Verify(ctx context.Context, token string) (*ports.SessionClaims, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, domain.ErrInvalidSession
	}

	revoked, err := s.denylist.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.log.Warn().Err(err).Msg("denylist check failed, accepting token statelessly")
	} else if revoked {
		return nil, domain.ErrInvalidSession
	}

	return &ports.SessionClaims{
		Email:   claims.Email,
		Name:    claims.Name,
		TokenID: claims.ID,
	}, nil
}

// Revoke denylists the token id for its remaining lifetime. An invalid or
// already-expired token is a client error and revokes as a no-op.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return nil
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return nil
	}
	return s.denylist.Revoke(ctx, claims.ID, remaining)
}

func (s *SessionService) parse(token string) (*sessionClaims, error) {
	claims := &sessionClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidSession
	}
	return claims, nil
}
