package ports

import "context"

// SessionClaims is the verified identity carried by a session token.
type SessionClaims struct {
	Email   string
	Name    string
	TokenID string
}

// SessionService issues and verifies signed, time-limited session tokens.
// Tokens are stateless; logout is made authoritative by denylisting the
// token id for its remaining lifetime.
type SessionService interface {
	Issue(email, name string) (string, error)
	Verify(ctx context.Context, token string) (*SessionClaims, error)
	Revoke(ctx context.Context, token string) error
}
