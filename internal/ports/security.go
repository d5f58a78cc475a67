package ports

import "time"

// AuthClaims are the token claims carried by a signed session token.
type AuthClaims struct {
	UserID    string
	Name      string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenSigner signs and validates session tokens.
type TokenSigner interface {
	Sign(claims AuthClaims) (string, error)
	ParseAndValidate(raw string) (AuthClaims, error)
}

// PasswordHasher hashes registration credentials before they are mirrored.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}
