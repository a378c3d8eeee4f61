package inkwell

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents validated token claims. The embedded identity is
// reconstructed from the claims alone; the codec never re-queries the store.
type AuthClaims interface {
	Subject() string
	UserID() int64
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims. Subject carries the
// username and UID the numeric user id, mirroring what Generate embeds.
type JWTClaims struct {
	jwt.RegisteredClaims
	UID int64 `json:"userId,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim, the username at issuance
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the numeric user id embedded at issuance
func (c *JWTClaims) UserID() int64 {
	return c.UID
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// IdentityFromClaims rebuilds the authenticated Identity from validated claims.
// Email is not embedded in tokens; use Authenticator.IdentityFromSession when a
// full record is needed.
func IdentityFromClaims(claims AuthClaims) Identity {
	if claims == nil {
		return nil
	}
	return authIdentity{
		id:       claims.UserID(),
		username: claims.Subject(),
	}
}
