package inkwell_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell"
)

func TestJWTClaimsAccessors(t *testing.T) {
	iat := time.Now().Truncate(time.Second)
	exp := iat.Add(time.Hour)

	claims := &inkwell.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "alice",
			IssuedAt:  jwt.NewNumericDate(iat),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		UID: 42,
	}

	assert.Equal(t, "alice", claims.Subject())
	assert.Equal(t, int64(42), claims.UserID())
	assert.Equal(t, iat, claims.IssuedAt())
	assert.Equal(t, exp, claims.Expires())
}

func TestJWTClaimsZeroTimes(t *testing.T) {
	claims := &inkwell.JWTClaims{}

	assert.True(t, claims.IssuedAt().IsZero())
	assert.True(t, claims.Expires().IsZero())
}

func TestIdentityFromClaims(t *testing.T) {
	claims := &inkwell.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"},
		UID:              42,
	}

	identity := inkwell.IdentityFromClaims(claims)
	assert.Equal(t, int64(42), identity.ID())
	assert.Equal(t, "alice", identity.Username())
	assert.Empty(t, identity.Email())
}

func TestIdentityFromClaimsNil(t *testing.T) {
	assert.Nil(t, inkwell.IdentityFromClaims(nil))
}
