package inkwell_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inkwellhq/inkwell"
)

func TestAuthenticatorLogin(t *testing.T) {
	provider := new(MockIdentityProvider)
	provider.On("VerifyIdentity", mock.Anything, "alice", "password123").
		Return(MockIdentity{IDVal: 42, UsernameVal: "alice"}, nil)

	auther := inkwell.NewAuthenticator(provider, DefaultMockConfig())

	token, err := auther.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := auther.SessionFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject())
	assert.Equal(t, int64(42), claims.UserID())

	provider.AssertExpectations(t)
}

func TestAuthenticatorLoginInvalidCredentials(t *testing.T) {
	provider := new(MockIdentityProvider)
	provider.On("VerifyIdentity", mock.Anything, "alice", "wrong").
		Return(nil, inkwell.ErrInvalidCredentials)

	auther := inkwell.NewAuthenticator(provider, DefaultMockConfig())

	_, err := auther.Login(context.Background(), "alice", "wrong")
	assert.ErrorIs(t, err, inkwell.ErrInvalidCredentials)
}

func TestAuthenticatorLoginNilIdentity(t *testing.T) {
	provider := new(MockIdentityProvider)
	provider.On("VerifyIdentity", mock.Anything, "alice", "password123").
		Return(nil, nil)

	auther := inkwell.NewAuthenticator(provider, DefaultMockConfig())

	_, err := auther.Login(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, inkwell.ErrInvalidCredentials)
}

func TestAuthenticatorSessionFromTokenRejectsGarbage(t *testing.T) {
	auther := inkwell.NewAuthenticator(new(MockIdentityProvider), DefaultMockConfig())

	_, err := auther.SessionFromToken("not-a-token")
	assert.Error(t, err)
}

func TestAuthenticatorIdentityFromSession(t *testing.T) {
	provider := new(MockIdentityProvider)
	provider.On("VerifyIdentity", mock.Anything, "alice", "password123").
		Return(MockIdentity{IDVal: 42, UsernameVal: "alice"}, nil)
	provider.On("FindIdentityByIdentifier", mock.Anything, "alice").
		Return(MockIdentity{IDVal: 42, UsernameVal: "alice", EmailVal: "alice@example.com"}, nil)

	auther := inkwell.NewAuthenticator(provider, DefaultMockConfig())

	token, err := auther.Login(context.Background(), "alice", "password123")
	require.NoError(t, err)

	claims, err := auther.SessionFromToken(token)
	require.NoError(t, err)

	identity, err := auther.IdentityFromSession(context.Background(), claims)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", identity.Email())

	provider.AssertExpectations(t)
}

func TestAuthenticatorIdentityFromSessionNotFound(t *testing.T) {
	provider := new(MockIdentityProvider)
	provider.On("FindIdentityByIdentifier", mock.Anything, "ghost").
		Return(nil, inkwell.ErrIdentityNotFound)

	auther := inkwell.NewAuthenticator(provider, DefaultMockConfig())

	claims := &inkwell.JWTClaims{}
	claims.RegisteredClaims.Subject = "ghost"

	_, err := auther.IdentityFromSession(context.Background(), claims)
	assert.ErrorIs(t, err, inkwell.ErrIdentityNotFound)
}

func TestAuthenticatorProviderErrorPassesThrough(t *testing.T) {
	storeErr := errors.New("connection refused")

	provider := new(MockIdentityProvider)
	provider.On("VerifyIdentity", mock.Anything, "alice", "password123").
		Return(nil, storeErr)

	auther := inkwell.NewAuthenticator(provider, DefaultMockConfig())

	_, err := auther.Login(context.Background(), "alice", "password123")
	assert.ErrorIs(t, err, storeErr)
}
