package inkwell_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/inkwellhq/inkwell"
)

// MockAuthenticator implements inkwell.Authenticator
type MockAuthenticator struct {
	mock.Mock
}

func (m *MockAuthenticator) Login(ctx context.Context, identifier, password string) (string, error) {
	args := m.Called(ctx, identifier, password)
	return args.String(0), args.Error(1)
}

func (m *MockAuthenticator) SessionFromToken(token string) (inkwell.AuthClaims, error) {
	args := m.Called(token)
	claims, _ := args.Get(0).(inkwell.AuthClaims)
	return claims, args.Error(1)
}

func (m *MockAuthenticator) IdentityFromSession(ctx context.Context, claims inkwell.AuthClaims) (inkwell.Identity, error) {
	args := m.Called(ctx, claims)
	identity, _ := args.Get(0).(inkwell.Identity)
	return identity, args.Error(1)
}

// MockIdentityProvider implements inkwell.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, identifier, password string) (inkwell.Identity, error) {
	args := m.Called(ctx, identifier, password)
	identity, _ := args.Get(0).(inkwell.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (inkwell.Identity, error) {
	args := m.Called(ctx, identifier)
	identity, _ := args.Get(0).(inkwell.Identity)
	return identity, args.Error(1)
}

// MockUserStore implements inkwell.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) GetByUsername(ctx context.Context, username string) (*inkwell.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*inkwell.User)
	return user, args.Error(1)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*inkwell.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*inkwell.User)
	return user, args.Error(1)
}

// MockIdentity implements inkwell.Identity
type MockIdentity struct {
	IDVal       int64
	UsernameVal string
	EmailVal    string
}

func (m MockIdentity) ID() int64 {
	return m.IDVal
}

func (m MockIdentity) Username() string {
	return m.UsernameVal
}

func (m MockIdentity) Email() string {
	return m.EmailVal
}

// MockLoginPayload implements inkwell.LoginPayload
type MockLoginPayload struct {
	Identifier string
	Password   string
}

func (m MockLoginPayload) GetIdentifier() string {
	return m.Identifier
}

func (m MockLoginPayload) GetPassword() string {
	return m.Password
}

// MockConfig implements inkwell.Config
type MockConfig struct {
	SigningKey      string
	SigningMethod   string
	ContextKey      string
	TokenExpiration int
	TokenLookup     string
	AuthScheme      string
	Issuer          string
	Audience        []string
}

func DefaultMockConfig() MockConfig {
	return MockConfig{
		SigningKey:      "test-signing-key-which-is-long-enough",
		SigningMethod:   "HS512",
		ContextKey:      "user",
		TokenExpiration: 1,
		TokenLookup:     "header:Authorization",
		AuthScheme:      "Bearer",
		Issuer:          "test-issuer",
		Audience:        []string{"test-audience"},
	}
}

func (m MockConfig) GetSigningKey() string {
	return m.SigningKey
}

func (m MockConfig) GetSigningMethod() string {
	return m.SigningMethod
}

func (m MockConfig) GetContextKey() string {
	return m.ContextKey
}

func (m MockConfig) GetTokenExpiration() int {
	return m.TokenExpiration
}

func (m MockConfig) GetTokenLookup() string {
	return m.TokenLookup
}

func (m MockConfig) GetAuthScheme() string {
	return m.AuthScheme
}

func (m MockConfig) GetIssuer() string {
	return m.Issuer
}

func (m MockConfig) GetAudience() []string {
	return m.Audience
}
