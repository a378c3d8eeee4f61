package inkwell

import (
	"context"
)

type Auther struct {
	provider        IdentityProvider
	signingKey      []byte
	tokenExpiration int
	issuer          string
	audience        []string
	logger          Logger
	tokenService    TokenService
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider:        provider,
		signingKey:      []byte(opts.GetSigningKey()),
		tokenExpiration: opts.GetTokenExpiration(),
		audience:        opts.GetAudience(),
		issuer:          opts.GetIssuer(),
		logger:          defLogger{},
		tokenService:    tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	// Update the TokenService logger as well
	s.tokenService = NewTokenService(
		s.signingKey,
		s.tokenExpiration,
		s.issuer,
		s.audience,
		logger,
	)
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the credentials and returns a signed token. Any credential
// failure surfaces as ErrInvalidCredentials; the caller cannot tell an unknown
// username from a wrong password.
func (s *Auther) Login(ctx context.Context, username, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, username, password)
	if err != nil {
		s.logger.Error("Login verify identity error: %s", err)
		return "", err
	}

	if identity == nil {
		s.logger.Error("Login identity is nil")
		return "", ErrInvalidCredentials
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("Login token generation error: %s", err)
		return "", err
	}

	return token, nil
}

// SessionFromToken validates a raw token and returns its claims
func (s Auther) SessionFromToken(raw string) (AuthClaims, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		s.logger.Error("SessionFromToken validation failed: %s", err)
		return nil, err
	}

	return claims, nil
}

// IdentityFromSession resolves the full identity record behind validated
// claims. Use IdentityFromClaims when the embedded identity is enough.
func (s *Auther) IdentityFromSession(ctx context.Context, claims AuthClaims) (Identity, error) {
	identity, err := s.provider.FindIdentityByIdentifier(ctx, claims.Subject())
	if err != nil {
		s.logger.Error("IdentityFromSession find identity by identifier: %s", err)
		return nil, err
	}

	return identity, nil
}
