package inkwell

import (
	"context"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-router"
	"github.com/google/uuid"

	"github.com/inkwellhq/inkwell/middleware/jwtware"
)

// RouteAuthenticator wires the authentication core into the router: it builds
// the bearer-token middleware for protected routes and owns the boundary error
// handling for token failures.
type RouteAuthenticator struct {
	auth         Authenticator
	cfg          Config
	Logger       Logger
	ErrorHandler func(c router.Context, err error) error
}

func NewHTTPAuthenticator(auther Authenticator, cfg Config) (*RouteAuthenticator, error) {
	a := &RouteAuthenticator{
		cfg:    cfg,
		auth:   auther,
		Logger: defLogger{},
	}

	a.ErrorHandler = a.defaultAuthErrHandler

	return a, nil
}

func (a *RouteAuthenticator) WithLogger(logger Logger) *RouteAuthenticator {
	a.Logger = logger
	return a
}

// ProtectedRoute returns middleware that rejects requests without a valid
// bearer token and binds the authenticated identity to the request context.
func (a *RouteAuthenticator) ProtectedRoute(errorHandler func(router.Context, error) error) router.MiddlewareFunc {
	if errorHandler == nil {
		errorHandler = a.ErrorHandler
	}

	return jwtware.New(jwtware.Config{
		ErrorHandler:   errorHandler,
		ContextKey:     a.cfg.GetContextKey(),
		TokenLookup:    a.cfg.GetTokenLookup(),
		AuthScheme:     a.cfg.GetAuthScheme(),
		TokenValidator: tokenValidatorAdapter{auth: a.auth},
		ContextEnricher: func(c context.Context, claims jwtware.AuthClaims) context.Context {
			if ac, ok := claims.(AuthClaims); ok {
				return EnrichContext(c, ac)
			}
			return c
		},
	})
}

// Login verifies the payload credentials and returns a signed token
func (a *RouteAuthenticator) Login(ctx router.Context, payload LoginPayload) (string, error) {
	token, err := a.auth.Login(ctx.Context(), payload.GetIdentifier(), payload.GetPassword())
	if err != nil {
		a.Logger.Error("login error: %s", err)
		return "", err
	}

	return token, nil
}

// defaultAuthErrHandler collapses every token failure into a 401; the internal
// expired/signature/malformed distinction is logged, never exposed.
func (a *RouteAuthenticator) defaultAuthErrHandler(c router.Context, err error) error {
	var richErr *goerrors.Error

	switch {
	case IsTokenExpiredError(err):
		richErr = ErrTokenExpired
	case IsSignatureError(err):
		richErr = ErrTokenSignature
	case IsMalformedError(err):
		richErr = ErrTokenMalformed
	default:
		richErr = goerrors.Wrap(err, goerrors.CategoryAuth, "invalid authentication token").
			WithCode(goerrors.CodeUnauthorized)
	}

	a.Logger.Info(
		"authentication error: %s code=%s path=%s",
		richErr.Message,
		richErr.TextCode,
		c.OriginalURL(),
	)

	return c.JSON(fiber.StatusUnauthorized, map[string]any{
		"status":  "error",
		"message": "authentication required",
	})
}

// tokenValidatorAdapter bridges the TokenService claims to the jwtware
// interface without an import cycle.
type tokenValidatorAdapter struct {
	auth Authenticator
}

func (t tokenValidatorAdapter) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := t.auth.SessionFromToken(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// RequestIdentity returns the identity the middleware bound to the request,
// or an auth error when the route was reached without one.
func RequestIdentity(ctx router.Context) (Identity, error) {
	identity, ok := IdentityFromContext(ctx.Context())
	if !ok {
		return nil, goerrors.New("no identity bound to request", goerrors.CategoryAuth).
			WithCode(goerrors.CodeUnauthorized).
			WithTextCode("MISSING_IDENTITY")
	}
	return identity, nil
}

// RespondError converts an error into the JSON boundary response. Categories
// map to statuses; anything unclassified becomes an opaque 500 carrying only a
// reference id, with the detail logged server side.
func RespondError(ctx router.Context, logger Logger, err error) error {
	if logger == nil {
		logger = defLogger{}
	}

	var richErr *goerrors.Error
	if !goerrors.As(err, &richErr) {
		return respondInternal(ctx, logger, err)
	}

	var status int
	switch richErr.Category {
	case goerrors.CategoryAuth:
		status = fiber.StatusUnauthorized
	case goerrors.CategoryAuthz:
		status = fiber.StatusForbidden
	case goerrors.CategoryNotFound:
		status = fiber.StatusNotFound
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		status = fiber.StatusBadRequest
	case goerrors.CategoryConflict:
		status = fiber.StatusConflict
	default:
		return respondInternal(ctx, logger, err)
	}

	return ctx.JSON(status, map[string]any{
		"status":  "error",
		"message": richErr.Message,
	})
}

func respondInternal(ctx router.Context, logger Logger, err error) error {
	ref := uuid.NewString()
	logger.Error("internal error ref=%s: %s", ref, err)

	return ctx.JSON(fiber.StatusInternalServerError, map[string]any{
		"status":    "error",
		"message":   "internal error",
		"reference": ref,
	})
}

// RespondValidationError renders ozzo validation failures as a field to message
// map with a 400 status.
func RespondValidationError(ctx router.Context, err error) error {
	return ctx.JSON(fiber.StatusBadRequest, map[string]any{
		"status":  "error",
		"message": "validation failed",
		"errors":  FormatValidationErrorToMap(err),
	})
}

// FormatValidationErrorToMap flattens ozzo-validation errors into a
// field to message map.
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			if ferr != nil {
				out[field] = ferr.Error()
			}
		}
		return out
	}

	out["payload"] = err.Error()
	return out
}
