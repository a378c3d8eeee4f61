package inkwell

import (
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrInvalidCredentials is returned for both unknown usernames and wrong
// passwords so callers cannot enumerate accounts.
var ErrInvalidCredentials = goerrors.New("invalid username or password", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrMismatchedHashAndPassword is the internal mismatch reported by the hasher
var ErrMismatchedHashAndPassword = goerrors.New("password does not match", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("PASSWORD_MISMATCH")

// ErrNoEmptyString rejects empty inputs to the hasher
var ErrNoEmptyString = goerrors.New("value must not be empty", goerrors.CategoryBadInput).
	WithCode(goerrors.CodeBadRequest).
	WithTextCode("EMPTY_VALUE")

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = goerrors.New("identity not found", goerrors.CategoryNotFound).
	WithCode(goerrors.CodeNotFound).
	WithTextCode("IDENTITY_NOT_FOUND")

// ErrTokenExpired marks tokens past their exp claim
var ErrTokenExpired = goerrors.New("authentication token expired", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenSignature marks tokens whose signature does not verify
var ErrTokenSignature = goerrors.New("authentication token signature invalid", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_BAD_SIGNATURE")

// ErrTokenMalformed marks tokens we could not parse at all
var ErrTokenMalformed = goerrors.New("authentication token malformed", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrNotResourceOwner is returned when an authenticated identity tries to
// mutate a resource it does not own.
var ErrNotResourceOwner = goerrors.New("you do not own this resource", goerrors.CategoryAuthz).
	WithCode(goerrors.CodeForbidden).
	WithTextCode("NOT_RESOURCE_OWNER")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.Is(err, ErrTokenExpired) {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsSignatureError will check for tokens that failed signature verification
func IsSignatureError(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.Is(err, ErrTokenSignature) {
		return true
	}
	return strings.Contains(err.Error(), "signature is invalid")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.Is(err, ErrTokenMalformed) {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}
