package inkwell_test

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"

	"github.com/inkwellhq/inkwell"
)

func TestErrorCategories(t *testing.T) {
	tests := []struct {
		name     string
		err      *goerrors.Error
		category goerrors.Category
		textCode string
	}{
		{"invalid credentials", inkwell.ErrInvalidCredentials, goerrors.CategoryAuth, "INVALID_CREDENTIALS"},
		{"identity not found", inkwell.ErrIdentityNotFound, goerrors.CategoryNotFound, "IDENTITY_NOT_FOUND"},
		{"token expired", inkwell.ErrTokenExpired, goerrors.CategoryAuth, "TOKEN_EXPIRED"},
		{"token signature", inkwell.ErrTokenSignature, goerrors.CategoryAuth, "TOKEN_BAD_SIGNATURE"},
		{"token malformed", inkwell.ErrTokenMalformed, goerrors.CategoryAuth, "TOKEN_MALFORMED"},
		{"not resource owner", inkwell.ErrNotResourceOwner, goerrors.CategoryAuthz, "NOT_RESOURCE_OWNER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.category, tt.err.Category)
			assert.Equal(t, tt.textCode, tt.err.TextCode)
		})
	}
}

func TestTokenErrorClassifiers(t *testing.T) {
	assert.True(t, inkwell.IsTokenExpiredError(inkwell.ErrTokenExpired))
	assert.True(t, inkwell.IsTokenExpiredError(errors.New("token is expired by 5m")))
	assert.False(t, inkwell.IsTokenExpiredError(nil))
	assert.False(t, inkwell.IsTokenExpiredError(inkwell.ErrTokenSignature))

	assert.True(t, inkwell.IsSignatureError(inkwell.ErrTokenSignature))
	assert.True(t, inkwell.IsSignatureError(errors.New("signature is invalid")))
	assert.False(t, inkwell.IsSignatureError(nil))
	assert.False(t, inkwell.IsSignatureError(inkwell.ErrTokenExpired))

	assert.True(t, inkwell.IsMalformedError(inkwell.ErrTokenMalformed))
	assert.True(t, inkwell.IsMalformedError(errors.New("token is malformed")))
	assert.True(t, inkwell.IsMalformedError(errors.New("missing or malformed JWT")))
	assert.False(t, inkwell.IsMalformedError(nil))
	assert.False(t, inkwell.IsMalformedError(inkwell.ErrTokenExpired))
}
