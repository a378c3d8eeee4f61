package inkwell_test

import (
	"context"
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwellhq/inkwell"
)

func notFoundErr() error {
	return goerrors.New("user not found", goerrors.CategoryNotFound).
		WithCode(goerrors.CodeNotFound)
}

func storedUser(t *testing.T, username, password string) *inkwell.User {
	t.Helper()
	hash, err := inkwell.HashPasswordWithCost(password, bcrypt.MinCost)
	require.NoError(t, err)
	return &inkwell.User{
		ID:           42,
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: hash,
	}
}

func TestVerifyIdentity(t *testing.T) {
	store := new(MockUserStore)
	store.On("GetByUsername", mock.Anything, "alice").
		Return(storedUser(t, "alice", "password123"), nil)

	provider := inkwell.NewUserProvider(store)

	identity, err := provider.VerifyIdentity(context.Background(), "alice", "password123")
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.ID())
	assert.Equal(t, "alice", identity.Username())
	assert.Equal(t, "alice@example.com", identity.Email())
}

// Unknown usernames and wrong passwords must be indistinguishable to the
// caller.
func TestVerifyIdentityFailuresAreUniform(t *testing.T) {
	store := new(MockUserStore)
	store.On("GetByUsername", mock.Anything, "alice").
		Return(storedUser(t, "alice", "password123"), nil)
	store.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, notFoundErr())

	provider := inkwell.NewUserProvider(store)

	_, errWrongPassword := provider.VerifyIdentity(context.Background(), "alice", "wrong")
	_, errUnknownUser := provider.VerifyIdentity(context.Background(), "ghost", "password123")

	assert.ErrorIs(t, errWrongPassword, inkwell.ErrInvalidCredentials)
	assert.ErrorIs(t, errUnknownUser, inkwell.ErrInvalidCredentials)
	assert.Equal(t, errWrongPassword.Error(), errUnknownUser.Error())
}

func TestVerifyIdentityStoreErrorIsNotCollapsed(t *testing.T) {
	store := new(MockUserStore)
	store.On("GetByUsername", mock.Anything, "alice").
		Return(nil, errors.New("connection refused"))

	provider := inkwell.NewUserProvider(store)

	_, err := provider.VerifyIdentity(context.Background(), "alice", "password123")
	require.Error(t, err)
	assert.NotErrorIs(t, err, inkwell.ErrInvalidCredentials)
}

func TestFindIdentityByIdentifier(t *testing.T) {
	store := new(MockUserStore)
	store.On("GetByUsername", mock.Anything, "alice").
		Return(storedUser(t, "alice", "password123"), nil)

	provider := inkwell.NewUserProvider(store)

	identity, err := provider.FindIdentityByIdentifier(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, int64(42), identity.ID())
}

func TestFindIdentityByIdentifierNotFound(t *testing.T) {
	store := new(MockUserStore)
	store.On("GetByUsername", mock.Anything, "ghost").
		Return(nil, notFoundErr())

	provider := inkwell.NewUserProvider(store)

	_, err := provider.FindIdentityByIdentifier(context.Background(), "ghost")
	assert.ErrorIs(t, err, inkwell.ErrIdentityNotFound)
}

func TestNewIdentityFromUser(t *testing.T) {
	user := &inkwell.User{ID: 7, Username: "bob", Email: "bob@example.com"}

	identity := inkwell.NewIdentityFromUser(user)
	assert.Equal(t, int64(7), identity.ID())
	assert.Equal(t, "bob", identity.Username())
	assert.Equal(t, "bob@example.com", identity.Email())

	assert.Nil(t, inkwell.NewIdentityFromUser(nil))
}
