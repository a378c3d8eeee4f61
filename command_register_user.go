package inkwell

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/uptrace/bun"
)

type RegisterUserMessage struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (e RegisterUserMessage) Type() string { return "user.register" }

// RegisterUserHandler creates a new account inside a transaction: uniqueness
// checks, password hashing, insert. The collaborator owns the written record;
// the auth core only ever reads it back.
type RegisterUserHandler struct {
	repo RepositoryManager
}

func NewRegisterUserHandler(repo RepositoryManager) *RegisterUserHandler {
	return &RegisterUserHandler{repo: repo}
}

func (h *RegisterUserHandler) Execute(ctx context.Context, event RegisterUserMessage) (*User, error) {
	select {
	case <-ctx.Done():
		return nil, goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during user registration",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *RegisterUserHandler) execute(ctx context.Context, event RegisterUserMessage) (*User, error) {
	user := &User{}
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	err := h.repo.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		taken, err := h.repo.Users().ExistsByUsernameTx(ctx, tx, event.Username)
		if err != nil {
			return err
		}
		if taken {
			return goerrors.New("username already in use", goerrors.CategoryConflict).
				WithCode(goerrors.CodeConflict).
				WithTextCode("USERNAME_TAKEN")
		}

		taken, err = h.repo.Users().ExistsByEmailTx(ctx, tx, event.Email)
		if err != nil {
			return err
		}
		if taken {
			return goerrors.New("email already in use", goerrors.CategoryConflict).
				WithCode(goerrors.CodeConflict).
				WithTextCode("EMAIL_TAKEN")
		}

		hash, err := HashPassword(event.Password)
		if err != nil {
			var richErr *goerrors.Error
			if goerrors.As(err, &richErr) {
				return goerrors.Wrap(richErr, goerrors.CategoryValidation, "invalid password provided")
			}
			return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to hash password")
		}

		user.Username = event.Username
		user.Email = event.Email
		user.PasswordHash = hash

		if user, err = h.repo.Users().CreateTx(ctx, tx, user); err != nil {
			return goerrors.Wrap(err, goerrors.CategoryConflict, "could not create user")
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return user, nil
}
