package inkwell

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"
	"github.com/uptrace/bun"
)

// RegisterUserRoutes mounts the user endpoints. The account list and profile
// reads are public, self management requires the authenticated owner.
func RegisterUserRoutes[T any](app router.Router[T], protected router.MiddlewareFunc, opts ...UsersControllerOption) {
	controller := NewUsersController(opts...)

	app.Get("/users", controller.Index).SetName("users.index")
	app.Get("/users/me", controller.Me, protected).SetName("users.me")
	app.Get("/users/:id", controller.Show).SetName("users.show")

	app.Put("/users/:id", controller.Update, protected).SetName("users.update")
	app.Delete("/users/:id", controller.Delete, protected).SetName("users.delete")
}

type UsersController struct {
	Logger       Logger
	Repo         RepositoryManager
	ErrorHandler func(c router.Context, err error) error
}

type UsersControllerOption func(*UsersController) *UsersController

func NewUsersController(opts ...UsersControllerOption) *UsersController {
	c := &UsersController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in users controller...")
	}

	if c.ErrorHandler == nil {
		c.ErrorHandler = func(ctx router.Context, err error) error {
			return RespondError(ctx, c.Logger, err)
		}
	}

	return c
}

func (u *UsersController) WithLogger(logger Logger) *UsersController {
	u.Logger = logger
	return u
}

// UserUpdateRequest carries the mutable profile fields. Password is optional:
// when empty the stored hash is left untouched.
type UserUpdateRequest struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r UserUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Password, validation.Length(8, 100)),
	)
}

func (u *UsersController) Index(ctx router.Context) error {
	users, err := u.Repo.Users().List(ctx.Context())
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status": "success",
		"users":  users,
	})
}

func (u *UsersController) Show(ctx router.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "id must be an integer",
		})
	}

	user, err := u.Repo.Users().GetByID(ctx.Context(), id)
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status": "success",
		"user":   user,
	})
}

// Me returns the profile of the authenticated user.
func (u *UsersController) Me(ctx router.Context) error {
	identity, err := RequestIdentity(ctx)
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	user, err := u.Repo.Users().GetByID(ctx.Context(), identity.ID())
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status": "success",
		"user":   user,
	})
}

func (u *UsersController) Update(ctx router.Context) error {
	identity, err := RequestIdentity(ctx)
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	id, err := paramID(ctx)
	if err != nil {
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "id must be an integer",
		})
	}

	payload := new(UserUpdateRequest)
	if err := ctx.Bind(payload); err != nil {
		u.Logger.Error("user update: error parsing payload: %s", err)
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	user, err := u.Repo.Users().GetByID(ctx.Context(), id)
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	if err := RequireOwnership(identity, user.ID); err != nil {
		return u.ErrorHandler(ctx, err)
	}

	user.Email = payload.Email
	if payload.Password != "" {
		hash, err := HashPassword(payload.Password)
		if err != nil {
			return u.ErrorHandler(ctx, err)
		}
		user.PasswordHash = hash
	}

	now := time.Now()
	user.UpdatedAt = &now

	if _, err := u.Repo.Users().Update(ctx.Context(), user); err != nil {
		u.Logger.Error("user update: %s", err)
		return u.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status": "success",
		"user":   user,
	})
}

func (u *UsersController) Delete(ctx router.Context) error {
	identity, err := RequestIdentity(ctx)
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	id, err := paramID(ctx)
	if err != nil {
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "id must be an integer",
		})
	}

	user, err := u.Repo.Users().GetByID(ctx.Context(), id)
	if err != nil {
		return u.ErrorHandler(ctx, err)
	}

	if err := RequireOwnership(identity, user.ID); err != nil {
		return u.ErrorHandler(ctx, err)
	}

	// posts must not outlive their author
	err = u.Repo.RunInTx(ctx.Context(), nil, func(c context.Context, tx bun.Tx) error {
		if err := u.Repo.Posts().DeleteByOwnerTx(c, tx, user.ID); err != nil {
			return err
		}
		return u.Repo.Users().DeleteTx(c, tx, user.ID)
	})
	if err != nil {
		u.Logger.Error("user delete: %s", err)
		return u.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status":  "success",
		"message": "user deleted",
	})
}
