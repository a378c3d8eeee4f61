package inkwell

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-router"
)

// RegisterPostRoutes mounts the post CRUD endpoints. Reads are public, writes
// require an authenticated owner.
func RegisterPostRoutes[T any](app router.Router[T], protected router.MiddlewareFunc, opts ...PostsControllerOption) {
	controller := NewPostsController(opts...)

	app.Get("/posts", controller.Index).SetName("posts.index")
	app.Get("/posts/:id", controller.Show).SetName("posts.show")

	app.Post("/posts", controller.Create, protected).SetName("posts.create")
	app.Put("/posts/:id", controller.Update, protected).SetName("posts.update")
	app.Delete("/posts/:id", controller.Delete, protected).SetName("posts.delete")
}

type PostsController struct {
	Logger       Logger
	Repo         RepositoryManager
	ErrorHandler func(c router.Context, err error) error
}

type PostsControllerOption func(*PostsController) *PostsController

func NewPostsController(opts ...PostsControllerOption) *PostsController {
	c := &PostsController{
		Logger: defLogger{},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in posts controller...")
	}

	if c.ErrorHandler == nil {
		c.ErrorHandler = func(ctx router.Context, err error) error {
			return RespondError(ctx, c.Logger, err)
		}
	}

	return c
}

func (p *PostsController) WithLogger(logger Logger) *PostsController {
	p.Logger = logger
	return p
}

// PostRequest is the create/update payload
type PostRequest struct {
	Title   string `form:"title" json:"title"`
	Content string `form:"content" json:"content"`
}

// Validate will run validation rules
func (r PostRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Content, validation.Required),
	)
}

func (p *PostsController) Index(ctx router.Context) error {
	author := ctx.Query("author", "")

	var posts []*Post
	var err error

	if author != "" {
		var authorID int64
		authorID, err = strconv.ParseInt(author, 10, 64)
		if err != nil {
			return ctx.JSON(fiber.StatusBadRequest, map[string]any{
				"status":  "error",
				"message": "author must be an integer id",
			})
		}
		posts, err = p.Repo.Posts().ListByUserID(ctx.Context(), authorID)
	} else {
		posts, err = p.Repo.Posts().List(ctx.Context())
	}

	if err != nil {
		return p.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status": "success",
		"posts":  posts,
	})
}

func (p *PostsController) Show(ctx router.Context) error {
	id, err := paramID(ctx)
	if err != nil {
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "id must be an integer",
		})
	}

	post, err := p.Repo.Posts().GetByID(ctx.Context(), id)
	if err != nil {
		return p.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status": "success",
		"post":   post,
	})
}

func (p *PostsController) Create(ctx router.Context) error {
	identity, err := RequestIdentity(ctx)
	if err != nil {
		return p.ErrorHandler(ctx, err)
	}

	payload := new(PostRequest)
	if err := ctx.Bind(payload); err != nil {
		p.Logger.Error("post create: error parsing payload: %s", err)
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	post := &Post{
		Title:   payload.Title,
		Content: payload.Content,
		UserID:  identity.ID(),
	}

	if _, err := p.Repo.Posts().Create(ctx.Context(), post); err != nil {
		p.Logger.Error("post create: %s", err)
		return p.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusCreated, map[string]any{
		"status": "success",
		"post":   post,
	})
}

func (p *PostsController) Update(ctx router.Context) error {
	identity, err := RequestIdentity(ctx)
	if err != nil {
		return p.ErrorHandler(ctx, err)
	}

	id, err := paramID(ctx)
	if err != nil {
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "id must be an integer",
		})
	}

	payload := new(PostRequest)
	if err := ctx.Bind(payload); err != nil {
		p.Logger.Error("post update: error parsing payload: %s", err)
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return RespondValidationError(ctx, err)
	}

	// existence is checked before ownership so non-owners cannot probe ids
	post, err := p.Repo.Posts().GetByID(ctx.Context(), id)
	if err != nil {
		return p.ErrorHandler(ctx, err)
	}

	if err := RequireOwnership(identity, post.UserID); err != nil {
		return p.ErrorHandler(ctx, err)
	}

	post.Title = payload.Title
	post.Content = payload.Content

	if _, err := p.Repo.Posts().Update(ctx.Context(), post); err != nil {
		p.Logger.Error("post update: %s", err)
		return p.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status": "success",
		"post":   post,
	})
}

func (p *PostsController) Delete(ctx router.Context) error {
	identity, err := RequestIdentity(ctx)
	if err != nil {
		return p.ErrorHandler(ctx, err)
	}

	id, err := paramID(ctx)
	if err != nil {
		return ctx.JSON(fiber.StatusBadRequest, map[string]any{
			"status":  "error",
			"message": "id must be an integer",
		})
	}

	post, err := p.Repo.Posts().GetByID(ctx.Context(), id)
	if err != nil {
		return p.ErrorHandler(ctx, err)
	}

	if err := RequireOwnership(identity, post.UserID); err != nil {
		return p.ErrorHandler(ctx, err)
	}

	if err := p.Repo.Posts().Delete(ctx.Context(), id); err != nil {
		p.Logger.Error("post delete: %s", err)
		return p.ErrorHandler(ctx, err)
	}

	return ctx.JSON(fiber.StatusOK, map[string]any{
		"status":  "success",
		"message": "post deleted",
	})
}

func paramID(ctx router.Context) (int64, error) {
	raw := ctx.Param("id", "")
	return strconv.ParseInt(raw, 10, 64)
}
