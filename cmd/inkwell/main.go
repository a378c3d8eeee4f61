package main

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	gconfig "github.com/goliatone/go-config/config"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-persistence-bun"
	"github.com/goliatone/go-print"
	"github.com/goliatone/go-router"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/inkwellhq/inkwell"
	"github.com/inkwellhq/inkwell/config"
)

type App struct {
	config *gconfig.Container[*config.BaseConfig]
	bunDB  *bun.DB
	auth   inkwell.Authenticator
	auther *inkwell.RouteAuthenticator
	repo   inkwell.RepositoryManager
	srv    router.Server[*fiber.App]
	logger *glog.BaseLogger
}

func (a *App) Config() *config.BaseConfig {
	return a.config.Raw()
}

func (a *App) GetLogger(name string) glog.Logger {
	return a.logger.GetLogger(name)
}

func main() {
	lgr := glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithLevel(glog.Trace),
		glog.WithName("inkwell"),
		glog.WithAddSource(false),
		glog.WithRichErrorHandler(errors.ToSlogAttributes),
	)

	cfg := gconfig.New(&config.BaseConfig{}).
		WithLogger(lgr.GetLogger("config"))

	ctx := context.Background()
	if err := cfg.Load(ctx); err != nil {
		panic(err)
	}

	fmt.Println("============")
	fmt.Println(print.MaybeHighlightJSON(cfg.Raw()))
	fmt.Println("============")

	app := &App{
		config: cfg,
		logger: lgr,
	}

	if err := WithPersistence(ctx, app); err != nil {
		panic(err)
	}

	if err := WithHTTPServer(ctx, app); err != nil {
		panic(err)
	}

	if err := WithHTTPAuth(ctx, app); err != nil {
		panic(err)
	}

	ContentRoutes(app)

	app.srv.Serve(app.Config().GetServer().GetAddr())

	WaitExitSignal()
}

func WithPersistence(ctx context.Context, app *App) error {
	db, err := sql.Open(sqliteshim.ShimName, app.Config().GetPersistence().GetDSN())
	if err != nil {
		log.Fatal(err)
		return err
	}

	persistence.RegisterModel((*inkwell.User)(nil))
	persistence.RegisterModel((*inkwell.Post)(nil))

	pcfg := app.Config().GetPersistence()
	dialect := sqlitedialect.New()
	client, err := persistence.New(pcfg, db, dialect)
	if err != nil {
		log.Fatal(err)
		return err
	}

	client.SetLogger(app.GetLogger("persistence"))

	migrationsFS, err := fs.Sub(inkwell.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return err
	}
	client.RegisterDialectMigrations(
		migrationsFS,
		persistence.WithDialectSourceLabel("data/sql/migrations"),
		persistence.WithValidationTargets("postgres", "sqlite"),
	)
	if err := client.ValidateDialects(ctx); err != nil {
		return err
	}

	if err := client.Migrate(ctx); err != nil {
		return err
	}

	if app.Config().GetApp().GetEnv() == "development" {
		client.RegisterFixtures(inkwell.GetFixturesFS()).AddOptions(persistence.WithTrucateTables())
		if err := client.Seed(ctx); err != nil {
			return err
		}
	}

	if report := client.Report(); report != nil && !report.IsZero() {
		fmt.Printf("report: %s\n", report.String())
	}

	app.bunDB = client.DB()
	app.repo = inkwell.NewRepositoryManager(client.DB())

	return nil
}

func WithHTTPServer(ctx context.Context, app *App) error {
	srv := router.NewFiberAdapter(func(a *fiber.App) *fiber.App {
		return router.DefaultFiberOptions(fiber.New(fiber.Config{
			AppName:           app.Config().GetApp().GetName(),
			UnescapePath:      true,
			EnablePrintRoutes: app.Config().GetApp().GetDebug(),
			StrictRouting:     false,
		}))
	})

	srv.Router().WithLogger(app.GetLogger("router"))

	app.srv = srv

	return nil
}

func WithHTTPAuth(ctx context.Context, app *App) error {
	cfg := app.Config().GetAuth()

	if err := app.repo.Validate(); err != nil {
		return err
	}

	userProvider := inkwell.NewUserProvider(app.repo.Users())
	userProvider.WithLogger(app.GetLogger("auth:prv"))

	authenticator := inkwell.NewAuthenticator(userProvider, cfg)
	authenticator.WithLogger(app.GetLogger("auth:authz"))

	app.auth = authenticator

	httpAuth, err := inkwell.NewHTTPAuthenticator(authenticator, cfg)
	if err != nil {
		return err
	}
	httpAuth.WithLogger(app.GetLogger("auth:http"))

	app.auther = httpAuth

	inkwell.RegisterAuthRoutes(app.srv.Router().Group("/"),
		func(ac *inkwell.AuthController) *inkwell.AuthController {
			ac.Debug = app.Config().GetApp().GetDebug()
			ac.Auther = httpAuth
			ac.Repo = app.repo
			ac.WithLogger(app.GetLogger("auth:ctrl"))
			return ac
		})

	return nil
}

func ContentRoutes(app *App) {
	p := app.srv.Router().Group("/")

	protected := app.auther.ProtectedRoute(nil)

	inkwell.RegisterPostRoutes(p, protected,
		func(pc *inkwell.PostsController) *inkwell.PostsController {
			pc.Repo = app.repo
			pc.WithLogger(app.GetLogger("posts:ctrl"))
			return pc
		})

	inkwell.RegisterUserRoutes(p, protected,
		func(uc *inkwell.UsersController) *inkwell.UsersController {
			uc.Repo = app.repo
			uc.WithLogger(app.GetLogger("users:ctrl"))
			return uc
		})
}

func WaitExitSignal() os.Signal {
	ch := make(chan os.Signal, 3)
	signal.Notify(ch,
		syscall.SIGINT,
		syscall.SIGQUIT,
		syscall.SIGTERM,
	)
	return <-ch
}
