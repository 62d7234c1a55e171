package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"manufacturing/cmd"
	httpin "manufacturing/internal/adapters/in/http"
	"manufacturing/internal/adapters/in/seed"
	"manufacturing/internal/adapters/out/postgres"
	"manufacturing/internal/pkg/logger"

	"github.com/alecthomas/kong"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

type Globals struct {
	EnvFile string `name:"env-file" default:".env" help:"Optional dotenv file; real environment variables take precedence."`
}

type CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"withargs" help:"Run the HTTP API and background jobs."`
	Migrate MigrateCmd `cmd:"" help:"Create or update the database schema."`
	Seed    SeedCmd    `cmd:"" help:"Load catalog reference data from a YAML file."`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("manufacturing"),
		kong.Description("Vehicle manufacturing order and production tracking."),
		kong.UsageOnError(),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli.Globals))
}

type deps struct {
	config cmd.Config
	db     *gorm.DB
	log    *logger.Logger
}

func bootstrap(g *Globals) (*deps, error) {
	config, err := cmd.LoadConfig(g.EnvFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	l, err := logger.New(config.LogMode)
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	db, err := postgres.Open(config.Connection())
	if err != nil {
		return nil, err
	}

	return &deps{config: config, db: db, log: l}, nil
}

func (r *deps) close() {
	if sqlDB, err := r.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	r.log.Sync()
}

type MigrateCmd struct{}

func (MigrateCmd) Run(g *Globals) error {
	r, err := bootstrap(g)
	if err != nil {
		return err
	}
	defer r.close()

	if err = postgres.Migrate(r.db); err != nil {
		return err
	}

	r.log.Info("schema migrated", "database", r.config.DBName)
	return nil
}

type SeedCmd struct {
	File string `short:"f" default:"configs/catalog.yaml" type:"existingfile" help:"Catalog YAML file."`
}

func (c SeedCmd) Run(g *Globals) error {
	r, err := bootstrap(g)
	if err != nil {
		return err
	}
	defer r.close()

	seedCmd, err := seed.LoadCatalogFile(c.File)
	if err != nil {
		return err
	}

	app := cmd.NewCompositionRoot(r.config, r.db, r.log)
	handler := app.CreateSeedCatalogCommandHandler()
	return handler.Handle(context.Background(), seedCmd)
}

type ServeCmd struct {
	Migrate bool `default:"true" negatable:"" help:"Apply the schema before serving."`
}

func (c ServeCmd) Run(g *Globals) error {
	r, err := bootstrap(g)
	if err != nil {
		return err
	}
	defer r.close()

	if c.Migrate {
		if err = postgres.Migrate(r.db); err != nil {
			return err
		}
	}

	app := cmd.NewCompositionRoot(r.config, r.db, r.log)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return err
	}
	defer jobManager.StopAll()

	e, err := newEcho(&app)
	if err != nil {
		return err
	}

	return startWebServer(e, r.config.HTTPPort)
}

func newEcho(app *cmd.CompositionRoot) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetLevel(log.INFO)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	doc, err := httpin.LoadSpec(context.Background())
	if err != nil {
		return nil, err
	}

	validator, err := httpin.RequestValidator(doc)
	if err != nil {
		return nil, err
	}
	e.Use(validator)

	httpin.RegisterSwagger(e)
	app.CreateServer().RegisterHandlers(e)

	return e, nil
}

func startWebServer(e *echo.Echo, port string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
