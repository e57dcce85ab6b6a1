package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stock-terminal/core/assist"
	"stock-terminal/core/config"
	"stock-terminal/core/loader"
	"stock-terminal/core/logger"
	"stock-terminal/core/metrics"
	"stock-terminal/core/middleware/auth"
	"stock-terminal/core/middleware/rayid"
	"stock-terminal/core/view"
	"stock-terminal/feature/terminal"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "stock-terminal/docs/swagger"
)

// @title Stock Terminal API
// @version 1.0
// @description API for feeding and browsing the stock of a storage network terminal.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the terminal server",
	Long:  `Loads the item catalog, starts the HTTP server and serves the terminal API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if err := cfg.Server.Validate(); err != nil {
			log.Fatalf("Invalid server configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		logg = logg.With(zap.String("terminal", cfg.Server.Name))

		controls, err := cfg.Search.Controls()
		if err != nil {
			logg.Fatal("Invalid search configuration", zap.Error(err))
		}

		cat, err := buildCatalog(context.Background(), cfg, logg)
		if err != nil {
			logg.Fatal("Failed to build catalog", zap.Error(err))
		}

		var searchAssist view.SearchAssist = assist.Nop{}
		if cfg.Assist.Enabled {
			pub, err := assist.New(cfg.Assist, cfg.Server.Name, logg)
			if err != nil {
				logg.Warn("Search assist unavailable", zap.Error(err))
			} else {
				defer pub.Close()
				searchAssist = pub
				logg.Info("Search assist enabled", zap.String("channel", cfg.Assist.Channel))
			}
		}

		var m *metrics.Metrics
		if cfg.Metrics.Enabled {
			m = metrics.New(cfg.Metrics)
		}

		svc, err := terminal.NewService(terminal.Options{
			Catalog:  cat,
			Controls: controls,
			Assist:   searchAssist,
			Metrics:  m,
			Logger:   logg,
			RowWidth: cfg.Server.RowWidth,
		})
		if err != nil {
			logg.Fatal("Failed to create terminal", zap.Error(err))
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		mgr := loader.NewManager(logg)
		mgr.Register(terminal.NewFeature(svc))

		// RayID first so every later log line carries it
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		if m != nil {
			app.Use(m.Middleware())
			app.Get("/metrics", m.Handler())
		}

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		svc.Close()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
