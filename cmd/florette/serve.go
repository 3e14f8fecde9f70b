package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/florette/internal/api"
	"github.com/terraincognita07/florette/internal/config"
	"github.com/terraincognita07/florette/internal/db"
	"github.com/terraincognita07/florette/internal/i18n"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		databasePath := resolveDBPath(&cfg)
		app, err := buildServer(cfg, databasePath)
		if err != nil {
			return err
		}
		return runServer(app, cfg, databasePath)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func buildServer(cfg config.Config, databasePath string) (*fiber.App, error) {
	time.Local = cfg.Location

	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		return nil, err
	}

	i18nManager, err := i18n.NewEmbeddedManager(cfg.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	handler, err := api.NewHandler(database, cfg.SecretKey, cfg.Location, i18nManager, cfg.CookieSecure)
	if err != nil {
		return nil, err
	}
	return api.NewApp(handler, api.AppOptions{}), nil
}

func runServer(app *fiber.App, cfg config.Config, databasePath string) error {
	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("Florette listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, databasePath, cfg.Location.String())
	return app.Listen(":" + cfg.Port)
}
