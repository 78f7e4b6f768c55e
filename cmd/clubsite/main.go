// @title			Club Website API
// @version		1.0
// @description	Backend for the club website: public content plus the board task board.
// @BasePath		/api/v1

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/interactkolhapur/clubsite/internal/config"
	"github.com/interactkolhapur/clubsite/internal/database"
	"github.com/interactkolhapur/clubsite/internal/domain"
	"github.com/interactkolhapur/clubsite/internal/handler"
	"github.com/interactkolhapur/clubsite/internal/logger"
	"github.com/interactkolhapur/clubsite/internal/repository"
)

func main() {
	app := &cli.App{
		Name:  "clubsite",
		Usage: "Club website backend",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:     "database-url",
				Aliases:  []string{"d"},
				Value:    config.DefaultDatabaseURL,
				Usage:    "PostgreSQL database URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:  "add-user",
				Usage: "Provision a directory member with a fresh bearer token",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "email", Required: true, Usage: "Member email"},
					&cli.StringFlag{Name: "name", Required: true, Usage: "Display name"},
					&cli.StringFlag{Name: "role", Value: "member", Usage: "Role (member, admin)"},
				},
				Action: runAddUser,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func connect(c *cli.Context) (*database.DB, error) {
	ctx := c.Context

	db, err := database.New(ctx, c.String("database-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	db, err := connect(c)
	if err != nil {
		return err
	}
	defer db.Close()

	h := handler.New(db.Pool())

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runAddUser(c *cli.Context) error {
	ctx := c.Context

	db, err := connect(c)
	if err != nil {
		return err
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db.Pool())

	user, err := userRepo.Create(ctx, &domain.User{
		Email:    c.String("email"),
		Name:     c.String("name"),
		Role:     c.String("role"),
		Token:    uuid.NewString(),
		IsActive: true,
	})
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user created", "user_id", user.ID, "email", user.Email)
	fmt.Printf("id:    %s\ntoken: %s\n", user.ID, user.Token)

	return nil
}
