// Package main creates the initial admin account. It is idempotent: an
// existing account with the configured email is left untouched.
//
// The email and password come from seed.admin_email and seed.admin_password,
// usually set through APP_SEED_ADMIN_EMAIL and APP_SEED_ADMIN_PASSWORD.
// Seeding never signs tokens, so auth.jwt_secret is not required.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/auth"
	"github.com/jsamuelsen11/mentorship-admin/internal/adapters/postgres"
	"github.com/jsamuelsen11/mentorship-admin/internal/app"
	"github.com/jsamuelsen11/mentorship-admin/internal/domain/catalog"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/config"
	"github.com/jsamuelsen11/mentorship-admin/internal/platform/logging"
)

const runTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	cfg, err := config.Load(profile, config.WithoutTokenSigning())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Database.Driver != config.DriverPostgres {
		return fmt.Errorf("database.driver must be %q to seed a persistent admin, got %q",
			config.DriverPostgres, cfg.Database.Driver)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	db, err := postgres.Connect(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx, logger); err != nil {
			return err
		}
	}

	// Seeding never issues or revokes tokens.
	svc := app.NewAuthService(
		postgres.NewUserRepository(db),
		auth.NewBcryptHasher(cfg.Auth.BcryptCost),
		nil,
		nil,
		catalog.Default(),
		nil,
		logger,
	)

	admin, created, err := svc.EnsureAdmin(ctx, cfg.Seed.AdminName, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword)
	if err != nil {
		return fmt.Errorf("ensuring admin: %w", err)
	}

	if created {
		logger.Info("admin account created", slog.Int64("user_id", admin.ID), slog.String("email", admin.Email))
	} else {
		logger.Info("admin account already exists", slog.Int64("user_id", admin.ID), slog.String("email", admin.Email))
	}
	return nil
}
