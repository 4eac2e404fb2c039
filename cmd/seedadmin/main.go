package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"bookfair-reservation/cmd/bootstrap"
	"bookfair-reservation/cmd/bootstrap/components"
	"bookfair-reservation/internal/usecase/commands"

	"github.com/spf13/pflag"
	"go.uber.org/fx"
)

type options struct {
	email    string
	password string
	username string
}

func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("seedadmin", pflag.ContinueOnError)
	flagSet.StringVar(&opts.email, "email", "", "admin email address (required)")
	flagSet.StringVar(&opts.password, "password", "", "admin password, at least 8 characters (default $ADMIN_PASSWORD)")
	flagSet.StringVar(&opts.username, "username", "Administrator", "display name for a new account")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if opts.password == "" {
		opts.password = os.Getenv("ADMIN_PASSWORD")
	}
	if opts.email == "" || opts.password == "" {
		return options{}, errors.New("--email and --password (or ADMIN_PASSWORD) are required")
	}
	return opts, nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "seedadmin:", err)
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		slog.Error("admin seeding failed", "email", opts.email, "error", err.Error())
		os.Exit(1)
	}
}

func run(opts options) error {
	var auth commands.AuthCommands
	app := fx.New(
		bootstrap.ConfigModule,
		bootstrap.LoggerModule,
		bootstrap.DBModule,
		bootstrap.JWTModule,
		components.InfraModule,
		components.PersistenceModule,
		components.UseCaseModule,
		fx.Populate(&auth),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("start: %w", err)
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Warn("管理者シードの停止に失敗しました", "error", err)
		}
	}()

	view, created, err := auth.EnsureAdmin(ctx, commands.RegisterInput{
		Username: opts.username,
		Email:    opts.email,
		Password: opts.password,
	})
	if err != nil {
		return err
	}

	if created {
		slog.Info("admin user created", "user_id", view.ID.String(), "email", view.Email)
	} else {
		slog.Info("existing user promoted to admin", "user_id", view.ID.String(), "email", view.Email)
	}
	return nil
}
