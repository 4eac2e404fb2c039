package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"time"

	"bookfair-reservation/internal/handler/middleware"
	"bookfair-reservation/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/pflag"
)

type options struct {
	dir      string
	atlasBin string
	dryRun   bool
	timeout  time.Duration
}

func parseFlags(args []string) (options, error) {
	var opts options
	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&opts.dir, "dir", "migrations", "directory holding the migration files and atlas.sum")
	flagSet.StringVar(&opts.atlasBin, "atlas", "atlas", "path to the atlas binary")
	flagSet.BoolVar(&opts.dryRun, "dry-run", false, "print pending statements without applying them")
	flagSet.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall deadline")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	return opts, nil
}

// migrationURL drops the session timezone parameter, which atlas does not accept.
func migrationURL(cfg config.DBConfig) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.DBName,
		RawQuery: url.Values{"sslmode": []string{cfg.SSLMode}}.Encode(),
	}
	return u.String()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(2)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "migrate:", err)
		os.Exit(1)
	}
	middleware.NewLogger(cfg.Log)

	if err := run(opts, cfg.DB); err != nil {
		slog.Error("マイグレーションに失敗しました", "error", err.Error())
		os.Exit(1)
	}
}

func run(opts options, db config.DBConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(
		atlasexec.WithMigrations(os.DirFS(opts.dir)),
	)
	if err != nil {
		return fmt.Errorf("load migrations from %s: %w", opts.dir, err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), opts.atlasBin)
	if err != nil {
		return fmt.Errorf("init atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    migrationURL(db),
		DryRun: opts.dryRun,
	})
	if err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	slog.Info("マイグレーション実行完了",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target,
		"dry_run", opts.dryRun)
	return nil
}
